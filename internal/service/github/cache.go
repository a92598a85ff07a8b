package github

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	applog "github.com/devconnect/profile-api/internal/platform/logging"
)

const (
	cacheKeyPrefix = "github:repos:"
	cacheTTL       = 5 * time.Minute
)

// CachedService wraps a Service with a Redis read-through cache. Repository
// lists change rarely and GitHub rate-limits aggressively, so successful
// lookups are cached for a short TTL. Cache failures degrade to a direct
// upstream call; errors are never cached.
type CachedService struct {
	inner Service
	rdb   *redis.Client
}

// NewCachedService wraps inner with a Redis cache.
func NewCachedService(inner Service, rdb *redis.Client) *CachedService {
	return &CachedService{inner: inner, rdb: rdb}
}

func (s *CachedService) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	key := cacheKeyPrefix + strings.ToLower(username)

	cached, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var repos []Repo
		if err := json.Unmarshal(cached, &repos); err == nil {
			return repos, nil
		}
		// Unreadable entry; fall through and refresh it.
		applog.LogWarn(ctx, "discarding corrupt github cache entry", zap.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		applog.LogWarn(ctx, "github cache read failed", zap.String("key", key), zap.Error(err))
	}

	repos, err := s.inner.ListRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	if body, err := json.Marshal(repos); err == nil {
		if err := s.rdb.Set(ctx, key, body, cacheTTL).Err(); err != nil {
			applog.LogWarn(ctx, "github cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return repos, nil
}

// Compile-time interface check
var _ Service = (*CachedService)(nil)

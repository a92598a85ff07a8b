package github

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service errors
var (
	ErrNotFound    = errors.New("github resource not found")
	ErrForbidden   = errors.New("github access forbidden")
	ErrRateLimited = errors.New("github rate limit exceeded")
	ErrUpstream    = errors.New("github upstream error")
)

// UpstreamErrorKind classifies GitHub upstream failures.
type UpstreamErrorKind string

const (
	UpstreamErrorKindNotFound    UpstreamErrorKind = "not_found"
	UpstreamErrorKindForbidden   UpstreamErrorKind = "forbidden"
	UpstreamErrorKindRateLimited UpstreamErrorKind = "rate_limited"
	UpstreamErrorKindUpstream    UpstreamErrorKind = "upstream"
)

// UpstreamError includes GitHub response metadata for error mapping.
type UpstreamError struct {
	Kind           UpstreamErrorKind
	Status         int
	RetryAfter     string
	RateLimitReset string
	cause          error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "github upstream error"
	}
	if e.cause == nil {
		return fmt.Sprintf("github upstream error (kind=%s status=%d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("github upstream error (kind=%s status=%d): %v", e.Kind, e.Status, e.cause)
}

// Unwrap enables errors.Is/As against sentinel service errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Repo is one public repository as shown on a user's profile page.
type Repo struct {
	Name        string
	FullName    string
	Description string
	HTMLURL     string
	Language    string
	Stars       int
	Forks       int
	Watchers    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Service lists a GitHub user's public repositories for profile display.
type Service interface {
	ListRepos(ctx context.Context, username string) ([]Repo, error)
}

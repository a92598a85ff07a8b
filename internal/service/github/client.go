package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	applog "github.com/devconnect/profile-api/internal/platform/logging"
)

const (
	defaultBaseURL = "https://api.github.com"
	userAgent      = "profile-api"
	apiVersion     = "2022-11-28"
	acceptHeader   = "application/vnd.github+json"

	// Profile pages show the five earliest-created public repositories.
	repoPageSize = "5"
)

// Client implements Service using the GitHub REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithToken sets the Bearer token for authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a new GitHub API client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// githubRepo matches GitHub's repository JSON (snake_case tags).
type githubRepo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Watchers    int    `json:"watchers_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.httpClient.Do(req)
}

func (c *Client) decodeResponse(ctx context.Context, resp *http.Response, target any) error {
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("decoding github response: %w", err)
		}
		return nil
	}

	if resp.StatusCode == http.StatusNotFound {
		return upstreamErrorFromResponse(resp, UpstreamErrorKindNotFound, ErrNotFound)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		logRateLimited(ctx, resp)
		return upstreamErrorFromResponse(resp, UpstreamErrorKindRateLimited, ErrRateLimited)
	}
	if resp.StatusCode == http.StatusForbidden {
		if isGitHubRateLimitResponse(resp) {
			logRateLimited(ctx, resp)
			return upstreamErrorFromResponse(resp, UpstreamErrorKindRateLimited, ErrRateLimited)
		}
		applog.LogWarn(ctx, "github api access denied",
			zap.Int("status", resp.StatusCode),
			zap.String("X-RateLimit-Remaining", strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining"))),
			zap.String("X-RateLimit-Reset", strings.TrimSpace(resp.Header.Get("X-RateLimit-Reset"))),
		)
		return upstreamErrorFromResponse(resp, UpstreamErrorKindForbidden, ErrForbidden)
	}

	return upstreamErrorFromResponse(resp, UpstreamErrorKindUpstream, ErrUpstream)
}

// ListRepos fetches the user's five earliest-created public repositories.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	q := url.Values{
		"per_page":  {repoPageSize},
		"sort":      {"created"},
		"direction": {"asc"},
	}
	resp, err := c.doRequest(ctx, "/users/"+url.PathEscape(username)+"/repos", q)
	if err != nil {
		return nil, fmt.Errorf("fetching repos: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var gh []githubRepo
	if err := c.decodeResponse(ctx, resp, &gh); err != nil {
		return nil, err
	}

	repos := make([]Repo, len(gh))
	for i, r := range gh {
		repo, err := toRepo(r)
		if err != nil {
			return nil, fmt.Errorf("decoding repo %d: %w", i, err)
		}
		repos[i] = repo
	}
	return repos, nil
}

func toRepo(r githubRepo) (Repo, error) {
	createdAt, err := parseTime(r.CreatedAt)
	if err != nil {
		return Repo{}, err
	}
	updatedAt, err := parseTime(r.UpdatedAt)
	if err != nil {
		return Repo{}, err
	}
	return Repo{
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		HTMLURL:     r.HTMLURL,
		Language:    r.Language,
		Stars:       r.Stars,
		Forks:       r.Forks,
		Watchers:    r.Watchers,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("missing required timestamp")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", s, err)
	}
	return t, nil
}

func upstreamErrorFromResponse(resp *http.Response, kind UpstreamErrorKind, cause error) *UpstreamError {
	return &UpstreamError{
		Kind:           kind,
		Status:         resp.StatusCode,
		RetryAfter:     strings.TrimSpace(resp.Header.Get("Retry-After")),
		RateLimitReset: strings.TrimSpace(resp.Header.Get("X-RateLimit-Reset")),
		cause:          cause,
	}
}

func isGitHubRateLimitResponse(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	if resp.StatusCode != http.StatusForbidden {
		return false
	}
	if strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining")) == "0" {
		return true
	}
	return strings.TrimSpace(resp.Header.Get("Retry-After")) != ""
}

func logRateLimited(ctx context.Context, resp *http.Response) {
	fields := []zap.Field{
		zap.Int("status", resp.StatusCode),
		zap.String("X-RateLimit-Remaining", resp.Header.Get("X-RateLimit-Remaining")),
		zap.String("X-RateLimit-Reset", resp.Header.Get("X-RateLimit-Reset")),
	}
	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		fields = append(fields, zap.String("Retry-After", retryAfter))
	}
	applog.LogWarn(ctx, "github api rate limit exceeded", fields...)
}

// Compile-time interface check
var _ Service = (*Client)(nil)

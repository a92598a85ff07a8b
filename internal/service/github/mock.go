package github

import (
	"context"
	"time"
)

// MockGitHubService implements Service for unit tests with pre-populated demo data.
type MockGitHubService struct {
	repos map[string][]Repo
}

// NewMockGitHubService creates a mock pre-populated with octocat demo data.
func NewMockGitHubService() *MockGitHubService {
	created := time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC)
	updated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	return &MockGitHubService{
		repos: map[string][]Repo{
			"octocat": {
				{
					Name:        "git-consortium",
					FullName:    "octocat/git-consortium",
					Description: "This repo is for demonstration purposes.",
					HTMLURL:     "https://github.com/octocat/git-consortium",
					Language:    "Ruby",
					Stars:       16,
					Forks:       10,
					Watchers:    16,
					CreatedAt:   created,
					UpdatedAt:   updated,
				},
				{
					Name:        "hello-world",
					FullName:    "octocat/hello-world",
					Description: "My first repository.",
					HTMLURL:     "https://github.com/octocat/hello-world",
					Language:    "",
					Stars:       2500,
					Forks:       2000,
					Watchers:    2500,
					CreatedAt:   created.AddDate(0, 1, 0),
					UpdatedAt:   updated,
				},
			},
		},
	}
}

func (m *MockGitHubService) ListRepos(_ context.Context, username string) ([]Repo, error) {
	repos, ok := m.repos[username]
	if !ok {
		return nil, ErrNotFound
	}
	return repos, nil
}

// Compile-time interface check
var _ Service = (*MockGitHubService)(nil)

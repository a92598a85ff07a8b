package github

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/devconnect/profile-api/internal/platform/timeutil"
	githubsvc "github.com/devconnect/profile-api/internal/service/github"
)

// Register wires GitHub routes into the provided API router.
func Register(api huma.API, svc githubsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-github-repos",
		Method:      http.MethodGet,
		Path:        "/profile/github/{username}",
		Summary:     "List a user's GitHub repositories",
		Description: "Returns the five earliest-created public repositories for the given GitHub username.",
		Tags:        []string{"GitHub"},
	}, func(ctx context.Context, input *ReposListInput) (*ReposListOutput, error) {
		repos, err := svc.ListRepos(ctx, input.Username)
		if err != nil {
			return nil, mapServiceError(err)
		}

		httpRepos := make([]Repo, len(repos))
		for i, r := range repos {
			httpRepos[i] = toHTTPRepo(r)
		}
		return &ReposListOutput{Body: ReposListData{
			Repos: httpRepos,
			Count: len(httpRepos),
		}}, nil
	})
}

// mapServiceError reports every listing failure as a missing GitHub profile.
// The client classifies and logs the underlying cause (rate limiting, upstream
// outages); callers are not told whether the username or GitHub itself is the
// problem.
func mapServiceError(_ error) error {
	return huma.Error404NotFound("no github profile found")
}

func toHTTPRepo(r githubsvc.Repo) Repo {
	return Repo{
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		HTMLURL:     r.HTMLURL,
		Language:    r.Language,
		Stars:       r.Stars,
		Forks:       r.Forks,
		Watchers:    r.Watchers,
		CreatedAt:   timeutil.Time{Time: r.CreatedAt},
		UpdatedAt:   timeutil.Time{Time: r.UpdatedAt},
	}
}

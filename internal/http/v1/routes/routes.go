package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	githubhandler "github.com/devconnect/profile-api/internal/http/v1/github"
	"github.com/devconnect/profile-api/internal/http/v1/profile"
	"github.com/devconnect/profile-api/internal/platform/auth"
	githubsvc "github.com/devconnect/profile-api/internal/service/github"
	profilesvc "github.com/devconnect/profile-api/internal/service/profile"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	verifier auth.Verifier,
	accounts auth.Accounts,
	profileService profilesvc.Service,
	githubService githubsvc.Service,
) {
	prefix := apiPrefix(api)

	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	profile.Register(api, profileService, accounts, prefix)
	githubhandler.Register(api, githubService)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}

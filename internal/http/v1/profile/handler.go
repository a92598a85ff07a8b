package profile

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/devconnect/profile-api/internal/platform/auth"
	"github.com/devconnect/profile-api/internal/platform/pagination"
	"github.com/devconnect/profile-api/internal/platform/timeutil"
	profilesvc "github.com/devconnect/profile-api/internal/service/profile"
)

const profileCursorType = "profile"

// Register registers profile endpoints. Read endpoints for browsing profiles
// are public; everything touching the caller's own profile requires auth.
func Register(api huma.API, svc profilesvc.Service, accounts auth.Accounts, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-profile",
		Method:      http.MethodPost,
		Path:        "/profile",
		Summary:     "Create or update current user's profile",
		Description: "Creates the authenticated user's profile, or merges the provided fields into an existing one. Social links are replaced as a whole.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfileUpsertInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)

		params := profilesvc.BuildUpsertParams(profilesvc.RawFields{
			Company:        input.Body.Company,
			Website:        input.Body.Website,
			Location:       input.Body.Location,
			Status:         input.Body.Status,
			Bio:            input.Body.Bio,
			GithubUsername: input.Body.GithubUsername,
			Skills:         input.Body.Skills,
			YouTube:        input.Body.YouTube,
			Twitter:        input.Body.Twitter,
			Facebook:       input.Body.Facebook,
			LinkedIn:       input.Body.LinkedIn,
			Instagram:      input.Body.Instagram,
		})
		if params.Skills == nil {
			return nil, huma.Error422UnprocessableEntity("skills must contain at least one non-empty element")
		}

		p, err := svc.Upsert(ctx, user.UID, params)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-my-profile",
		Method:      http.MethodGet,
		Path:        "/profile/me",
		Summary:     "Get current user's profile",
		Description: "Retrieves the profile for the authenticated user.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ProfileGetInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := svc.GetByUser(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-profiles",
		Method:      http.MethodGet,
		Path:        "/profiles",
		Summary:     "List all profiles",
		Description: "Returns a paginated listing of all profiles.",
		Tags:        []string{"Profile"},
	}, func(ctx context.Context, input *ProfilesListInput) (*ProfilesListOutput, error) {
		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}
		if cursor.Type != "" && cursor.Type != profileCursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		page, err := svc.List(ctx, input.DefaultLimit(), cursor.Value)
		if err != nil {
			return nil, mapServiceError(err)
		}

		var linkHeader string
		if page.NextCursor != "" {
			nextEncoded := pagination.Cursor{
				Type:  profileCursorType,
				Value: page.NextCursor,
			}.Encode()
			linkHeader = pagination.BuildLinkHeader(
				prefix+"/profiles",
				url.Values{"limit": {strconv.Itoa(input.DefaultLimit())}},
				nextEncoded,
				"",
			)
		}

		profiles := make([]Profile, len(page.Profiles))
		for i, p := range page.Profiles {
			profiles[i] = toHTTPProfile(p)
		}
		return &ProfilesListOutput{
			Link: linkHeader,
			Body: ProfilesListData{
				Profiles: profiles,
				Count:    len(profiles),
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile-by-user",
		Method:      http.MethodGet,
		Path:        "/profiles/user/{userId}",
		Summary:     "Get a profile by user ID",
		Description: "Retrieves the profile owned by the given user.",
		Tags:        []string{"Profile"},
	}, func(ctx context.Context, input *ProfileByUserInput) (*ProfileOutput, error) {
		p, err := svc.GetByUser(ctx, input.UserID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profiles/{profileId}",
		Summary:     "Get a profile by ID",
		Description: "Retrieves a profile by its own identifier.",
		Tags:        []string{"Profile"},
	}, func(ctx context.Context, input *ProfileByIDInput) (*ProfileOutput, error) {
		p, err := svc.GetByID(ctx, input.ProfileID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-profile",
		Method:        http.MethodDelete,
		Path:          "/profile",
		Summary:       "Delete current user and profile",
		Description:   "Permanently deletes the authenticated user's profile and their account.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ProfileDeleteInput) (*struct{}, error) {
		user := auth.UserFromContext(ctx)

		if err := svc.Delete(ctx, user.UID); err != nil {
			return nil, mapServiceError(err)
		}
		if err := accounts.DeleteUser(ctx, user.UID); err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-experience",
		Method:      http.MethodPut,
		Path:        "/profile/experience",
		Summary:     "Add a work-history entry",
		Description: "Prepends a work-history entry to the authenticated user's profile.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ExperienceAddInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := svc.AddExperience(ctx, user.UID, profilesvc.ExperienceParams{
			Title:       input.Body.Title,
			Company:     input.Body.Company,
			Location:    input.Body.Location,
			From:        input.Body.From,
			To:          input.Body.To,
			Current:     input.Body.Current,
			Description: input.Body.Description,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "remove-experience",
		Method:      http.MethodDelete,
		Path:        "/profile/experience/{entryId}",
		Summary:     "Remove a work-history entry",
		Description: "Removes the identified work-history entry. Removing an unknown entry leaves the profile unchanged.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *EntryDeleteInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := svc.RemoveExperience(ctx, user.UID, input.EntryID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-education",
		Method:      http.MethodPut,
		Path:        "/profile/education",
		Summary:     "Add an education entry",
		Description: "Prepends an education entry to the authenticated user's profile.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *EducationAddInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := svc.AddEducation(ctx, user.UID, profilesvc.EducationParams{
			School:       input.Body.School,
			Degree:       input.Body.Degree,
			FieldOfStudy: input.Body.FieldOfStudy,
			From:         input.Body.From,
			To:           input.Body.To,
			Current:      input.Body.Current,
			Description:  input.Body.Description,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "remove-education",
		Method:      http.MethodDelete,
		Path:        "/profile/education/{entryId}",
		Summary:     "Remove an education entry",
		Description: "Removes the identified education entry. Removing an unknown entry leaves the profile unchanged.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *EntryDeleteInput) (*ProfileOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := svc.RemoveEducation(ctx, user.UID, input.EntryID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func toHTTPProfile(p *profilesvc.Profile) Profile {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}

	experience := make([]Experience, len(p.Experience))
	for i, e := range p.Experience {
		experience[i] = Experience(e)
	}
	education := make([]Education, len(p.Education))
	for i, e := range p.Education {
		education[i] = Education(e)
	}

	return Profile{
		ID:             p.ID,
		UserID:         p.UserID,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Status:         p.Status,
		Bio:            p.Bio,
		GithubUsername: p.GithubUsername,
		Skills:         skills,
		Social:         Social(p.Social),
		Experience:     experience,
		Education:      education,
		CreatedAt:      timeutil.Time{Time: p.CreatedAt},
		UpdatedAt:      timeutil.Time{Time: p.UpdatedAt},
	}
}

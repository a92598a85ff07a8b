package profile

import "github.com/devconnect/profile-api/internal/platform/pagination"

// ProfileUpsertInput for POST /profile. Skills is comma-delimited; elements
// are trimmed and empty elements dropped before storage.
type ProfileUpsertInput struct {
	Body struct {
		Status         string `json:"status"                   minLength:"1" maxLength:"100"  required:"true" doc:"Professional status"          example:"Senior Developer"`
		Skills         string `json:"skills"                   minLength:"1" maxLength:"1000" required:"true" doc:"Comma-delimited skills"       example:"Go,SQL,Docker"`
		Company        string `json:"company,omitempty"        maxLength:"100"  doc:"Company name"         example:"Acme"`
		Website        string `json:"website,omitempty"        maxLength:"200"  doc:"Personal website URL" example:"https://dev.example.com"`
		Location       string `json:"location,omitempty"       maxLength:"100"  doc:"Location"             example:"Helsinki"`
		Bio            string `json:"bio,omitempty"            maxLength:"1000" doc:"Short biography"`
		GithubUsername string `json:"githubUsername,omitempty" maxLength:"100"  doc:"GitHub username"      example:"octocat"`
		YouTube        string `json:"youtube,omitempty"        maxLength:"200"  doc:"YouTube channel URL"`
		Twitter        string `json:"twitter,omitempty"        maxLength:"200"  doc:"Twitter profile URL"`
		Facebook       string `json:"facebook,omitempty"       maxLength:"200"  doc:"Facebook profile URL"`
		LinkedIn       string `json:"linkedin,omitempty"       maxLength:"200"  doc:"LinkedIn profile URL"`
		Instagram      string `json:"instagram,omitempty"      maxLength:"200"  doc:"Instagram profile URL"`
	}
}

// ProfileGetInput for GET /profile/me (no parameters)
type ProfileGetInput struct{}

// ProfileDeleteInput for DELETE /profile (no parameters)
type ProfileDeleteInput struct{}

// ProfilesListInput for GET /profiles
type ProfilesListInput struct {
	pagination.Params
}

// ProfileByUserInput for GET /profiles/user/{userId}
type ProfileByUserInput struct {
	UserID string `path:"userId" minLength:"1" maxLength:"128" doc:"Owning user identifier" example:"user-123"`
}

// ProfileByIDInput for GET /profiles/{profileId}
type ProfileByIDInput struct {
	ProfileID string `path:"profileId" minLength:"1" maxLength:"128" doc:"Profile identifier"`
}

// ExperienceAddInput for PUT /profile/experience
type ExperienceAddInput struct {
	Body struct {
		Title       string `json:"title"                 minLength:"1" maxLength:"100" required:"true" doc:"Job title"    example:"Senior Developer"`
		Company     string `json:"company"               minLength:"1" maxLength:"100" required:"true" doc:"Company name" example:"Acme"`
		From        string `json:"from"                  minLength:"1" maxLength:"30"  required:"true" doc:"Start date"   example:"2021-06-01"`
		Location    string `json:"location,omitempty"    maxLength:"100"  doc:"Job location" example:"Helsinki"`
		To          string `json:"to,omitempty"          maxLength:"30"   doc:"End date"`
		Current     bool   `json:"current,omitempty"     doc:"Currently employed here" example:"true"`
		Description string `json:"description,omitempty" maxLength:"1000" doc:"Role description"`
	}
}

// EducationAddInput for PUT /profile/education
type EducationAddInput struct {
	Body struct {
		School       string `json:"school"                minLength:"1" maxLength:"100" required:"true" doc:"School name"    example:"Aalto University"`
		Degree       string `json:"degree"                minLength:"1" maxLength:"100" required:"true" doc:"Degree earned"  example:"MSc"`
		FieldOfStudy string `json:"fieldofstudy"          minLength:"1" maxLength:"100" required:"true" doc:"Field of study" example:"Computer Science"`
		From         string `json:"from"                  minLength:"1" maxLength:"30"  required:"true" doc:"Start date"     example:"2016-09-01"`
		To           string `json:"to,omitempty"          maxLength:"30"   doc:"End date"`
		Current      bool   `json:"current,omitempty"     doc:"Currently enrolled"`
		Description  string `json:"description,omitempty" maxLength:"1000" doc:"Program description"`
	}
}

// EntryDeleteInput for DELETE /profile/experience/{entryId} and
// DELETE /profile/education/{entryId}
type EntryDeleteInput struct {
	EntryID string `path:"entryId" minLength:"1" maxLength:"128" doc:"Entry identifier"`
}

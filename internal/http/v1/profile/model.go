package profile

import (
	"github.com/devconnect/profile-api/internal/platform/timeutil"
)

// Social holds a profile's social links.
type Social struct {
	YouTube   string `json:"youtube,omitempty"   doc:"YouTube channel URL"   example:"https://youtube.com/c/dev"`
	Twitter   string `json:"twitter,omitempty"   doc:"Twitter profile URL"   example:"https://twitter.com/dev"`
	Facebook  string `json:"facebook,omitempty"  doc:"Facebook profile URL"  example:"https://facebook.com/dev"`
	LinkedIn  string `json:"linkedin,omitempty"  doc:"LinkedIn profile URL"  example:"https://linkedin.com/in/dev"`
	Instagram string `json:"instagram,omitempty" doc:"Instagram profile URL" example:"https://instagram.com/dev"`
}

// Experience is one work-history entry.
type Experience struct {
	ID          string `json:"id"                    doc:"Entry identifier"`
	Title       string `json:"title"                 doc:"Job title"        example:"Senior Developer"`
	Company     string `json:"company"               doc:"Company name"     example:"Acme"`
	Location    string `json:"location,omitempty"    doc:"Job location"     example:"Helsinki"`
	From        string `json:"from"                  doc:"Start date"       example:"2021-06-01"`
	To          string `json:"to,omitempty"          doc:"End date"`
	Current     bool   `json:"current"               doc:"Currently employed here" example:"true"`
	Description string `json:"description,omitempty" doc:"Role description"`
}

// Education is one education entry.
type Education struct {
	ID           string `json:"id"                    doc:"Entry identifier"`
	School       string `json:"school"                doc:"School name"     example:"Aalto University"`
	Degree       string `json:"degree"                doc:"Degree earned"   example:"MSc"`
	FieldOfStudy string `json:"fieldofstudy"          doc:"Field of study"  example:"Computer Science"`
	From         string `json:"from"                  doc:"Start date"      example:"2016-09-01"`
	To           string `json:"to,omitempty"          doc:"End date"`
	Current      bool   `json:"current"               doc:"Currently enrolled"`
	Description  string `json:"description,omitempty" doc:"Program description"`
}

// Profile represents a profile response.
type Profile struct {
	ID             string        `json:"id"                       doc:"Profile identifier"`
	UserID         string        `json:"userId"                   doc:"Owning user identifier"  example:"user-123"`
	Company        string        `json:"company,omitempty"        doc:"Company name"            example:"Acme"`
	Website        string        `json:"website,omitempty"        doc:"Personal website URL"`
	Location       string        `json:"location,omitempty"       doc:"Location"                example:"Helsinki"`
	Status         string        `json:"status"                   doc:"Professional status"     example:"Senior Developer"`
	Bio            string        `json:"bio,omitempty"            doc:"Short biography"`
	GithubUsername string        `json:"githubUsername,omitempty" doc:"GitHub username"         example:"octocat"`
	Skills         []string      `json:"skills"                   doc:"Skills"                  example:"[\"Go\",\"SQL\"]"`
	Social         Social        `json:"social"                   doc:"Social links"`
	Experience     []Experience  `json:"experience"               doc:"Work history, newest first"`
	Education      []Education   `json:"education"                doc:"Education history, newest first"`
	CreatedAt      timeutil.Time `json:"createdAt"                doc:"Creation timestamp"      example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt      timeutil.Time `json:"updatedAt"                doc:"Last update timestamp"   example:"2024-01-15T10:30:00.000Z"`
}

package github

import (
	"github.com/devconnect/profile-api/internal/platform/timeutil"
)

// Repo is one public repository shown on a profile page.
type Repo struct {
	Name        string        `json:"name"                  doc:"Repository name"        example:"hello-world"`
	FullName    string        `json:"fullName"              doc:"Owner-qualified name"   example:"octocat/hello-world"`
	Description string        `json:"description,omitempty" doc:"Repository description"`
	HTMLURL     string        `json:"htmlUrl"               doc:"Repository page URL"    example:"https://github.com/octocat/hello-world"`
	Language    string        `json:"language,omitempty"    doc:"Primary language"       example:"Go"`
	Stars       int           `json:"stars"                 doc:"Stargazer count"        example:"42"`
	Forks       int           `json:"forks"                 doc:"Fork count"             example:"10"`
	Watchers    int           `json:"watchers"              doc:"Watcher count"          example:"42"`
	CreatedAt   timeutil.Time `json:"createdAt"             doc:"Creation timestamp"`
	UpdatedAt   timeutil.Time `json:"updatedAt"             doc:"Last update timestamp"`
}

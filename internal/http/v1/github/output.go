package github

// ReposListData is the body for GET /profile/github/{username}.
type ReposListData struct {
	Repos []Repo `json:"repos" doc:"Earliest-created public repositories"`
	Count int    `json:"count" doc:"Number of repositories returned" example:"5"`
}

// ReposListOutput for GET /profile/github/{username}
type ReposListOutput struct {
	Body ReposListData
}

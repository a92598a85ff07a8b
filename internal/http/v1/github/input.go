package github

// ReposListInput for GET /profile/github/{username}
type ReposListInput struct {
	Username string `path:"username" minLength:"1" maxLength:"39" doc:"GitHub username" example:"octocat"`
}

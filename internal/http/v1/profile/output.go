package profile

// ProfileOutput wraps a single profile response.
type ProfileOutput struct {
	Body Profile
}

// ProfilesListData is the body for GET /profiles.
type ProfilesListData struct {
	Profiles []Profile `json:"profiles" doc:"Profiles in this page"`
	Count    int       `json:"count"    doc:"Number of profiles in this page" example:"20"`
}

// ProfilesListOutput for GET /profiles with pagination Link header.
type ProfilesListOutput struct {
	Link string `header:"Link" doc:"Pagination links (RFC 8288)"`
	Body ProfilesListData
}

package profile

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no profile exists for the requested key.
var ErrNotFound = errors.New("profile not found")

// Social holds a profile's social links. The record is stored as a whole:
// an upsert replaces it with exactly the links supplied in that call, so
// omitting a previously-set link clears it.
type Social struct {
	YouTube   string
	Twitter   string
	Facebook  string
	LinkedIn  string
	Instagram string
}

// Experience is one entry in a profile's work history. Entries belong to
// exactly one profile and have no identity outside it; the ID is generated
// at insertion and never reused within the profile.
type Experience struct {
	ID          string
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// Education is one entry in a profile's education history, with the same
// ownership and lifecycle as Experience.
type Education struct {
	ID           string
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// Profile is the stored aggregate: one per user, addressable both by the
// owning user ID and by its own generated ID.
type Profile struct {
	ID             string
	UserID         string
	Company        string
	Website        string
	Location       string
	Status         string
	Bio            string
	GithubUsername string
	Skills         []string
	Social         Social
	Experience     []Experience
	Education      []Education
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UpsertParams carries the normalized field set for a create-or-update.
// Nil pointer fields and a nil Skills slice leave the stored value untouched;
// Social always replaces the stored record wholesale.
type UpsertParams struct {
	Company        *string
	Website        *string
	Location       *string
	Status         *string
	Bio            *string
	GithubUsername *string
	Skills         []string
	Social         Social
}

// ExperienceParams describes a work-history entry to prepend.
type ExperienceParams struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationParams describes an education entry to prepend.
type EducationParams struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// Page is one page of a profile listing.
type Page struct {
	Profiles   []*Profile
	NextCursor string
}

// Service defines profile aggregate operations.
//
// Implementations must:
//   - keep at most one profile per user ID; Upsert creates on first call and
//     merges on later calls, never clearing fields absent from the params
//   - keep experience and education newest-first; inserts prepend, removals
//     preserve the relative order of the remaining entries
//   - treat removal of an unknown entry ID as a no-op on the collection
//   - serialize concurrent mutations of the same user's aggregate
type Service interface {
	Upsert(ctx context.Context, userID string, params UpsertParams) (*Profile, error)
	GetByUser(ctx context.Context, userID string) (*Profile, error)
	GetByID(ctx context.Context, profileID string) (*Profile, error)
	List(ctx context.Context, limit int, afterUserID string) (*Page, error)
	Delete(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, userID string, params ExperienceParams) (*Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID string) (*Profile, error)
	AddEducation(ctx context.Context, userID string, params EducationParams) (*Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID string) (*Profile, error)
}

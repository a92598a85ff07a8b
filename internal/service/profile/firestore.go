package profile

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/devconnect/profile-api/internal/platform/logging"
)

const profilesCollection = "profiles"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	if errors.Is(err, ErrNotFound) {
		return "not_found"
	}
	return "internal_error"
}

// Firestore document mapping. The document ID is the owning user's UID; the
// aggregate carries its own generated id in profile_id for secondary lookup.

type firestoreSocial struct {
	YouTube   string `firestore:"youtube"`
	Twitter   string `firestore:"twitter"`
	Facebook  string `firestore:"facebook"`
	LinkedIn  string `firestore:"linkedin"`
	Instagram string `firestore:"instagram"`
}

type firestoreExperience struct {
	ID          string `firestore:"id"`
	Title       string `firestore:"title"`
	Company     string `firestore:"company"`
	Location    string `firestore:"location"`
	From        string `firestore:"from"`
	To          string `firestore:"to"`
	Current     bool   `firestore:"current"`
	Description string `firestore:"description"`
}

type firestoreEducation struct {
	ID           string `firestore:"id"`
	School       string `firestore:"school"`
	Degree       string `firestore:"degree"`
	FieldOfStudy string `firestore:"fieldofstudy"`
	From         string `firestore:"from"`
	To           string `firestore:"to"`
	Current      bool   `firestore:"current"`
	Description  string `firestore:"description"`
}

type firestoreProfile struct {
	ProfileID      string                `firestore:"profile_id"`
	Company        string                `firestore:"company"`
	Website        string                `firestore:"website"`
	Location       string                `firestore:"location"`
	Status         string                `firestore:"status"`
	Bio            string                `firestore:"bio"`
	GithubUsername string                `firestore:"github_username"`
	Skills         []string              `firestore:"skills"`
	Social         firestoreSocial       `firestore:"social"`
	Experience     []firestoreExperience `firestore:"experience"`
	Education      []firestoreEducation  `firestore:"education"`
	CreatedAt      time.Time             `firestore:"created_at"`
	UpdatedAt      time.Time             `firestore:"updated_at"`
}

// FirestoreStore implements Service on Firestore. Every mutation runs in a
// transaction on the single aggregate document, so concurrent writers for the
// same user retry instead of interleaving their read-modify-write cycles.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Upsert creates the user's profile on first call and merges params into it on
// later calls. Fields absent from params keep their stored values; Social is
// replaced with exactly the links supplied.
func (s *FirestoreStore) Upsert(ctx context.Context, userID string, params UpsertParams) (*Profile, error) {
	docRef := s.client.Collection(profilesCollection).Doc(userID)
	now := time.Now().UTC()

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		fp, err := txGet(tx, docRef)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return err
			}
			fp = &firestoreProfile{
				ProfileID: uuid.NewString(),
				CreatedAt: now,
			}
		}

		applyUpsert(fp, params)
		fp.UpdatedAt = now

		if err := tx.Set(docRef, fp); err != nil {
			return err
		}
		result = toProfile(userID, fp)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "upsert", userID, "profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "upsert", userID, "profile", userID, "success", nil)

	return result, nil
}

// GetByUser retrieves the profile owned by the given user ID.
func (s *FirestoreStore) GetByUser(ctx context.Context, userID string) (*Profile, error) {
	doc, err := s.client.Collection(profilesCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}
	return toProfile(doc.Ref.ID, &fp), nil
}

// GetByID retrieves a profile by its aggregate id.
func (s *FirestoreStore) GetByID(ctx context.Context, profileID string) (*Profile, error) {
	iter := s.client.Collection(profilesCollection).
		Where("profile_id", "==", profileID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}
	return toProfile(doc.Ref.ID, &fp), nil
}

// List returns a page of profiles ordered by owning user ID. A non-empty
// afterUserID resumes the listing after that user.
func (s *FirestoreStore) List(ctx context.Context, limit int, afterUserID string) (*Page, error) {
	query := s.client.Collection(profilesCollection).
		OrderBy(firestore.DocumentID, firestore.Asc)
	if afterUserID != "" {
		query = query.StartAfter(afterUserID)
	}

	// Fetch one extra row to learn whether another page exists.
	docs, err := query.Limit(limit + 1).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	page := &Page{}
	if len(docs) > limit {
		docs = docs[:limit]
		page.NextCursor = docs[len(docs)-1].Ref.ID
	}

	page.Profiles = make([]*Profile, 0, len(docs))
	for _, doc := range docs {
		var fp firestoreProfile
		if err := doc.DataTo(&fp); err != nil {
			return nil, err
		}
		page.Profiles = append(page.Profiles, toProfile(doc.Ref.ID, &fp))
	}
	return page, nil
}

// Delete removes the user's profile, reporting ErrNotFound if none exists.
func (s *FirestoreStore) Delete(ctx context.Context, userID string) error {
	docRef := s.client.Collection(profilesCollection).Doc(userID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := txGet(tx, docRef); err != nil {
			return err
		}
		return tx.Delete(docRef)
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "delete", userID, "profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return err
	}

	applog.LogAuditEvent(ctx, "delete", userID, "profile", userID, "success", nil)

	return nil
}

// AddExperience prepends a work-history entry with a freshly generated id.
func (s *FirestoreStore) AddExperience(ctx context.Context, userID string, params ExperienceParams) (*Profile, error) {
	entry := firestoreExperience{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Company:     params.Company,
		Location:    params.Location,
		From:        params.From,
		To:          params.To,
		Current:     params.Current,
		Description: params.Description,
	}
	return s.mutate(ctx, "add_experience", userID, func(fp *firestoreProfile) bool {
		fp.Experience = append([]firestoreExperience{entry}, fp.Experience...)
		return true
	})
}

// RemoveExperience removes the entry with the given id, preserving the order
// of the rest. An unknown id leaves the collection untouched.
func (s *FirestoreStore) RemoveExperience(ctx context.Context, userID, entryID string) (*Profile, error) {
	return s.mutate(ctx, "remove_experience", userID, func(fp *firestoreProfile) bool {
		for i, entry := range fp.Experience {
			if entry.ID == entryID {
				fp.Experience = append(fp.Experience[:i:i], fp.Experience[i+1:]...)
				return true
			}
		}
		return false
	})
}

// AddEducation prepends an education entry with a freshly generated id.
func (s *FirestoreStore) AddEducation(ctx context.Context, userID string, params EducationParams) (*Profile, error) {
	entry := firestoreEducation{
		ID:           uuid.NewString(),
		School:       params.School,
		Degree:       params.Degree,
		FieldOfStudy: params.FieldOfStudy,
		From:         params.From,
		To:           params.To,
		Current:      params.Current,
		Description:  params.Description,
	}
	return s.mutate(ctx, "add_education", userID, func(fp *firestoreProfile) bool {
		fp.Education = append([]firestoreEducation{entry}, fp.Education...)
		return true
	})
}

// RemoveEducation removes the entry with the given id, preserving the order
// of the rest. An unknown id leaves the collection untouched.
func (s *FirestoreStore) RemoveEducation(ctx context.Context, userID, entryID string) (*Profile, error) {
	return s.mutate(ctx, "remove_education", userID, func(fp *firestoreProfile) bool {
		for i, entry := range fp.Education {
			if entry.ID == entryID {
				fp.Education = append(fp.Education[:i:i], fp.Education[i+1:]...)
				return true
			}
		}
		return false
	})
}

// mutate runs a sub-collection edit in a transaction against the user's
// aggregate. The edit func reports whether it changed anything; unchanged
// aggregates are returned without a write.
func (s *FirestoreStore) mutate(ctx context.Context, action, userID string, edit func(*firestoreProfile) bool) (*Profile, error) {
	docRef := s.client.Collection(profilesCollection).Doc(userID)

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		fp, err := txGet(tx, docRef)
		if err != nil {
			return err
		}

		if !edit(fp) {
			result = toProfile(userID, fp)
			return nil
		}

		fp.UpdatedAt = time.Now().UTC()
		if err := tx.Set(docRef, fp); err != nil {
			return err
		}
		result = toProfile(userID, fp)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, action, userID, "profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, action, userID, "profile", userID, "success", nil)

	return result, nil
}

func txGet(tx *firestore.Transaction, docRef *firestore.DocumentRef) (*firestoreProfile, error) {
	doc, err := tx.Get(docRef)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}
	return &fp, nil
}

func applyUpsert(fp *firestoreProfile, params UpsertParams) {
	if params.Company != nil {
		fp.Company = *params.Company
	}
	if params.Website != nil {
		fp.Website = *params.Website
	}
	if params.Location != nil {
		fp.Location = *params.Location
	}
	if params.Status != nil {
		fp.Status = *params.Status
	}
	if params.Bio != nil {
		fp.Bio = *params.Bio
	}
	if params.GithubUsername != nil {
		fp.GithubUsername = *params.GithubUsername
	}
	if params.Skills != nil {
		fp.Skills = params.Skills
	}
	fp.Social = firestoreSocial{
		YouTube:   params.Social.YouTube,
		Twitter:   params.Social.Twitter,
		Facebook:  params.Social.Facebook,
		LinkedIn:  params.Social.LinkedIn,
		Instagram: params.Social.Instagram,
	}
}

func toProfile(userID string, fp *firestoreProfile) *Profile {
	p := &Profile{
		ID:             fp.ProfileID,
		UserID:         userID,
		Company:        fp.Company,
		Website:        fp.Website,
		Location:       fp.Location,
		Status:         fp.Status,
		Bio:            fp.Bio,
		GithubUsername: fp.GithubUsername,
		Skills:         append([]string(nil), fp.Skills...),
		Social: Social{
			YouTube:   fp.Social.YouTube,
			Twitter:   fp.Social.Twitter,
			Facebook:  fp.Social.Facebook,
			LinkedIn:  fp.Social.LinkedIn,
			Instagram: fp.Social.Instagram,
		},
		CreatedAt: fp.CreatedAt,
		UpdatedAt: fp.UpdatedAt,
	}

	p.Experience = make([]Experience, len(fp.Experience))
	for i, e := range fp.Experience {
		p.Experience[i] = Experience(e)
	}
	p.Education = make([]Education, len(fp.Education))
	for i, e := range fp.Education {
		p.Education[i] = Education(e)
	}
	return p
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)

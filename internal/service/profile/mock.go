package profile

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockProfileService is an in-memory Service for tests. It applies the same
// merge, ordering, and no-op rules as the Firestore store, guarded by a mutex
// so concurrent test traffic stays serialized.
type MockProfileService struct {
	mu       sync.Mutex
	profiles map[string]*Profile
}

// NewMockProfileService creates an empty in-memory service.
func NewMockProfileService() *MockProfileService {
	return &MockProfileService{profiles: make(map[string]*Profile)}
}

// Clear removes all stored profiles.
func (m *MockProfileService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[string]*Profile)
}

func (m *MockProfileService) Upsert(_ context.Context, userID string, params UpsertParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	p, ok := m.profiles[userID]
	if !ok {
		p = &Profile{
			ID:        uuid.NewString(),
			UserID:    userID,
			CreatedAt: now,
		}
		m.profiles[userID] = p
	}

	if params.Company != nil {
		p.Company = *params.Company
	}
	if params.Website != nil {
		p.Website = *params.Website
	}
	if params.Location != nil {
		p.Location = *params.Location
	}
	if params.Status != nil {
		p.Status = *params.Status
	}
	if params.Bio != nil {
		p.Bio = *params.Bio
	}
	if params.GithubUsername != nil {
		p.GithubUsername = *params.GithubUsername
	}
	if params.Skills != nil {
		p.Skills = append([]string(nil), params.Skills...)
	}
	p.Social = params.Social
	p.UpdatedAt = now

	return clone(p), nil
}

func (m *MockProfileService) GetByUser(_ context.Context, userID string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(p), nil
}

func (m *MockProfileService) GetByID(_ context.Context, profileID string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.profiles {
		if p.ID == profileID {
			return clone(p), nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockProfileService) List(_ context.Context, limit int, afterUserID string) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	userIDs := make([]string, 0, len(m.profiles))
	for id := range m.profiles {
		userIDs = append(userIDs, id)
	}
	slices.Sort(userIDs)

	page := &Page{Profiles: []*Profile{}}
	for _, id := range userIDs {
		if afterUserID != "" && id <= afterUserID {
			continue
		}
		if len(page.Profiles) == limit {
			page.NextCursor = page.Profiles[limit-1].UserID
			break
		}
		page.Profiles = append(page.Profiles, clone(m.profiles[id]))
	}
	return page, nil
}

func (m *MockProfileService) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[userID]; !ok {
		return ErrNotFound
	}
	delete(m.profiles, userID)
	return nil
}

func (m *MockProfileService) AddExperience(_ context.Context, userID string, params ExperienceParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	entry := Experience{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Company:     params.Company,
		Location:    params.Location,
		From:        params.From,
		To:          params.To,
		Current:     params.Current,
		Description: params.Description,
	}
	p.Experience = append([]Experience{entry}, p.Experience...)
	p.UpdatedAt = time.Now().UTC()
	return clone(p), nil
}

func (m *MockProfileService) RemoveExperience(_ context.Context, userID, entryID string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	for i, entry := range p.Experience {
		if entry.ID == entryID {
			p.Experience = append(p.Experience[:i:i], p.Experience[i+1:]...)
			p.UpdatedAt = time.Now().UTC()
			break
		}
	}
	return clone(p), nil
}

func (m *MockProfileService) AddEducation(_ context.Context, userID string, params EducationParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	entry := Education{
		ID:           uuid.NewString(),
		School:       params.School,
		Degree:       params.Degree,
		FieldOfStudy: params.FieldOfStudy,
		From:         params.From,
		To:           params.To,
		Current:      params.Current,
		Description:  params.Description,
	}
	p.Education = append([]Education{entry}, p.Education...)
	p.UpdatedAt = time.Now().UTC()
	return clone(p), nil
}

func (m *MockProfileService) RemoveEducation(_ context.Context, userID, entryID string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	for i, entry := range p.Education {
		if entry.ID == entryID {
			p.Education = append(p.Education[:i:i], p.Education[i+1:]...)
			p.UpdatedAt = time.Now().UTC()
			break
		}
	}
	return clone(p), nil
}

func clone(p *Profile) *Profile {
	c := *p
	c.Skills = append([]string(nil), p.Skills...)
	c.Experience = append([]Experience(nil), p.Experience...)
	c.Education = append([]Education(nil), p.Education...)
	return &c
}

// Compile-time interface check
var _ Service = (*MockProfileService)(nil)

package profile

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func strptr(s string) *string { return &s }

func TestMockUpsertCreate(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	p, err := svc.Upsert(ctx, "user-123", UpsertParams{
		Status:   strptr("Developer"),
		Company:  strptr("Acme"),
		Skills:   []string{"Go", "SQL"},
		Social:   Social{Twitter: "https://twitter.com/dev"},
		Location: strptr("Helsinki"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ID == "" {
		t.Error("expected generated profile ID")
	}
	if p.UserID != "user-123" {
		t.Errorf("expected user ID user-123, got %s", p.UserID)
	}
	if p.Status != "Developer" {
		t.Errorf("expected status Developer, got %s", p.Status)
	}
	if p.Company != "Acme" {
		t.Errorf("expected company Acme, got %s", p.Company)
	}
	if len(p.Skills) != 2 {
		t.Errorf("expected 2 skills, got %v", p.Skills)
	}
	if p.Social.Twitter != "https://twitter.com/dev" {
		t.Errorf("expected twitter link, got %q", p.Social.Twitter)
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if p.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestMockUpsertMergePreservesOmittedFields(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "user-123", UpsertParams{
		Status:  strptr("Developer"),
		Company: strptr("Acme"),
		Bio:     strptr("Building things"),
		Skills:  []string{"Go"},
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	p, err := svc.Upsert(ctx, "user-123", UpsertParams{
		Status: strptr("Senior Developer"),
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if p.Status != "Senior Developer" {
		t.Errorf("expected updated status, got %s", p.Status)
	}
	if p.Company != "Acme" {
		t.Errorf("expected company preserved, got %q", p.Company)
	}
	if p.Bio != "Building things" {
		t.Errorf("expected bio preserved, got %q", p.Bio)
	}
	if len(p.Skills) != 1 || p.Skills[0] != "Go" {
		t.Errorf("expected skills preserved, got %v", p.Skills)
	}
}

func TestMockUpsertKeepsProfileID(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	first, err := svc.Upsert(ctx, "user-123", UpsertParams{Status: strptr("Developer")})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second, err := svc.Upsert(ctx, "user-123", UpsertParams{Status: strptr("Manager")})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected stable profile ID across upserts, got %s then %s", first.ID, second.ID)
	}
}

func TestMockUpsertReplacesSocialWholesale(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "user-123", UpsertParams{
		Status: strptr("Developer"),
		Social: Social{Twitter: "https://twitter.com/dev", YouTube: "https://youtube.com/c/dev"},
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	p, err := svc.Upsert(ctx, "user-123", UpsertParams{
		Social: Social{Twitter: "https://twitter.com/newdev"},
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if p.Social.Twitter != "https://twitter.com/newdev" {
		t.Errorf("expected updated twitter, got %q", p.Social.Twitter)
	}
	if p.Social.YouTube != "" {
		t.Errorf("expected omitted youtube link cleared, got %q", p.Social.YouTube)
	}
}

func TestMockGetByUserNotFound(t *testing.T) {
	svc := NewMockProfileService()

	_, err := svc.GetByUser(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockGetByID(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	created, err := svc.Upsert(ctx, "user-123", UpsertParams{Status: strptr("Developer")})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	p, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.UserID != "user-123" {
		t.Errorf("expected user ID user-123, got %s", p.UserID)
	}

	if _, err := svc.GetByID(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown profile ID, got %v", err)
	}
}

func TestMockList(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	for _, uid := range []string{"user-a", "user-b", "user-c"} {
		if _, err := svc.Upsert(ctx, uid, UpsertParams{Status: strptr("Developer")}); err != nil {
			t.Fatalf("upsert %s failed: %v", uid, err)
		}
	}

	page, err := svc.List(ctx, 2, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(page.Profiles))
	}
	if page.Profiles[0].UserID != "user-a" || page.Profiles[1].UserID != "user-b" {
		t.Errorf("expected user-a, user-b, got %s, %s", page.Profiles[0].UserID, page.Profiles[1].UserID)
	}
	if page.NextCursor != "user-b" {
		t.Errorf("expected cursor user-b, got %q", page.NextCursor)
	}

	page, err = svc.List(ctx, 2, page.NextCursor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Profiles) != 1 || page.Profiles[0].UserID != "user-c" {
		t.Fatalf("expected final page with user-c, got %+v", page.Profiles)
	}
	if page.NextCursor != "" {
		t.Errorf("expected empty cursor on final page, got %q", page.NextCursor)
	}
}

func TestMockDelete(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, "user-123", UpsertParams{Status: strptr("Developer")}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := svc.Delete(ctx, "user-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.GetByUser(ctx, "user-123"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected profile gone after delete, got %v", err)
	}

	if err := svc.Delete(ctx, "user-123"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestMockAddExperiencePrepends(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, "user-123", UpsertParams{Status: strptr("Developer")}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if _, err := svc.AddExperience(ctx, "user-123", ExperienceParams{
		Title: "Junior Developer", Company: "Acme", From: "2018-01-01",
	}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	p, err := svc.AddExperience(ctx, "user-123", ExperienceParams{
		Title: "Senior Developer", Company: "Globex", From: "2021-06-01", Current: true,
	})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(p.Experience) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(p.Experience))
	}
	if p.Experience[0].Title != "Senior Developer" {
		t.Errorf("expected newest entry first, got %s", p.Experience[0].Title)
	}
	if p.Experience[1].Title != "Junior Developer" {
		t.Errorf("expected older entry second, got %s", p.Experience[1].Title)
	}
	if p.Experience[0].ID == "" || p.Experience[0].ID == p.Experience[1].ID {
		t.Error("expected distinct generated entry IDs")
	}
}

func TestMockAddExperienceNoProfile(t *testing.T) {
	svc := NewMockProfileService()

	_, err := svc.AddExperience(context.Background(), "missing", ExperienceParams{
		Title: "Developer", Company: "Acme", From: "2020-01-01",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockRemoveExperience(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, "user-123", UpsertParams{Status: strptr("Developer")}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	_, _ = svc.AddExperience(ctx, "user-123", ExperienceParams{Title: "First", Company: "A", From: "2018"})
	_, _ = svc.AddExperience(ctx, "user-123", ExperienceParams{Title: "Second", Company: "B", From: "2020"})
	p, _ := svc.AddExperience(ctx, "user-123", ExperienceParams{Title: "Third", Company: "C", From: "2022"})

	// Remove the middle entry; the others keep their relative order.
	target := p.Experience[1].ID
	p, err := svc.RemoveExperience(ctx, "user-123", target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Experience) != 2 {
		t.Fatalf("expected 2 entries after removal, got %d", len(p.Experience))
	}
	if p.Experience[0].Title != "Third" || p.Experience[1].Title != "First" {
		t.Errorf("expected [Third First], got [%s %s]", p.Experience[0].Title, p.Experience[1].Title)
	}
}

func TestMockRemoveExperienceUnknownIDIsNoOp(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, "user-123", UpsertParams{Status: strptr("Developer")}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	_, _ = svc.AddExperience(ctx, "user-123", ExperienceParams{Title: "Only", Company: "A", From: "2020"})

	p, err := svc.RemoveExperience(ctx, "user-123", "no-such-entry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Experience) != 1 {
		t.Fatalf("expected entry untouched, got %d entries", len(p.Experience))
	}
}

func TestMockEducationLifecycle(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, "user-123", UpsertParams{Status: strptr("Developer")}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	_, _ = svc.AddEducation(ctx, "user-123", EducationParams{
		School: "University of Helsinki", Degree: "BSc", FieldOfStudy: "CS", From: "2012",
	})
	p, err := svc.AddEducation(ctx, "user-123", EducationParams{
		School: "Aalto University", Degree: "MSc", FieldOfStudy: "CS", From: "2016",
	})
	if err != nil {
		t.Fatalf("add education failed: %v", err)
	}
	if len(p.Education) != 2 || p.Education[0].School != "Aalto University" {
		t.Fatalf("expected newest education first, got %+v", p.Education)
	}

	p, err = svc.RemoveEducation(ctx, "user-123", p.Education[0].ID)
	if err != nil {
		t.Fatalf("remove education failed: %v", err)
	}
	if len(p.Education) != 1 || p.Education[0].School != "University of Helsinki" {
		t.Fatalf("expected single remaining entry, got %+v", p.Education)
	}

	p, err = svc.RemoveEducation(ctx, "user-123", "no-such-entry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Education) != 1 {
		t.Fatalf("expected no-op for unknown entry ID, got %d entries", len(p.Education))
	}
}

func TestMockConcurrentUpserts(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Upsert(ctx, "user-123", UpsertParams{Status: strptr("Developer")})
		}()
	}
	wg.Wait()

	p, err := svc.GetByUser(ctx, "user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != "Developer" {
		t.Errorf("expected status Developer, got %s", p.Status)
	}
}

func TestMockCloneIsolation(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	p, err := svc.Upsert(ctx, "user-123", UpsertParams{
		Status: strptr("Developer"),
		Skills: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	p.Skills[0] = "mutated"
	p.Status = "mutated"

	stored, err := svc.GetByUser(ctx, "user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Skills[0] != "Go" || stored.Status != "Developer" {
		t.Error("expected stored profile unaffected by caller mutation")
	}
}

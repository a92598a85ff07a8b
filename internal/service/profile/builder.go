package profile

import "strings"

// RawFields is a profile payload as submitted by a caller, before
// normalization. Scalar fields are plain strings; Skills is the
// comma-delimited form.
type RawFields struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Bio            string
	GithubUsername string
	Skills         string
	YouTube        string
	Twitter        string
	Facebook       string
	LinkedIn       string
	Instagram      string
}

// BuildUpsertParams normalizes raw input into the field set consumed by
// Upsert. A scalar is included only when non-empty after trimming, so absent
// input never clears a stored value. Social is carried through as given:
// the stored record is replaced with exactly these links.
func BuildUpsertParams(raw RawFields) UpsertParams {
	return UpsertParams{
		Company:        optional(raw.Company),
		Website:        optional(raw.Website),
		Location:       optional(raw.Location),
		Status:         optional(raw.Status),
		Bio:            optional(raw.Bio),
		GithubUsername: optional(raw.GithubUsername),
		Skills:         SplitSkills(raw.Skills),
		Social: Social{
			YouTube:   strings.TrimSpace(raw.YouTube),
			Twitter:   strings.TrimSpace(raw.Twitter),
			Facebook:  strings.TrimSpace(raw.Facebook),
			LinkedIn:  strings.TrimSpace(raw.LinkedIn),
			Instagram: strings.TrimSpace(raw.Instagram),
		},
	}
}

// SplitSkills splits a comma-delimited skills string, trimming each element.
// Elements left empty by consecutive or trailing delimiters are dropped.
// Returns nil for input with no usable elements, which Upsert treats as
// "leave stored skills unchanged".
func SplitSkills(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

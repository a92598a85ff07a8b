package profile

import (
	"reflect"
	"testing"
)

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple list", "Go,Python,SQL", []string{"Go", "Python", "SQL"}},
		{"whitespace trimmed", " Go , Python ,  SQL ", []string{"Go", "Python", "SQL"}},
		{"empty elements dropped", "Go,,Python,", []string{"Go", "Python"}},
		{"single skill", "Go", []string{"Go"}},
		{"empty input", "", nil},
		{"only whitespace", "   ", nil},
		{"only delimiters", ", ,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSkills(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSkills(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildUpsertParamsScalars(t *testing.T) {
	params := BuildUpsertParams(RawFields{
		Company:  "  Acme  ",
		Status:   "Developer",
		Skills:   "Go, SQL",
		Location: "",
	})

	if params.Company == nil || *params.Company != "Acme" {
		t.Errorf("expected company Acme, got %v", params.Company)
	}
	if params.Status == nil || *params.Status != "Developer" {
		t.Errorf("expected status Developer, got %v", params.Status)
	}
	if params.Location != nil {
		t.Errorf("expected nil location for empty input, got %q", *params.Location)
	}
	if params.Website != nil {
		t.Errorf("expected nil website for omitted input, got %q", *params.Website)
	}
	if !reflect.DeepEqual(params.Skills, []string{"Go", "SQL"}) {
		t.Errorf("expected skills [Go SQL], got %v", params.Skills)
	}
}

func TestBuildUpsertParamsWhitespaceOnlyScalar(t *testing.T) {
	params := BuildUpsertParams(RawFields{Bio: "   "})

	if params.Bio != nil {
		t.Errorf("expected whitespace-only bio to be omitted, got %q", *params.Bio)
	}
}

func TestBuildUpsertParamsSocial(t *testing.T) {
	params := BuildUpsertParams(RawFields{
		YouTube: " https://youtube.com/c/dev ",
		Twitter: "https://twitter.com/dev",
	})

	if params.Social.YouTube != "https://youtube.com/c/dev" {
		t.Errorf("expected trimmed youtube link, got %q", params.Social.YouTube)
	}
	if params.Social.Twitter != "https://twitter.com/dev" {
		t.Errorf("expected twitter link, got %q", params.Social.Twitter)
	}
	if params.Social.Facebook != "" {
		t.Errorf("expected empty facebook, got %q", params.Social.Facebook)
	}
}

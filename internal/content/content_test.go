package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const flatContent = `{
	"language": "de",
	"metadata": {"title": "Demo", "location": "Berlin", "dates": {"start": "2025-03-01", "end": "2025-03-03"}},
	"company": {"name": "Acme GmbH"},
	"participants": {
		"customer": [{"name": "Ada", "role": "Engineer"}],
		"oneThousand": [{"name": "Grace"}]
	},
	"sections": [
		{"id": "background", "title": "Background", "content": "Some **markdown**."}
	],
	"useCases": [{"title": "Forecasting"}]
}`

const nestedContent = `{
	"structuredData": {
		"language": "en",
		"sections": [{"id": "goal", "content": "Reach the summit."}]
	}
}`

func TestParseFlat(t *testing.T) {
	doc, err := Parse([]byte(flatContent))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if doc.Language != "de" {
		t.Errorf("Language = %q, want de", doc.Language)
	}
	if doc.Company.Name != "Acme GmbH" {
		t.Errorf("Company.Name = %q", doc.Company.Name)
	}
	if doc.Participants.Total() != 2 {
		t.Errorf("Participants.Total() = %d, want 2", doc.Participants.Total())
	}
	if len(doc.Sections) != 1 || doc.Sections[0].ID != "background" {
		t.Errorf("Sections = %+v", doc.Sections)
	}
	if doc.Metadata.Dates == nil || doc.Metadata.Dates.Start != "2025-03-01" {
		t.Errorf("Metadata.Dates = %+v", doc.Metadata.Dates)
	}
}

func TestParseNested(t *testing.T) {
	doc, err := Parse([]byte(nestedContent))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if doc.Language != "en" {
		t.Errorf("Language = %q, want en", doc.Language)
	}
	if len(doc.Sections) != 1 || doc.Sections[0].ID != "goal" {
		t.Errorf("Sections = %+v", doc.Sections)
	}
}

func TestParseDefaultsLanguage(t *testing.T) {
	doc, err := Parse([]byte(`{"sections": [{"id": "goal", "content": "x"}]}`))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if doc.Language != DefaultLanguage {
		t.Errorf("Language = %q, want %q", doc.Language, DefaultLanguage)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "invalid JSON",
			input:   `{not json`,
			wantErr: ErrContentParse,
		},
		{
			name:    "missing sections",
			input:   `{"company": {"name": "Acme"}}`,
			wantErr: ErrContentInvalid,
		},
		{
			name:    "section without id",
			input:   `{"sections": [{"content": "x"}]}`,
			wantErr: ErrContentInvalid,
		},
		{
			name:    "unsupported language",
			input:   `{"language": "fr", "sections": [{"id": "a", "content": "x"}]}`,
			wantErr: ErrContentInvalid,
		},
		{
			name:    "participant without name",
			input:   `{"sections": [{"id": "a", "content": "x"}], "participants": {"customer": [{"role": "CTO"}]}}`,
			wantErr: ErrContentInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	if err := os.WriteFile(path, []byte(nestedContent), 0o600); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Errorf("Sections = %+v", doc.Sections)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrContentRead) {
		t.Errorf("Load() error = %v, want %v", err, ErrContentRead)
	}
}

func TestParticipantDisplay(t *testing.T) {
	if got := (Participant{Name: "Ada", Role: "Engineer"}).Display(); got != "Ada (Engineer)" {
		t.Errorf("Display() = %q", got)
	}
	if got := (Participant{Name: "Ada"}).Display(); got != "Ada" {
		t.Errorf("Display() = %q", got)
	}
}

func TestSectionDisplayTitle(t *testing.T) {
	if got := (Section{Title: " Custom "}).DisplayTitle("Fallback"); got != "Custom" {
		t.Errorf("DisplayTitle() = %q", got)
	}
	if got := (Section{}).DisplayTitle("Fallback"); got != "Fallback" {
		t.Errorf("DisplayTitle() = %q", got)
	}
}

func TestSectionByID(t *testing.T) {
	doc := &Document{Sections: []Section{{ID: "goal", Content: "x"}}}
	if _, ok := doc.SectionByID("goal"); !ok {
		t.Error("SectionByID(goal) not found")
	}
	if _, ok := doc.SectionByID("missing"); ok {
		t.Error("SectionByID(missing) unexpectedly found")
	}
}

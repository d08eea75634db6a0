package brand

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSectionKindTitle(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		language string
		expected string
	}{
		{"english title", "background", "en", "Background"},
		{"german title", "background", "de", "Hintergrund"},
		{"unknown language falls back to english", "goal", "fr", "Goal"},
		{"unknown section falls back to id", "warp_core", "en", "warp_core"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SectionTitle(tt.id, tt.language)
			if got != tt.expected {
				t.Errorf("SectionTitle(%q, %q) = %q, want %q", tt.id, tt.language, got, tt.expected)
			}
		})
	}
}

func TestTOCTitle(t *testing.T) {
	if got := TOCTitle("de"); got != "INHALTSVERZEICHNIS" {
		t.Errorf("TOCTitle(de) = %q", got)
	}
	if got := TOCTitle("en"); got != "TABLE OF CONTENTS" {
		t.Errorf("TOCTitle(en) = %q", got)
	}
}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		name         string
		participants int
		nameLength   int
		expected     TitlePageProfile
	}{
		{"small roster", 5, 10, ProfileDefault},
		{"boundary stays default", 14, 30, ProfileDefault},
		{"many participants", 15, 10, ProfileMedium},
		{"long company name", 5, 31, ProfileMedium},
		{"crowded roster", 21, 10, ProfileCompact},
		{"very long company name", 5, 41, ProfileCompact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProfileFor(tt.participants, tt.nameLength)
			if got != tt.expected {
				t.Errorf("ProfileFor(%d, %d) selected wrong profile", tt.participants, tt.nameLength)
			}
		})
	}
}

func TestBuildTOCEntries(t *testing.T) {
	sections := []TOCSection{
		{ID: "results", Title: ""},
		{ID: "background", Title: "Our Story"},
		{ID: "unknown_section", Title: "Ignored"},
	}

	got := BuildTOCEntries(sections, "en")
	expected := []TOCEntry{
		{Key: "background", Title: "Our Story", Level: 1, SectionID: "background", NumberLabel: "1"},
		{Key: "results", Title: "Results", Level: 1, SectionID: "results", NumberLabel: "2"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("BuildTOCEntries() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTOCEntriesEmpty(t *testing.T) {
	if got := BuildTOCEntries(nil, "en"); len(got) != 0 {
		t.Errorf("BuildTOCEntries(nil) = %v, want empty", got)
	}
}

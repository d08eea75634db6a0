// Package brand holds the static design constants shared by every
// generated artifact: colors, font families, page geometry, canonical
// section ordering, and the adaptive cover-page sizing profiles.
package brand

// Hex color values without the leading '#'.
const (
	SharpGreen     = "19A960"
	Ash            = "2F2F2F"
	NeuralLime     = "D5F89E"
	CeruleanBlue   = "829DB6"
	DeepBlack      = "000000"
	PureWhite      = "FFFFFF"
	GreenHighlight = "00B050" // slide inline highlights
	TableBorder    = "D1D5DB"
	TableHeaderBG  = "F5F5F5"
)

// Font family names.
const (
	FontHeading      = "Amsi Pro Narw Black"
	FontBody         = "Akkurat LL"
	FontDisplayTitle = "Wavetable"
	FontMono         = "Consolas"
)

// A4 page geometry in twips (1/20 point).
const (
	PageWidthTwips  = 11906
	PageHeightTwips = 16838
)

// CoverRowHeightTwips is the exact height of the single-cell cover
// table row, sized to fill the A4 page.
const CoverRowHeightTwips = 17600

// SectionOrder is the canonical rendering order for content sections.
// Sections absent from the content are skipped, never reordered.
var SectionOrder = []string{
	"background",
	"hackathon_structure",
	"challenge",
	"goal",
	"data",
	"approach",
	"results",
	"canvas",
	"user_flow",
	"conclusion",
}

// sectionTitles maps section IDs to localized display titles.
var sectionTitles = map[string]map[string]string{
	"participants":        {"de": "Teilnehmer", "en": "Participants"},
	"background":          {"de": "Hintergrund", "en": "Background"},
	"hackathon_structure": {"de": "Hackathon", "en": "Hackathon"},
	"challenge":           {"de": "Herausforderung", "en": "Challenge"},
	"goal":                {"de": "Ziel", "en": "Goal"},
	"data":                {"de": "Daten", "en": "Data"},
	"approach":            {"de": "Ansatz", "en": "Approach"},
	"results":             {"de": "Ergebnisse", "en": "Results"},
	"canvas":              {"de": "AI Breakthrough Canvas", "en": "AI Breakthrough Canvas"},
	"user_flow":           {"de": "Benutzerfluss", "en": "User Flow"},
	"conclusion":          {"de": "Fazit", "en": "Conclusion"},
}

// SectionTitle returns the localized title for a section ID, falling
// back to the ID itself for unknown sections.
func SectionTitle(id, language string) string {
	if titles, ok := sectionTitles[id]; ok {
		if title, ok := titles[language]; ok {
			return title
		}
		if title, ok := titles["en"]; ok {
			return title
		}
	}
	return id
}

// TOCTitle returns the localized table-of-contents heading.
func TOCTitle(language string) string {
	if language == "de" {
		return "INHALTSVERZEICHNIS"
	}
	return "TABLE OF CONTENTS"
}

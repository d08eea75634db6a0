package brand

import (
	"strconv"
	"strings"
)

// TOCSection is the minimal section shape the TOC builder needs.
type TOCSection struct {
	ID    string
	Title string
}

// TOCEntry is one table-of-contents line.
type TOCEntry struct {
	Key         string
	Title       string
	Level       int
	SectionID   string
	NumberLabel string
}

// BuildTOCEntries builds flat level-1 entries in canonical section
// order with sequential numbering. A section's own title wins over
// the localized default when present.
func BuildTOCEntries(sections []TOCSection, language string) []TOCEntry {
	byID := make(map[string]TOCSection, len(sections))
	for _, s := range sections {
		byID[s.ID] = s
	}

	var entries []TOCEntry
	for _, id := range SectionOrder {
		s, ok := byID[id]
		if !ok {
			continue
		}
		title := strings.TrimSpace(s.Title)
		if title == "" {
			title = SectionTitle(id, language)
		}
		entries = append(entries, TOCEntry{
			Key:       id,
			Title:     title,
			Level:     1,
			SectionID: id,
		})
	}

	for i := range entries {
		entries[i].NumberLabel = strconv.Itoa(i + 1)
	}
	return entries
}

// Package pptx renders the hackathon presentation deck: cover and
// agenda slides plus one slide per content section.
package pptx

import (
	"regexp"
	"strings"
)

// Style classifies a rich text segment.
type Style int

const (
	StyleNormal Style = iota
	StyleBold         // **text**
	StyleGreen        // <<text>>
)

// Segment is one styled piece of slide text.
type Segment struct {
	Text  string
	Style Style
}

// richToken matches the slide markup: **bold** and <<green>>.
var richToken = regexp.MustCompile(`\*\*.*?\*\*|<<.*?>>`)

// ParseRichSegments splits text into styled segments. Unmarked text
// becomes normal segments; empty pieces are dropped.
func ParseRichSegments(text string) []Segment {
	var segments []Segment
	appendPlain := func(s string) {
		if s != "" {
			segments = append(segments, Segment{Text: s, Style: StyleNormal})
		}
	}

	last := 0
	for _, loc := range richToken.FindAllStringIndex(text, -1) {
		appendPlain(text[last:loc[0]])
		token := text[loc[0]:loc[1]]
		switch {
		case strings.HasPrefix(token, "**"):
			segments = append(segments, Segment{Text: token[2 : len(token)-2], Style: StyleBold})
		default:
			segments = append(segments, Segment{Text: token[2 : len(token)-2], Style: StyleGreen})
		}
		last = loc[1]
	}
	appendPlain(text[last:])

	return segments
}

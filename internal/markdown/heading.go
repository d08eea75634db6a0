package markdown

import (
	"regexp"
	"strings"
)

// redundantHeading matches a level-2 heading line.
var redundantHeading = regexp.MustCompile(`^##\s+(.+)$`)

// StripRedundantHeading removes a leading "## ..." line whose text
// duplicates title (case-insensitively), together with the blank
// lines that follow it. Content sometimes repeats the section title
// as a heading; the renderer already emits the title itself.
func StripRedundantHeading(title, content string) string {
	lines := strings.Split(content, "\n")

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i < len(lines) {
		m := redundantHeading.FindStringSubmatch(lines[i])
		if m != nil && strings.EqualFold(strings.TrimSpace(m[1]), strings.TrimSpace(title)) {
			lines = append(lines[:i], lines[i+1:]...)
			for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
				lines = append(lines[:i], lines[i+1:]...)
			}
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

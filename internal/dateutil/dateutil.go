// Package dateutil formats the ISO dates found in content metadata
// for display on cover pages and slides.
package dateutil

import (
	"regexp"
	"strings"
)

// isoDate matches YYYY-MM-DD.
var isoDate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// FormatDisplay converts an ISO date (YYYY-MM-DD) to DD.MM.YYYY.
// Anything else passes through unchanged, so pre-formatted dates in
// content files survive as written.
func FormatDisplay(date string) string {
	m := isoDate.FindStringSubmatch(strings.TrimSpace(date))
	if m == nil {
		return date
	}
	return m[3] + "." + m[2] + "." + m[1]
}

// FormatRange renders a start/end pair as "start - end", dropping a
// missing side. Both sides go through FormatDisplay.
func FormatRange(start, end string) string {
	s := FormatDisplay(strings.TrimSpace(start))
	e := FormatDisplay(strings.TrimSpace(end))
	switch {
	case s == "" && e == "":
		return ""
	case e == "":
		return s
	case s == "":
		return e
	}
	return s + " - " + e
}

// LocationDate combines a location and a date line as
// "location, date", dropping whichever side is missing.
func LocationDate(location, date string) string {
	if location == "" {
		return date
	}
	if date == "" {
		return location
	}
	return location + ", " + date
}

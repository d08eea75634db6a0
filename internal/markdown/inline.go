package markdown

import "regexp"

// Run is one contiguous span of text sharing the same styling inside
// a block's text. Text carries no residual emphasis markers.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// inlineToken matches one emphasis token. Longest markers first so
// ***x*** is not split into ** + *x* + *. Double and triple markers
// lazily span inner single markers, which is what makes nested
// emphasis collapse to the outer style.
var inlineToken = regexp.MustCompile(
	"`[^`]+`" +
		`|\*\*\*.+?\*\*\*|___.+?___` +
		`|\*\*.+?\*\*|__.+?__` +
		`|\*[^*\n]+?\*|_[^_\n]+?_`,
)

// Anchored token classifiers, checked most-specific first.
var (
	boldItalicStar       = regexp.MustCompile(`^\*\*\*(.+)\*\*\*$`)
	boldItalicUnderscore = regexp.MustCompile(`^___(.+)___$`)
	boldStar             = regexp.MustCompile(`^\*\*(.+)\*\*$`)
	boldUnderscore       = regexp.MustCompile(`^__(.+)__$`)
	italicStar           = regexp.MustCompile(`^\*(.+)\*$`)
	italicUnderscore     = regexp.MustCompile(`^_(.+)_$`)
	codeSpan             = regexp.MustCompile("^`(.+)`$")
)

// Marker-stripping substitutions, applied in token-priority order.
var inlineStrips = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile("`([^`]+)`"), "$1"},
	{regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`), "$1"},
	{regexp.MustCompile(`___([^_]+)___`), "$1"},
	{regexp.MustCompile(`\*\*([^*]+)\*\*`), "$1"},
	{regexp.MustCompile(`__([^_]+)__`), "$1"},
	{regexp.MustCompile(`\*([^*\n]+)\*`), "$1"},
	{regexp.MustCompile(`_([^_\n]+)_`), "$1"},
}

// StripInline removes recognized emphasis markers and returns the
// plain text. Markers that do not form a complete pattern pass
// through unchanged. Idempotent on already-stripped text.
func StripInline(text string) string {
	for _, s := range inlineStrips {
		text = s.re.ReplaceAllString(text, s.repl)
	}
	return text
}

// ParseInline splits text into styled runs. Nested emphasis collapses
// to the outer style: the inner markers are stripped but produce no
// separate run. Never returns an empty slice; unmarked text yields a
// single plain run.
func ParseInline(text string) []Run {
	var runs []Run

	appendRun := func(text string, bold, italic bool) {
		if text != "" {
			runs = append(runs, Run{Text: text, Bold: bold, Italic: italic})
		}
	}

	for _, token := range splitTokens(text) {
		if inner, ok := matchEither(token, boldItalicStar, boldItalicUnderscore); ok {
			appendRun(StripInline(inner), true, true)
			continue
		}
		if inner, ok := matchEither(token, boldStar, boldUnderscore); ok {
			appendRun(StripInline(inner), true, false)
			continue
		}
		if inner, ok := matchEither(token, italicStar, italicUnderscore); ok {
			appendRun(StripInline(inner), false, true)
			continue
		}
		if m := codeSpan.FindStringSubmatch(token); m != nil {
			// Code spans render as ordinary text, markers dropped.
			appendRun(m[1], false, false)
			continue
		}
		appendRun(StripInline(token), false, false)
	}

	if len(runs) == 0 {
		cleaned := StripInline(text)
		if cleaned == "" {
			cleaned = text
		}
		runs = append(runs, Run{Text: cleaned})
	}
	return runs
}

// splitTokens segments text into emphasis tokens and the plain text
// between them, preserving original order.
func splitTokens(text string) []string {
	var tokens []string
	last := 0
	for _, loc := range inlineToken.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			tokens = append(tokens, text[last:loc[0]])
		}
		tokens = append(tokens, text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		tokens = append(tokens, text[last:])
	}
	return tokens
}

// matchEither returns the capture of the first classifier that
// matches the whole token.
func matchEither(token string, a, b *regexp.Regexp) (string, bool) {
	if m := a.FindStringSubmatch(token); m != nil {
		return m[1], true
	}
	if m := b.FindStringSubmatch(token); m != nil {
		return m[1], true
	}
	return "", false
}

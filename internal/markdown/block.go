package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

// Maximum nesting depth for unordered list items.
const MaxListIndent = 2

// Precompiled block-level patterns. Precedence between them is fixed:
// heading, image, table, ordered list, unordered list, paragraph.
var (
	// Fenced code region, non-greedy to the nearest closing fence.
	fencedCode = regexp.MustCompile("```[\\s\\S]*?```")

	// ATX heading: 1-6 '#', spaces, content.
	headingLine = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

	// Table separator row: optional enclosing pipes, cells of optional
	// colons around a dash run.
	tableSeparator = regexp.MustCompile(`^\|?\s*:?-+:?\s*(\|\s*:?-+:?\s*)+\|?$`)

	// Ordered list item: digits, dot, spaces.
	orderedItem = regexp.MustCompile(`^\d+\.\s+`)

	// Unordered list item: '-' or '*' marker, spaces.
	unorderedItem = regexp.MustCompile(`^[-*]\s+`)
)

// Block is one structural unit of parsed markdown. The concrete types
// are Heading, Paragraph, List, Image, and Table.
type Block interface {
	block()
}

// Heading is an ATX heading with level 1-6. Text is raw and may still
// carry inline emphasis markers.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of plain lines joined with single spaces.
type Paragraph struct {
	Text string
}

// ListItem is one entry of a List. Indent is the nesting depth,
// clamped to [0, MaxListIndent].
type ListItem struct {
	Text   string
	Indent int
}

// List is an ordered or unordered sequence of items. Items is never
// empty on a parsed List.
type List struct {
	Ordered bool
	Items   []ListItem
}

// Image is a single-line ![alt](url) reference. URL may be a data URL.
type Image struct {
	Alt string
	URL string
}

// Table holds the header row and data rows of a pipe table. Rows are
// not normalized to the header width; that is the renderer's job.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (List) block()      {}
func (Image) block()     {}
func (Table) block()     {}

// StripCodeFences removes all fenced code regions and trims the
// surrounding whitespace. Applied globally before block scanning, so
// fenced content inside lists or tables is deleted as well.
func StripCodeFences(text string) string {
	return strings.TrimSpace(fencedCode.ReplaceAllString(text, ""))
}

// ParseBlocks parses markdown text into an ordered block sequence.
// It never fails: malformed constructs degrade into paragraph text.
// Empty input yields an empty sequence.
func ParseBlocks(markdown string) []Block {
	if markdown == "" {
		return nil
	}

	lines := strings.Split(StripCodeFences(markdown), "\n")
	var blocks []Block
	i := 0

	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "" {
			i++
			continue
		}

		if m := headingLine.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, Heading{Level: len(m[1]), Text: strings.TrimSpace(m[2])})
			i++
			continue
		}

		if strings.HasPrefix(trimmed, "![") {
			if img, ok := parseImageLine(trimmed); ok {
				blocks = append(blocks, img)
				i++
				continue
			}
			// Structural mismatch: the line is ordinary paragraph text.
		}

		if isTableCandidate(lines, i) {
			tbl, next := parseTable(lines, i)
			blocks = append(blocks, tbl)
			i = next
			continue
		}

		if orderedItem.MatchString(trimmed) {
			list, next := parseList(lines, i, true)
			blocks = append(blocks, list)
			i = next
			continue
		}

		if unorderedItem.MatchString(trimmed) {
			list, next := parseList(lines, i, false)
			blocks = append(blocks, list)
			i = next
			continue
		}

		para, next := parseParagraph(lines, i)
		blocks = append(blocks, para)
		i = next
	}

	return blocks
}

// parseImageLine matches the strict ![alt](url) form: the line must
// end with ')' and the URL must be non-empty.
func parseImageLine(trimmed string) (Image, bool) {
	altEnd := strings.Index(trimmed, "](")
	if altEnd < 2 || !strings.HasSuffix(trimmed, ")") {
		return Image{}, false
	}
	url := strings.TrimSpace(trimmed[altEnd+2 : len(trimmed)-1])
	if url == "" {
		return Image{}, false
	}
	return Image{
		Alt: strings.TrimSpace(trimmed[2:altEnd]),
		URL: url,
	}, true
}

// isTableCandidate reports whether lines[idx] starts a pipe table:
// the line contains a pipe and the next line is a separator row.
func isTableCandidate(lines []string, idx int) bool {
	if idx+1 >= len(lines) {
		return false
	}
	header := strings.TrimSpace(lines[idx])
	if !strings.Contains(header, "|") {
		return false
	}
	return tableSeparator.MatchString(strings.TrimSpace(lines[idx+1]))
}

// splitTableRow splits a table line on pipes, dropping one optional
// enclosing pipe on each side and trimming every cell.
func splitTableRow(line string) []string {
	row := strings.TrimSpace(line)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	cells := strings.Split(row, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// parseTable consumes the header row, the separator, and every
// following non-blank line that still contains a pipe.
func parseTable(lines []string, i int) (Table, int) {
	headers := splitTableRow(lines[i])
	i += 2 // header + separator

	var rows [][]string
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || !strings.Contains(trimmed, "|") {
			break
		}
		rows = append(rows, splitTableRow(lines[i]))
		i++
	}
	return Table{Headers: headers, Rows: rows}, i
}

// parseList consumes a run of list items. A run of blank lines is
// tolerated when the next non-blank line is itself a matching item;
// otherwise the blank terminates the list without being consumed.
func parseList(lines []string, i int, ordered bool) (List, int) {
	marker := unorderedItem
	if ordered {
		marker = orderedItem
	}

	var items []ListItem
	for i < len(lines) {
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)

		switch {
		case marker.MatchString(trimmed):
			item := ListItem{Text: marker.ReplaceAllString(trimmed, "")}
			if !ordered {
				item.Indent = indentDepth(raw)
			}
			items = append(items, item)
			i++
		case trimmed == "":
			peek := i + 1
			for peek < len(lines) && strings.TrimSpace(lines[peek]) == "" {
				peek++
			}
			if peek < len(lines) && marker.MatchString(strings.TrimSpace(lines[peek])) {
				i = peek
			} else {
				return List{Ordered: ordered, Items: items}, i
			}
		default:
			return List{Ordered: ordered, Items: items}, i
		}
	}
	return List{Ordered: ordered, Items: items}, i
}

// indentDepth derives the nesting depth from the raw line's leading
// whitespace: floor-divided by 2, capped at MaxListIndent.
func indentDepth(raw string) int {
	leading := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
	depth := leading / 2
	if depth > MaxListIndent {
		depth = MaxListIndent
	}
	return depth
}

// parseParagraph collects consecutive non-blank lines until a line
// that another block rule would claim. The first line is always
// consumed: it reached the paragraph path precisely because no other
// rule claimed it. A leading '>' line (blockquote marker, not
// separately modeled) is kept literally as its own paragraph.
func parseParagraph(lines []string, i int) (Paragraph, int) {
	var collected []string
	for i < len(lines) {
		cur := strings.TrimSpace(lines[i])
		if cur == "" {
			break
		}
		if len(collected) == 0 && strings.HasPrefix(cur, ">") {
			collected = append(collected, cur)
			i++
			break
		}
		if len(collected) > 0 && terminatesParagraph(lines, i, cur) {
			break
		}
		collected = append(collected, cur)
		i++
	}
	return Paragraph{Text: strings.Join(collected, " ")}, i
}

// terminatesParagraph reports whether the line at lines[i] would be
// claimed by a specialized block rule.
func terminatesParagraph(lines []string, i int, trimmed string) bool {
	return headingLine.MatchString(trimmed) ||
		strings.HasPrefix(trimmed, "![") ||
		strings.HasPrefix(trimmed, ">") ||
		isTableCandidate(lines, i) ||
		orderedItem.MatchString(trimmed) ||
		unorderedItem.MatchString(trimmed)
}

package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBlocksHeadings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:     "level 1",
			input:    "# Title",
			expected: []Block{Heading{Level: 1, Text: "Title"}},
		},
		{
			name:     "level 6",
			input:    "###### Deep",
			expected: []Block{Heading{Level: 6, Text: "Deep"}},
		},
		{
			name:     "seven hashes is a paragraph",
			input:    "####### Too deep",
			expected: []Block{Paragraph{Text: "####### Too deep"}},
		},
		{
			name:     "hash without space is a paragraph",
			input:    "#NoSpace",
			expected: []Block{Paragraph{Text: "#NoSpace"}},
		},
		{
			name:     "heading text is trimmed",
			input:    "##   Spaced out   ",
			expected: []Block{Heading{Level: 2, Text: "Spaced out"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBlocks(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseBlocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBlocksImages(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:     "basic image",
			input:    "![diagram](https://example.com/d.png)",
			expected: []Block{Image{Alt: "diagram", URL: "https://example.com/d.png"}},
		},
		{
			name:     "data URL image",
			input:    "![chart](data:image/png;base64,iVBORw0KGgo=)",
			expected: []Block{Image{Alt: "chart", URL: "data:image/png;base64,iVBORw0KGgo="}},
		},
		{
			name:     "empty alt is allowed",
			input:    "![](x.png)",
			expected: []Block{Image{Alt: "", URL: "x.png"}},
		},
		{
			name:     "missing closing paren falls back to paragraph",
			input:    "![diagram](not-a-valid-url",
			expected: []Block{Paragraph{Text: "![diagram](not-a-valid-url"}},
		},
		{
			name:     "empty url falls back to paragraph",
			input:    "![diagram]()",
			expected: []Block{Paragraph{Text: "![diagram]()"}},
		},
		{
			name:     "no url part falls back to paragraph",
			input:    "![just alt text",
			expected: []Block{Paragraph{Text: "![just alt text"}},
		},
		{
			name:  "failed image line joins following text",
			input: "![broken](x\nmore words",
			expected: []Block{
				Paragraph{Text: "![broken](x more words"},
			},
		},
		{
			name:  "second failed image line starts a new paragraph",
			input: "![a](x\n![b](y",
			expected: []Block{
				Paragraph{Text: "![a](x"},
				Paragraph{Text: "![b](y"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBlocks(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseBlocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBlocksTables(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:  "basic table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			expected: []Block{Table{
				Headers: []string{"A", "B"},
				Rows:    [][]string{{"1", "2"}},
			}},
		},
		{
			name:  "extra row cells are kept, not truncated",
			input: "| A | B |\n|---|---|\n| 1 | 2 | 3 |",
			expected: []Block{Table{
				Headers: []string{"A", "B"},
				Rows:    [][]string{{"1", "2", "3"}},
			}},
		},
		{
			name:  "alignment colons in separator",
			input: "| L | C | R |\n|:---|:---:|---:|\n| a | b | c |",
			expected: []Block{Table{
				Headers: []string{"L", "C", "R"},
				Rows:    [][]string{{"a", "b", "c"}},
			}},
		},
		{
			name:  "no enclosing pipes",
			input: "A | B\n--- | ---\n1 | 2",
			expected: []Block{Table{
				Headers: []string{"A", "B"},
				Rows:    [][]string{{"1", "2"}},
			}},
		},
		{
			name:  "table ends at blank line",
			input: "| A | B |\n|---|---|\n| 1 | 2 |\n\n| not | a row |",
			expected: []Block{
				Table{Headers: []string{"A", "B"}, Rows: [][]string{{"1", "2"}}},
				Paragraph{Text: "| not | a row |"},
			},
		},
		{
			name:  "table ends at non-pipe line",
			input: "| A | B |\n|---|---|\n| 1 | 2 |\nplain text",
			expected: []Block{
				Table{Headers: []string{"A", "B"}, Rows: [][]string{{"1", "2"}}},
				Paragraph{Text: "plain text"},
			},
		},
		{
			name:  "single-column table is not a table",
			input: "| A |\n|---|\n| 1 |",
			expected: []Block{
				Paragraph{Text: "| A | |---| | 1 |"},
			},
		},
		{
			name:  "header without separator is a paragraph",
			input: "| A | B |\njust text",
			expected: []Block{
				Paragraph{Text: "| A | B | just text"},
			},
		},
		{
			name:  "table wins over list on the same line",
			input: "- x | y\n|---|---|\n| 1 | 2 |",
			expected: []Block{Table{
				Headers: []string{"- x", "y"},
				Rows:    [][]string{{"1", "2"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBlocks(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseBlocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBlocksOrderedLists(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:  "basic ordered list",
			input: "1. first\n2. second\n3. third",
			expected: []Block{List{Ordered: true, Items: []ListItem{
				{Text: "first"}, {Text: "second"}, {Text: "third"},
			}}},
		},
		{
			name:  "numbering is not validated",
			input: "7. seven\n3. three",
			expected: []Block{List{Ordered: true, Items: []ListItem{
				{Text: "seven"}, {Text: "three"},
			}}},
		},
		{
			name:  "single blank line inside list",
			input: "1. a\n\n2. b",
			expected: []Block{List{Ordered: true, Items: []ListItem{
				{Text: "a"}, {Text: "b"},
			}}},
		},
		{
			name:  "multiple blank lines inside list",
			input: "1. a\n\n\n\n2. b",
			expected: []Block{List{Ordered: true, Items: []ListItem{
				{Text: "a"}, {Text: "b"},
			}}},
		},
		{
			name:  "blank line before foreign content ends list",
			input: "1. a\n\nSome text",
			expected: []Block{
				List{Ordered: true, Items: []ListItem{{Text: "a"}}},
				Paragraph{Text: "Some text"},
			},
		},
		{
			name:  "foreign line ends list without being consumed",
			input: "1. a\n# Next",
			expected: []Block{
				List{Ordered: true, Items: []ListItem{{Text: "a"}}},
				Heading{Level: 1, Text: "Next"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBlocks(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseBlocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBlocksUnorderedLists(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:  "dash and star markers",
			input: "- a\n* b",
			expected: []Block{List{Ordered: false, Items: []ListItem{
				{Text: "a", Indent: 0}, {Text: "b", Indent: 0},
			}}},
		},
		{
			name:  "indent depth from leading spaces",
			input: "- top\n  - sub\n    - subsub",
			expected: []Block{List{Ordered: false, Items: []ListItem{
				{Text: "top", Indent: 0},
				{Text: "sub", Indent: 1},
				{Text: "subsub", Indent: 2},
			}}},
		},
		{
			name:  "deep indentation clamps at two",
			input: "- a\n          - deep",
			expected: []Block{List{Ordered: false, Items: []ListItem{
				{Text: "a", Indent: 0},
				{Text: "deep", Indent: 2},
			}}},
		},
		{
			name:  "single leading space stays at depth zero",
			input: " - a\n   - b",
			expected: []Block{List{Ordered: false, Items: []ListItem{
				{Text: "a", Indent: 0},
				{Text: "b", Indent: 1},
			}}},
		},
		{
			name:  "continuation across one blank line",
			input: "- a\n\n- b",
			expected: []Block{List{Ordered: false, Items: []ListItem{
				{Text: "a", Indent: 0}, {Text: "b", Indent: 0},
			}}},
		},
		{
			name:  "blank then paragraph ends list",
			input: "- a\n\nSome text",
			expected: []Block{
				List{Ordered: false, Items: []ListItem{{Text: "a", Indent: 0}}},
				Paragraph{Text: "Some text"},
			},
		},
		{
			name:  "ordered item ends unordered list",
			input: "- a\n1. b",
			expected: []Block{
				List{Ordered: false, Items: []ListItem{{Text: "a", Indent: 0}}},
				List{Ordered: true, Items: []ListItem{{Text: "b"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBlocks(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseBlocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBlocksParagraphs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:     "lines join with single space",
			input:    "first line\nsecond line",
			expected: []Block{Paragraph{Text: "first line second line"}},
		},
		{
			name:  "blank line splits paragraphs",
			input: "one\n\ntwo",
			expected: []Block{
				Paragraph{Text: "one"},
				Paragraph{Text: "two"},
			},
		},
		{
			name:  "heading interrupts paragraph",
			input: "text\n## Heading",
			expected: []Block{
				Paragraph{Text: "text"},
				Heading{Level: 2, Text: "Heading"},
			},
		},
		{
			name:  "list interrupts paragraph",
			input: "intro\n- item",
			expected: []Block{
				Paragraph{Text: "intro"},
				List{Ordered: false, Items: []ListItem{{Text: "item", Indent: 0}}},
			},
		},
		{
			name:  "blockquote line becomes its own paragraph",
			input: "before\n> quoted\nafter",
			expected: []Block{
				Paragraph{Text: "before"},
				Paragraph{Text: "> quoted"},
				Paragraph{Text: "after"},
			},
		},
		{
			name:     "lone blockquote line keeps its marker",
			input:    "> just a quote",
			expected: []Block{Paragraph{Text: "> just a quote"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBlocks(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseBlocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBlocksOrdering(t *testing.T) {
	input := "# Top\n\nA paragraph.\n\n- one\n- two"
	got := ParseBlocks(input)

	expected := []Block{
		Heading{Level: 1, Text: "Top"},
		Paragraph{Text: "A paragraph."},
		List{Ordered: false, Items: []ListItem{
			{Text: "one", Indent: 0},
			{Text: "two", Indent: 0},
		}},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ParseBlocks() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlocksEmptyInput(t *testing.T) {
	if got := ParseBlocks(""); len(got) != 0 {
		t.Errorf("ParseBlocks(%q) = %v, want empty", "", got)
	}
	if got := ParseBlocks("\n\n\n"); len(got) != 0 {
		t.Errorf("ParseBlocks(blank lines) = %v, want empty", got)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single fence removed",
			input:    "before\n```\ncode\n```\nafter",
			expected: "before\n\nafter",
		},
		{
			name:     "multiple fences removed",
			input:    "```\na\n```\nmid\n```\nb\n```",
			expected: "mid",
		},
		{
			name:     "unclosed fence is kept",
			input:    "text\n```\ndangling",
			expected: "text\n```\ndangling",
		},
		{
			name:     "no fences",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "fence inside list item is deleted",
			input:    "- item\n```\ncode\n```\n- next",
			expected: "- item\n\n- next",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripCodeFences(tt.input)
			if got != tt.expected {
				t.Errorf("StripCodeFences() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseBlocksSkipsFencedCode(t *testing.T) {
	input := "intro\n```go\nfunc main() {}\n```\noutro"
	got := ParseBlocks(input)

	expected := []Block{
		Paragraph{Text: "intro"},
		Paragraph{Text: "outro"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ParseBlocks() mismatch (-want +got):\n%s", diff)
	}
}

func TestStripRedundantHeading(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		content  string
		expected string
	}{
		{
			name:     "duplicate heading removed",
			title:    "Background",
			content:  "## Background\n\nThe story so far.",
			expected: "The story so far.",
		},
		{
			name:     "case-insensitive match",
			title:    "background",
			content:  "## BACKGROUND\nText.",
			expected: "Text.",
		},
		{
			name:     "leading blank lines are skipped",
			title:    "Goal",
			content:  "\n\n## Goal\n\n\nReach the summit.",
			expected: "Reach the summit.",
		},
		{
			name:     "different title is kept",
			title:    "Goal",
			content:  "## Approach\nText.",
			expected: "## Approach\nText.",
		},
		{
			name:     "level 1 heading is kept",
			title:    "Goal",
			content:  "# Goal\nText.",
			expected: "# Goal\nText.",
		},
		{
			name:     "heading later in content is kept",
			title:    "Goal",
			content:  "Intro.\n## Goal\nText.",
			expected: "Intro.\n## Goal\nText.",
		},
		{
			name:     "empty content",
			title:    "Goal",
			content:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripRedundantHeading(tt.title, tt.content)
			if got != tt.expected {
				t.Errorf("StripRedundantHeading() = %q, want %q", got, tt.expected)
			}
		})
	}
}

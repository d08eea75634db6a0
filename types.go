package docgen

import (
	"fmt"
	"strings"
)

// Kind selects the artifact to generate.
type Kind string

// Supported artifact kinds.
const (
	KindDebrief      Kind = "debrief"
	KindPresentation Kind = "presentation"
)

// Valid reports whether k names a supported artifact.
func (k Kind) Valid() bool {
	return k == KindDebrief || k == KindPresentation
}

// Ext returns the output file extension for the kind.
func (k Kind) Ext() string {
	if k == KindPresentation {
		return ".pptx"
	}
	return ".docx"
}

// Input describes one generation request.
type Input struct {
	ContentPath string // JSON content file
	OutputPath  string // destination document
	LogoDir     string // optional directory holding the brand icon
	Kind        Kind
	Language    string // optional override: "en" or "de"
}

// Validate checks that required fields are present and valid.
func (in Input) Validate() error {
	if in.ContentPath == "" {
		return ErrEmptyContentPath
	}
	if in.OutputPath == "" {
		return ErrEmptyOutputPath
	}
	if !in.Kind.Valid() {
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidKind, in.Kind, KindDebrief, KindPresentation)
	}
	switch strings.ToLower(in.Language) {
	case "", "en", "de":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be en or de)", ErrInvalidLanguage, in.Language)
	}
}

// Branding overrides the built-in palette and fonts for both
// renderers. Zero values keep the defaults.
type Branding struct {
	PrimaryColor   string // hex RGB without '#'
	HighlightColor string // slide highlight color
	HeadingFont    string
	BodyFont       string
}

// Option configures a Service.
type Option func(*Service)

// WithBranding overrides the built-in brand palette and fonts.
func WithBranding(b Branding) Option {
	return func(s *Service) {
		s.branding = b
	}
}

// WithLanguage sets the language used when the input does not carry
// its own override.
func WithLanguage(lang string) Option {
	return func(s *Service) {
		s.language = lang
	}
}

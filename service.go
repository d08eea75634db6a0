package docgen

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/onethousand/go-docgen/internal/content"
	"github.com/onethousand/go-docgen/internal/docx"
	"github.com/onethousand/go-docgen/internal/fileutil"
	"github.com/onethousand/go-docgen/internal/pptx"
)

// renderer turns a normalized content document into serialized
// artifact bytes.
type renderer interface {
	Render(ctx context.Context, d *content.Document) ([]byte, error)
}

// loaderFunc loads and validates a content file.
type loaderFunc func(path string) (*content.Document, error)

// Service orchestrates the content-to-document pipeline.
type Service struct {
	branding Branding
	language string
	loader   loaderFunc

	// Injectable for tests; built from branding when nil.
	debrief func(logoDir string) renderer
	deck    func() renderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithBranding).
func New(opts ...Option) *Service {
	s := &Service{
		loader: content.Load,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.debrief == nil {
		s.debrief = func(logoDir string) renderer {
			return docx.New(docx.Options{
				LogoDir:      logoDir,
				PrimaryColor: s.branding.PrimaryColor,
				HeadingFont:  s.branding.HeadingFont,
				BodyFont:     s.branding.BodyFont,
			})
		}
	}
	if s.deck == nil {
		s.deck = func() renderer {
			return pptx.New(pptx.Options{
				PrimaryColor:   s.branding.PrimaryColor,
				HighlightColor: s.branding.HighlightColor,
				HeadingFont:    s.branding.HeadingFont,
				BodyFont:       s.branding.BodyFont,
			})
		}
	}

	return s
}

// Generate runs the full pipeline: load and validate the content,
// render the requested artifact, and write it to the output path.
// The context is used for cancellation.
func (s *Service) Generate(ctx context.Context, input Input) error {
	if err := input.Validate(); err != nil {
		return err
	}

	doc, err := s.loader(input.ContentPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadContent, err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	// Localized titles are keyed by lowercase code.
	switch {
	case input.Language != "":
		doc.Language = strings.ToLower(input.Language)
	case s.language != "":
		doc.Language = strings.ToLower(s.language)
	}

	var r renderer
	switch input.Kind {
	case KindPresentation:
		r = s.deck()
	default:
		r = s.debrief(input.LogoDir)
	}

	out, err := r.Render(ctx, doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := fileutil.EnsureParentDir(input.OutputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.WriteFile(input.OutputPath, out, 0o644); err != nil { // #nosec G306 -- generated documents are not secrets
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return nil
}

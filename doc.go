// Package docgen generates branded hackathon documents from JSON
// content files: debrief documents (DOCX) and presentation decks
// (PPTX).
//
// # Quick Start
//
// Create a service and generate an artifact:
//
//	svc := docgen.New()
//	err := svc.Generate(ctx, docgen.Input{
//	    ContentPath: "content.json",
//	    OutputPath:  "debrief.docx",
//	    Kind:        docgen.KindDebrief,
//	})
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Content loading: JSON decode, schema validation, structuredData
//     unwrapping, language defaulting
//  2. Markdown parsing: section content is parsed into a small block
//     model (headings, paragraphs, lists, images, tables) with inline
//     bold and italic runs
//  3. Rendering: the block model is laid out with the brand palette,
//     fonts, and the adaptive cover profile
//  4. Output: the serialized document is written to the output path
//
// The markdown dialect is deliberately constrained and parsing never
// fails; malformed input degrades to plain paragraph text.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := docgen.New(docgen.WithBranding(docgen.Branding{
//	    PrimaryColor: "19A960",
//	}))
package docgen

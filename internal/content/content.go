// Package content loads and validates the JSON content files that
// drive document generation. Files come in two accepted shapes: the
// document fields at the top level, or nested under "structuredData".
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Sentinel errors for content operations.
var (
	ErrContentRead    = errors.New("failed to read content file")
	ErrContentParse   = errors.New("failed to parse content JSON")
	ErrContentInvalid = errors.New("content failed schema validation")
)

// DefaultLanguage is assumed when the content does not declare one.
const DefaultLanguage = "en"

// Document is the normalized content model.
type Document struct {
	Language     string       `json:"language"`
	Metadata     Metadata     `json:"metadata"`
	Company      Company      `json:"company"`
	Participants Participants `json:"participants"`
	Sections     []Section    `json:"sections"`
	UseCases     []UseCase    `json:"useCases"`
}

// Metadata carries document-level titles, dates and location.
type Metadata struct {
	Title    string     `json:"title"`
	Date     string     `json:"date"`
	Location string     `json:"location"`
	Dates    *DateRange `json:"dates"`
}

// DateRange is an ISO start/end date pair.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Company identifies the customer.
type Company struct {
	Name string `json:"name"`
}

// Participants lists the customer and One Thousand rosters.
type Participants struct {
	Customer    []Participant `json:"customer"`
	OneThousand []Participant `json:"oneThousand"`
}

// Participant is one roster entry.
type Participant struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Total returns the combined roster size.
func (p Participants) Total() int {
	return len(p.Customer) + len(p.OneThousand)
}

// Display renders a participant as "Name (Role)" or just the name.
func (p Participant) Display() string {
	if p.Role == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Role)
}

// Section is one content section; Content is markdown text.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UseCase names one hackathon use case.
type UseCase struct {
	Title string `json:"title"`
}

// envelope is the raw file shape before normalization.
type envelope struct {
	Language       string    `json:"language"`
	StructuredData *Document `json:"structuredData"`
}

// Load reads, validates, and normalizes a content file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator's own CLI flags
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentRead, err)
	}
	return Parse(data)
}

// Parse validates raw JSON against the content schema and decodes it
// into a normalized Document.
func Parse(data []byte) (*Document, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentParse, err)
	}

	doc := env.StructuredData
	if doc == nil {
		doc = &Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentParse, err)
		}
	}

	if doc.Language == "" {
		doc.Language = env.Language
	}
	if doc.Language == "" {
		doc.Language = DefaultLanguage
	}
	return doc, nil
}

// DisplayTitle resolves a section's display title, preferring the
// section's own title over the localized fallback.
func (s Section) DisplayTitle(fallback string) string {
	if t := strings.TrimSpace(s.Title); t != "" {
		return t
	}
	return fallback
}

// SectionByID returns the section with the given ID, if present.
func (d *Document) SectionByID(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// compiledSchema is built once from the embedded schema document.
var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("content.schema.json", strings.NewReader(contentSchema)); err != nil {
		panic(fmt.Sprintf("content: adding schema resource: %v", err))
	}
	schema, err := c.Compile("content.schema.json")
	if err != nil {
		panic(fmt.Sprintf("content: compiling schema: %v", err))
	}
	return schema
}

// validate checks raw JSON against the content schema.
func validate(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrContentParse, err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrContentInvalid, err)
	}
	return nil
}

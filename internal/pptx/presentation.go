package pptx

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/presentation"
	"baliance.com/gooxml/schema/soo/dml"

	"github.com/onethousand/go-docgen/internal/brand"
	"github.com/onethousand/go-docgen/internal/content"
	"github.com/onethousand/go-docgen/internal/dateutil"
	"github.com/onethousand/go-docgen/internal/markdown"
)

// Slide geometry in inches.
const (
	titleLeft   = 0.5
	titleTop    = 0.4
	titleWidth  = 9.0
	titleHeight = 1.0
	bodyLeft    = 0.5
	bodyTop     = 1.6
	bodyWidth   = 9.0
	bodyHeight  = 5.0
)

// Options customizes rendering. Zero values use the built-in branding.
type Options struct {
	PrimaryColor   string // hex RGB without '#'
	HighlightColor string // <<green>> segment color
	HeadingFont    string
	BodyFont       string
}

// Renderer builds presentation decks.
type Renderer struct {
	opts Options
}

// New returns a Renderer with defaults filled in.
func New(opts Options) *Renderer {
	if opts.PrimaryColor == "" {
		opts.PrimaryColor = brand.SharpGreen
	}
	if opts.HighlightColor == "" {
		opts.HighlightColor = brand.GreenHighlight
	}
	if opts.HeadingFont == "" {
		opts.HeadingFont = brand.FontHeading
	}
	if opts.BodyFont == "" {
		opts.BodyFont = brand.FontBody
	}
	return &Renderer{opts: opts}
}

// Render builds the deck for doc and returns the serialized PPTX
// bytes. The context is checked between slides.
func (r *Renderer) Render(ctx context.Context, d *content.Document) ([]byte, error) {
	p := presentation.New()

	r.coverSlide(p, d)
	r.agendaSlide(p, d)

	for _, id := range brand.SectionOrder {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, ok := d.SectionByID(id)
		if !ok {
			continue
		}
		r.sectionSlide(p, d, s, id)
	}

	var buf bytes.Buffer
	if err := p.Save(&buf); err != nil {
		return nil, fmt.Errorf("serializing presentation: %w", err)
	}
	return buf.Bytes(), nil
}

// coverSlide carries the use case title, the company pairing line,
// and the date and location.
func (r *Renderer) coverSlide(p *presentation.Presentation, d *content.Document) {
	slide := p.AddSlide()

	title := coverTitle(d)
	box := r.textBox(slide, titleLeft, 2.0, titleWidth, 1.4)
	para := box.AddParagraph()
	run := para.AddRun()
	run.SetText(strings.ToUpper(title))
	run.Properties().SetSize(40 * measurement.Point)
	run.Properties().SetBold(true)
	run.Properties().SetFont(r.opts.HeadingFont)
	run.Properties().SetSolidFill(rgb(r.opts.PrimaryColor))

	box = r.textBox(slide, titleLeft, 3.6, titleWidth, 0.6)
	para = box.AddParagraph()
	run = para.AddRun()
	run.SetText(d.Company.Name + " x One Thousand")
	run.Properties().SetSize(20 * measurement.Point)
	run.Properties().SetFont(r.opts.BodyFont)

	if line := coverDateLine(d); line != "" {
		box = r.textBox(slide, titleLeft, 4.3, titleWidth, 0.5)
		para = box.AddParagraph()
		run = para.AddRun()
		run.SetText(line)
		run.Properties().SetSize(14 * measurement.Point)
		run.Properties().SetFont(r.opts.BodyFont)
	}
}

// agendaSlide lists the numbered section titles in canonical order.
func (r *Renderer) agendaSlide(p *presentation.Presentation, d *content.Document) {
	slide := p.AddSlide()
	r.slideTitle(slide, "Agenda")

	entries := brand.BuildTOCEntries(tocSections(d), d.Language)
	box := r.textBox(slide, bodyLeft, bodyTop, bodyWidth, bodyHeight)
	for _, entry := range entries {
		para := box.AddParagraph()
		run := para.AddRun()
		run.SetText(entry.NumberLabel + ". " + entry.Title)
		run.Properties().SetSize(18 * measurement.Point)
		run.Properties().SetFont(r.opts.BodyFont)
	}
}

// sectionSlide renders one content section: heading plus the markdown
// blocks flattened into rich text lines.
func (r *Renderer) sectionSlide(p *presentation.Presentation, d *content.Document, s content.Section, id string) {
	slide := p.AddSlide()
	title := s.DisplayTitle(brand.SectionTitle(id, d.Language))
	r.slideTitle(slide, title)

	cleaned := markdown.StripCodeFences(markdown.StripRedundantHeading(title, s.Content))
	lines := blockLines(markdown.ParseBlocks(cleaned))

	box := r.textBox(slide, bodyLeft, bodyTop, bodyWidth, bodyHeight)
	for _, line := range lines {
		r.richParagraph(box, line)
	}
}

// slideTitle places the standard heading box.
func (r *Renderer) slideTitle(slide presentation.Slide, text string) {
	box := r.textBox(slide, titleLeft, titleTop, titleWidth, titleHeight)
	para := box.AddParagraph()
	run := para.AddRun()
	run.SetText(text)
	run.Properties().SetSize(28 * measurement.Point)
	run.Properties().SetBold(true)
	run.Properties().SetFont(r.opts.HeadingFont)
	run.Properties().SetSolidFill(rgb(r.opts.PrimaryColor))
}

// richParagraph adds one paragraph of **bold** / <<green>> markup.
func (r *Renderer) richParagraph(box presentation.TextBox, text string) {
	para := box.AddParagraph()
	for _, seg := range ParseRichSegments(text) {
		run := para.AddRun()
		run.SetText(seg.Text)
		run.Properties().SetSize(13 * measurement.Point)
		run.Properties().SetFont(r.opts.BodyFont)
		switch seg.Style {
		case StyleBold:
			run.Properties().SetBold(true)
		case StyleGreen:
			run.Properties().SetSolidFill(rgb(r.opts.HighlightColor))
		}
	}
}

// textBox adds a positioned rectangle text box, geometry in inches.
func (r *Renderer) textBox(slide presentation.Slide, left, top, width, height float64) presentation.TextBox {
	box := slide.AddTextBox()
	props := box.Properties()
	props.SetGeometry(dml.ST_ShapeTypeRect)
	props.SetPosition(
		measurement.Distance(left*float64(measurement.Inch)),
		measurement.Distance(top*float64(measurement.Inch)))
	props.SetSize(
		measurement.Distance(width*float64(measurement.Inch)),
		measurement.Distance(height*float64(measurement.Inch)))
	return box
}

// blockLines flattens parsed markdown blocks into slide text lines.
// Images collapse to placeholders, tables to pipe-joined rows.
func blockLines(blocks []markdown.Block) []string {
	var lines []string
	for _, b := range blocks {
		switch blk := b.(type) {
		case markdown.Heading:
			lines = append(lines, "**"+markdown.StripInline(blk.Text)+"**")
		case markdown.Paragraph:
			if strings.TrimSpace(blk.Text) != "" {
				lines = append(lines, blk.Text)
			}
		case markdown.List:
			for idx, item := range blk.Items {
				prefix := "• "
				if blk.Ordered {
					prefix = strconv.Itoa(idx+1) + ". "
				}
				lines = append(lines, strings.Repeat("  ", item.Indent)+prefix+item.Text)
			}
		case markdown.Image:
			if blk.Alt != "" {
				lines = append(lines, "[Image: "+blk.Alt+"]")
			} else {
				lines = append(lines, "[Image]")
			}
		case markdown.Table:
			lines = append(lines, strings.Join(blk.Headers, " | "))
			for _, row := range blk.Rows {
				lines = append(lines, strings.Join(row, " | "))
			}
		}
	}
	return lines
}

func tocSections(d *content.Document) []brand.TOCSection {
	sections := make([]brand.TOCSection, 0, len(d.Sections))
	for _, s := range d.Sections {
		sections = append(sections, brand.TOCSection{ID: s.ID, Title: s.Title})
	}
	return sections
}

// coverTitle picks the deck title: first use case, then the metadata
// title, then a generic fallback.
func coverTitle(d *content.Document) string {
	if len(d.UseCases) > 0 && d.UseCases[0].Title != "" {
		return d.UseCases[0].Title
	}
	if d.Metadata.Title != "" {
		return d.Metadata.Title
	}
	return "Hackathon"
}

// coverDateLine renders "location, date" using the date range when
// the content carries one. Single dates get the DD.MM.YYYY display form.
func coverDateLine(d *content.Document) string {
	date := dateutil.FormatDisplay(d.Metadata.Date)
	if d.Metadata.Dates != nil {
		date = dateutil.FormatRange(d.Metadata.Dates.Start, d.Metadata.Dates.End)
	}
	return dateutil.LocationDate(d.Metadata.Location, date)
}

// rgb converts a hex RRGGBB string to a drawing color, black on
// invalid input.
func rgb(hex string) color.Color {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.Black
	}
	return color.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

package docx

import (
	"strconv"
	"strings"

	"baliance.com/gooxml/common"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/onethousand/go-docgen/internal/brand"
	"github.com/onethousand/go-docgen/internal/fileutil"
	"github.com/onethousand/go-docgen/internal/imageutil"
	"github.com/onethousand/go-docgen/internal/markdown"
)

// renderBlocks converts markdown text into document paragraphs and
// tables. Rendering never fails: malformed pieces degrade to plain
// paragraphs or placeholders.
func (j *job) renderBlocks(text string) {
	for _, b := range markdown.ParseBlocks(text) {
		switch blk := b.(type) {
		case markdown.Heading:
			j.renderHeading(blk)
		case markdown.List:
			j.renderList(blk)
		case markdown.Image:
			j.renderImage(blk)
		case markdown.Table:
			j.renderTable(blk)
		case markdown.Paragraph:
			if strings.TrimSpace(blk.Text) == "" {
				continue
			}
			para := j.doc.AddParagraph()
			j.addInlineRuns(para, blk.Text)
		}
	}
}

// renderHeading maps H1/H2 to the Heading2 style and deeper levels to
// Heading3, with explicit brand formatting on the run.
func (j *job) renderHeading(h markdown.Heading) {
	style := "Heading2"
	size := heading2Size
	before, after := 300, 150
	if h.Level > 2 {
		style = "Heading3"
		size = heading3Size
		before, after = 200, 100
	}

	para := j.doc.AddParagraph()
	para.SetStyle(style)
	spacing := para.Properties().Spacing()
	spacing.SetBefore(measurement.Distance(before) * measurement.Twips)
	spacing.SetAfter(measurement.Distance(after) * measurement.Twips)
	j.styledRun(para, markdown.StripInline(h.Text), j.opts.HeadingFont, size,
		rgb(j.opts.PrimaryColor), runBold)
}

// renderList emits bullet paragraphs bound to the shared numbering
// definition, or "N. " prefixed plain paragraphs for ordered lists.
func (j *job) renderList(l markdown.List) {
	for idx, item := range l.Items {
		if l.Ordered {
			para := j.doc.AddParagraph()
			j.addInlineRuns(para, strconv.Itoa(idx+1)+". "+item.Text)
			continue
		}

		para := j.doc.AddParagraph()
		para.SetStyle("ListParagraph")
		para.Properties().Spacing().SetAfter(120 * measurement.Twips)
		para.SetNumberingDefinition(j.bullets)
		para.SetNumberingLevel(item.Indent)
		j.addInlineRuns(para, item.Text)
	}
}

// renderImage embeds a decoded data-URL picture scaled into the
// layout box, or a bracketed placeholder when decoding fails.
func (j *job) renderImage(img markdown.Image) {
	mime, data, err := imageutil.DecodeDataURL(img.URL)
	if err != nil {
		j.renderImagePlaceholder(img.Alt)
		return
	}

	path, cleanup, err := fileutil.WriteTempFile(data, extensionFor(mime))
	if err != nil {
		j.renderImagePlaceholder(img.Alt)
		return
	}
	// The engine re-reads the file at save time, so removal waits
	// until after serialization.
	j.cleanups = append(j.cleanups, cleanup)

	image, err := common.ImageFromFile(path)
	if err != nil {
		j.renderImagePlaceholder(img.Alt)
		return
	}
	ref, err := j.doc.AddImage(image)
	if err != nil {
		j.renderImagePlaceholder(img.Alt)
		return
	}

	width, height := imageutil.Dimensions(data, mime)
	width, height = imageutil.Fit(width, height)

	para := j.doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcCenter)
	spacing := para.Properties().Spacing()
	spacing.SetBefore(200 * measurement.Twips)
	spacing.SetAfter(80 * measurement.Twips)

	inline, err := para.AddRun().AddDrawingInline(ref)
	if err != nil {
		j.renderImagePlaceholder(img.Alt)
		return
	}
	inline.SetSize(
		measurement.Distance(width)*measurement.Point,
		measurement.Distance(height)*measurement.Point)

	if caption := strings.TrimSpace(img.Alt); caption != "" {
		capPara := j.doc.AddParagraph()
		capPara.Properties().SetAlignment(wml.ST_JcCenter)
		capPara.Properties().Spacing().SetAfter(220 * measurement.Twips)
		j.styledRun(capPara, caption, j.opts.BodyFont, 18, rgb(brand.CeruleanBlue), runItalic)
	}
}

func (j *job) renderImagePlaceholder(alt string) {
	para := j.doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcCenter)
	para.Properties().Spacing().SetAfter(220 * measurement.Twips)
	j.styledRun(para, imagePlaceholder(alt), j.opts.BodyFont, 22, rgb(brand.CeruleanBlue), runItalic)
}

// extensionFor maps a data-URL mime type to a temp-file extension.
func extensionFor(mime string) string {
	ext := strings.TrimPrefix(mime, "image/")
	if ext == "jpeg" {
		return "jpg"
	}
	return ext
}

// imagePlaceholder is the visible stand-in for an image that could
// not be embedded.
func imagePlaceholder(alt string) string {
	if alt == "" {
		return "[Image]"
	}
	return "[Image: " + alt + "]"
}

// renderTable draws a full-width grid with a shaded header row and
// thin borders. Rows are normalized to the header width.
func (j *job) renderTable(t markdown.Table) {
	// Spacer before.
	j.doc.AddParagraph().Properties().Spacing().SetBefore(200 * measurement.Twips)

	columns := len(t.Headers)
	if columns == 0 {
		columns = 1
	}

	tbl := j.doc.AddTable()
	tbl.Properties().SetWidthPercent(100)
	tbl.Properties().Borders().SetAll(wml.ST_BorderSingle, rgb(brand.TableBorder), measurement.Point/2)

	header := tbl.AddRow()
	for _, text := range normalizeRow(t.Headers, columns) {
		cell := header.AddCell()
		cell.Properties().SetShading(wml.ST_ShdSolid, rgb(brand.DeepBlack), rgb(brand.TableHeaderBG))
		cell.Properties().SetVerticalAlignment(wml.ST_VerticalJcTop)
		para := cell.AddParagraph()
		para.Properties().Spacing().SetAfter(0)
		j.addInlineRuns(para, text)
	}

	for _, row := range t.Rows {
		tr := tbl.AddRow()
		for _, text := range normalizeRow(row, columns) {
			cell := tr.AddCell()
			cell.Properties().SetVerticalAlignment(wml.ST_VerticalJcTop)
			para := cell.AddParagraph()
			para.Properties().Spacing().SetAfter(0)
			j.addInlineRuns(para, text)
		}
	}

	// Spacer after.
	j.doc.AddParagraph().Properties().Spacing().SetAfter(200 * measurement.Twips)
}

// normalizeRow pads short rows with empty cells and truncates long
// ones so every row matches the header width.
func normalizeRow(row []string, columns int) []string {
	if len(row) == columns {
		return row
	}
	normalized := make([]string, columns)
	copy(normalized, row)
	return normalized
}

// addInlineRuns parses inline formatting and appends one run per
// segment. Runs inherit font and size from the surrounding style;
// only bold and italic are set explicitly.
func (j *job) addInlineRuns(para document.Paragraph, text string) {
	for _, r := range markdown.ParseInline(text) {
		run := para.AddRun()
		if r.Bold {
			run.Properties().SetBold(true)
		}
		if r.Italic {
			run.Properties().SetItalic(true)
		}
		run.AddText(r.Text)
	}
}

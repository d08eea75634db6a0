// Package docx renders a hackathon debrief document: full-bleed cover
// card, static table of contents, and the content sections converted
// from constrained markdown.
package docx

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	// Image decoders for the pictures embedded from data URLs.
	_ "image/jpeg"
	_ "image/png"

	"baliance.com/gooxml"
	"baliance.com/gooxml/color"
	"baliance.com/gooxml/common"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/ofc/sharedTypes"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/onethousand/go-docgen/internal/brand"
	"github.com/onethousand/go-docgen/internal/content"
	"github.com/onethousand/go-docgen/internal/dateutil"
	"github.com/onethousand/go-docgen/internal/fileutil"
	"github.com/onethousand/go-docgen/internal/markdown"
)

// logoFileName is the rounded lime-on-black icon shipped with the
// brand assets.
const logoFileName = "onethousand-icon-limeonblack-rounded.png"

// Heading sizes in half-points, matching the reference template.
const (
	heading1Size = 32
	heading2Size = 28
	heading3Size = 24
	tocTitleSize = 56
)

// Options customizes rendering. Zero values use the built-in branding.
type Options struct {
	LogoDir      string
	PrimaryColor string // hex RGB without '#'
	HeadingFont  string
	BodyFont     string
}

// Renderer builds debrief documents. A Renderer is safe to reuse but
// not for concurrent use.
type Renderer struct {
	opts Options
}

// New returns a Renderer with defaults filled in.
func New(opts Options) *Renderer {
	if opts.PrimaryColor == "" {
		opts.PrimaryColor = brand.SharpGreen
	}
	if opts.HeadingFont == "" {
		opts.HeadingFont = brand.FontHeading
	}
	if opts.BodyFont == "" {
		opts.BodyFont = brand.FontBody
	}
	return &Renderer{opts: opts}
}

// job carries the per-render state: the document under construction,
// the shared bullet definition, TOC hyperlinks waiting for their
// bookmarks, and temp-file cleanups to run after serialization.
type job struct {
	opts     Options
	doc      *document.Document
	bullets  document.NumberingDefinition
	tocLinks map[string]document.HyperLink
	cleanups []func()
}

// Render builds the debrief for doc and returns the serialized DOCX
// bytes. The context is checked between rendering stages.
func (r *Renderer) Render(ctx context.Context, d *content.Document) ([]byte, error) {
	j := &job{
		opts:     r.opts,
		doc:      document.New(),
		tocLinks: make(map[string]document.HyperLink),
	}
	defer func() {
		for _, cleanup := range j.cleanups {
			cleanup()
		}
	}()

	j.setupPage()
	j.defineBullets()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	j.buildCover(d)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	j.buildTOC(d)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	j.buildSections(d)
	j.addFooter()

	var buf bytes.Buffer
	if err := j.doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}
	return buf.Bytes(), nil
}

// Page margins in twips.
const (
	marginTwips       = 1440 // one inch
	headerFooterTwips = 720
)

// setupPage configures A4 geometry with one-inch margins. The section
// API exposes no size helpers, so the elements are built directly.
func (j *job) setupPage() {
	sectPr := j.doc.BodySection().X()

	sz := wml.NewCT_PageSz()
	sz.WAttr = &sharedTypes.ST_TwipsMeasure{
		ST_UnsignedDecimalNumber: gooxml.Uint64(brand.PageWidthTwips),
	}
	sz.HAttr = &sharedTypes.ST_TwipsMeasure{
		ST_UnsignedDecimalNumber: gooxml.Uint64(brand.PageHeightTwips),
	}
	sz.OrientAttr = wml.ST_PageOrientationPortrait
	sectPr.PgSz = sz

	mar := wml.NewCT_PageMar()
	mar.TopAttr = wml.ST_SignedTwipsMeasure{Int64: gooxml.Int64(marginTwips)}
	mar.BottomAttr = wml.ST_SignedTwipsMeasure{Int64: gooxml.Int64(marginTwips)}
	mar.LeftAttr = sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(marginTwips)}
	mar.RightAttr = sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(marginTwips)}
	mar.HeaderAttr = sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(headerFooterTwips)}
	mar.FooterAttr = sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(headerFooterTwips)}
	mar.GutterAttr = sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(0)}
	sectPr.PgMar = mar
}

// defineBullets registers the bullet numbering used by unordered
// lists, one level per supported indent depth.
func (j *job) defineBullets() {
	nd := j.doc.Numbering.AddDefinition()
	for i := 0; i <= markdown.MaxListIndent; i++ {
		lvl := nd.AddLevel()
		lvl.SetFormat(wml.ST_NumberFormatBullet)
		lvl.SetAlignment(wml.ST_JcLeft)
		lvl.SetText("•")
		lvl.Properties().SetLeftIndent(measurement.Distance(720+i*360) * measurement.Twips)
	}
	j.bullets = nd
}

// addFooter puts a right-aligned current-page field on every page.
func (j *job) addFooter() {
	ftr := j.doc.AddFooter()
	para := ftr.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcRight)
	run := para.AddRun()
	run.Properties().SetFontFamily(j.opts.BodyFont)
	run.Properties().SetSize(10 * measurement.Point)
	run.Properties().SetColor(rgb(brand.Ash))
	run.AddField(document.FieldCurrentPage)
	j.doc.BodySection().SetFooter(ftr, wml.ST_HdrFtrDefault)
}

// buildCover creates the single-cell shaded table that forms the
// cover page, sized by the adaptive profile.
func (j *job) buildCover(d *content.Document) {
	profile := brand.ProfileFor(d.Participants.Total(), len(d.Company.Name))

	tbl := j.doc.AddTable()
	tbl.Properties().SetWidthPercent(100)
	row := tbl.AddRow()
	row.Properties().SetHeight(brand.CoverRowHeightTwips*measurement.Twips, wml.ST_HeightRuleExact)

	cell := row.AddCell()
	cell.Properties().SetShading(wml.ST_ShdSolid, color.Auto, rgb(j.opts.PrimaryColor))
	margins := cell.Properties().Margins()
	margins.SetTop(measurement.Inch)
	margins.SetBottom(measurement.Inch)
	margins.SetLeft(measurement.Inch)
	margins.SetRight(measurement.Inch)

	white := rgb(brand.PureWhite)

	j.addCoverLogo(cell, profile)

	// Spacer before the display title.
	j.coverPara(cell, profile.TitleSpacerBefore, 0)

	para := j.coverPara(cell, 0, 0)
	j.styledRun(para, "hackathon", brand.FontDisplayTitle, profile.TitleSize, white, runBold)
	para = j.coverPara(cell, 0, profile.DebriefAfter)
	j.styledRun(para, "debrief", brand.FontDisplayTitle, profile.TitleSize, white, runBold)

	if subtitle := coverSubtitle(d); subtitle != "" {
		para = j.coverPara(cell, 0, profile.SubtitleAfter)
		j.styledRun(para, subtitle, j.opts.HeadingFont, profile.SubtitleSize, white, runBold)
	}

	para = j.coverPara(cell, 0, profile.CompanyAfter)
	j.styledRun(para, d.Company.Name, j.opts.BodyFont, profile.CompanyHeaderSize, white, runUnderline)
	j.addRoster(cell, d.Participants.Customer, profile, white)

	para = j.coverPara(cell, 200, profile.CompanyAfter)
	j.styledRun(para, "One Thousand", j.opts.BodyFont, profile.CompanyHeaderSize, white, runUnderline)
	j.addRoster(cell, d.Participants.OneThousand, profile, white)

	// Footer spacer.
	j.coverPara(cell, profile.FooterBefore, 0)

	para = j.coverPara(cell, 0, 100)
	j.styledRun(para, d.Company.Name+" x One Thousand", brand.FontDisplayTitle,
		profile.FooterTitleSize, white, runBold)

	para = j.coverPara(cell, 0, 0)
	j.styledRun(para, coverDateLine(d), j.opts.BodyFont, profile.DateSize, white, runBold)

	addPageBreak(j.doc.AddParagraph())
}

// addCoverLogo embeds the brand icon right-aligned when the logo dir
// holds it. Missing logos are skipped silently, as on the web cover.
func (j *job) addCoverLogo(cell document.Cell, profile brand.TitlePageProfile) {
	path := j.findLogo()
	if path == "" {
		return
	}
	img, err := common.ImageFromFile(path)
	if err != nil {
		return
	}
	ref, err := j.doc.AddImage(img)
	if err != nil {
		return
	}

	para := j.coverPara(cell, 0, profile.LogoAfter)
	para.Properties().SetAlignment(wml.ST_JcRight)
	inline, err := para.AddRun().AddDrawingInline(ref)
	if err != nil {
		return
	}
	size := measurement.Distance(profile.LogoSize) * measurement.Point
	inline.SetSize(size, size)
}

func (j *job) findLogo() string {
	if j.opts.LogoDir == "" {
		return ""
	}
	candidate := filepath.Join(j.opts.LogoDir, logoFileName)
	if fileutil.FileExists(candidate) {
		return candidate
	}
	return ""
}

// addRoster adds one "Name (Role)" line per participant, name-sorted.
func (j *job) addRoster(cell document.Cell, roster []content.Participant, profile brand.TitlePageProfile, c color.Color) {
	sorted := make([]content.Participant, len(roster))
	copy(sorted, roster)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Name < sorted[b].Name })

	for _, p := range sorted {
		para := j.coverPara(cell, 0, profile.ParticipantAfter)
		j.styledRun(para, p.Display(), j.opts.BodyFont, profile.ParticipantSize, c, 0)
	}
}

// buildTOC adds the table-of-contents page. Entries are hyperlinks
// whose bookmark targets are wired up later by buildSections.
func (j *job) buildTOC(d *content.Document) {
	para := j.doc.AddParagraph()
	para.Properties().Spacing().SetAfter(600 * measurement.Twips)
	j.styledRun(para, brand.TOCTitle(d.Language), j.opts.HeadingFont, tocTitleSize,
		rgb(j.opts.PrimaryColor), runBold)

	entries := brand.BuildTOCEntries(tocSections(d), d.Language)
	for _, entry := range entries {
		para := j.doc.AddParagraph()
		spacing := para.Properties().Spacing()
		spacing.SetAfter(160 * measurement.Twips)
		spacing.SetLineSpacing(280*measurement.Twips, wml.ST_LineSpacingRuleAuto)

		hl := para.AddHyperLink()
		run := hl.AddRun()
		run.Properties().SetFontFamily(j.opts.BodyFont)
		run.Properties().SetSize(11 * measurement.Point)
		run.Properties().SetColor(rgb(brand.Ash))
		run.AddText(fmt.Sprintf("%s. %s", entry.NumberLabel, entry.Title))

		j.tocLinks[entry.SectionID] = hl
	}

	addPageBreak(j.doc.AddParagraph())
}

func tocSections(d *content.Document) []brand.TOCSection {
	sections := make([]brand.TOCSection, 0, len(d.Sections))
	for _, s := range d.Sections {
		sections = append(sections, brand.TOCSection{ID: s.ID, Title: s.Title})
	}
	return sections
}

// buildSections renders the content sections in canonical order. Each
// H1 heading carries the bookmark its TOC entry points at.
func (j *job) buildSections(d *content.Document) {
	for _, id := range brand.SectionOrder {
		s, ok := d.SectionByID(id)
		if !ok {
			continue
		}
		title := s.DisplayTitle(brand.SectionTitle(id, d.Language))

		para := j.doc.AddParagraph()
		para.SetStyle("Heading1")
		spacing := para.Properties().Spacing()
		spacing.SetBefore(400 * measurement.Twips)
		spacing.SetAfter(300 * measurement.Twips)
		j.styledRun(para, title, j.opts.HeadingFont, heading1Size, rgb(j.opts.PrimaryColor), runBold)

		bookmark := para.AddBookmark("section-" + id)
		if hl, ok := j.tocLinks[id]; ok {
			hl.SetTargetBookmark(bookmark)
		}

		cleaned := markdown.StripCodeFences(markdown.StripRedundantHeading(title, s.Content))
		j.renderBlocks(cleaned)
	}
}

// Run formatting flags for styledRun.
const (
	runBold = 1 << iota
	runItalic
	runUnderline
)

// styledRun appends a fully formatted run. Size is in half-points,
// matching the profile conventions.
func (j *job) styledRun(para document.Paragraph, text, font string, sizeHalfPoints int, c color.Color, flags int) document.Run {
	run := para.AddRun()
	props := run.Properties()
	props.SetFontFamily(font)
	props.SetSize(measurement.Distance(sizeHalfPoints) * measurement.HalfPoint)
	props.SetColor(c)
	if flags&runBold != 0 {
		props.SetBold(true)
	}
	if flags&runItalic != 0 {
		props.SetItalic(true)
	}
	if flags&runUnderline != 0 {
		props.SetUnderline(wml.ST_UnderlineSingle, c)
	}
	run.AddText(text)
	return run
}

// coverPara adds a paragraph to the cover cell with spacing in twips.
func (j *job) coverPara(cell document.Cell, before, after int) document.Paragraph {
	para := cell.AddParagraph()
	spacing := para.Properties().Spacing()
	if before > 0 {
		spacing.SetBefore(measurement.Distance(before) * measurement.Twips)
	}
	spacing.SetAfter(measurement.Distance(after) * measurement.Twips)
	return para
}

// coverSubtitle picks the uppercased cover subtitle: first use case,
// then the metadata title.
func coverSubtitle(d *content.Document) string {
	title := ""
	if len(d.UseCases) > 0 {
		title = d.UseCases[0].Title
	}
	if title == "" {
		title = d.Metadata.Title
	}
	return strings.ToUpper(title)
}

// coverDateLine renders "location, date" with the date range when the
// content carries one. Single dates get the DD.MM.YYYY display form.
func coverDateLine(d *content.Document) string {
	date := dateutil.FormatDisplay(d.Metadata.Date)
	if d.Metadata.Dates != nil {
		date = dateutil.FormatRange(d.Metadata.Dates.Start, d.Metadata.Dates.End)
	}
	return dateutil.LocationDate(d.Metadata.Location, date)
}

// addPageBreak inserts an explicit page break run. The document API
// has no helper for this, so the break element is built directly.
func addPageBreak(para document.Paragraph) {
	run := para.AddRun()
	br := wml.NewCT_Br()
	br.TypeAttr = wml.ST_BrTypePage
	ic := wml.NewEG_RunInnerContent()
	ic.Br = br
	run.X().EG_RunInnerContent = append(run.X().EG_RunInnerContent, ic)
}

// rgb converts a hex RRGGBB string to a document color. Invalid
// values fall back to black rather than failing the render.
func rgb(hex string) color.Color {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.Black
	}
	return color.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

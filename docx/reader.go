// Package docx turns Word (.docx) documents into positioned text runs.
//
// Word files carry no page geometry, so the reader synthesizes it: each
// paragraph becomes one baseline, stacked top-down using the paragraph's
// font size and its before/after spacing. Bold runs keep a "-Bold" font
// name suffix so name-based weight detection works unchanged, and list
// paragraphs get a leading bullet glyph run.
package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode/utf8"

	godocx "github.com/nguyenthenguyen/docx"

	"github.com/tsawler/vitae/text"
)

// Reader provides access to DOCX document content.
type Reader struct {
	archive    *godocx.ReplaceDocx
	document   *documentXML
	paragraphs []parsedParagraph
}

// parsedParagraph holds a paragraph with its formatting resolved.
type parsedParagraph struct {
	StyleID     string
	List        bool
	SpaceBefore float64
	SpaceAfter  float64
	Runs        []parsedRun
}

// parsedRun holds a formatting-homogeneous span of paragraph text.
type parsedRun struct {
	Text     string
	Bold     bool
	FontName string
	FontSize float64
}

// LayoutConfig controls the synthetic geometry assigned to paragraphs.
type LayoutConfig struct {
	// PageTop is the baseline origin of the first paragraph
	PageTop float64

	// LeftMargin is the X position of the first run on each line
	LeftMargin float64

	// LineSpacing multiplies the font size to get the line advance
	LineSpacing float64

	// CharWidth is the average glyph width as a fraction of font size
	CharWidth float64

	// DefaultFontSize applies when neither run nor paragraph sets a size
	DefaultFontSize float64

	// DefaultFont applies when a run names no font
	DefaultFont string

	// BulletGlyph is emitted in front of list paragraphs
	BulletGlyph string
}

// DefaultLayoutConfig returns a US Letter layout with 11pt body text.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		PageTop:         792,
		LeftMargin:      72,
		LineSpacing:     1.2,
		CharWidth:       0.5,
		DefaultFontSize: 11,
		DefaultFont:     "Calibri",
		BulletGlyph:     "•",
	}
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	archive, err := godocx.ReadDocxFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening DOCX archive: %w", err)
	}
	r, err := newReader(archive)
	if err != nil {
		archive.Close()
		return nil, err
	}
	return r, nil
}

// NewReader reads a DOCX document held in memory.
func NewReader(data []byte) (*Reader, error) {
	archive, err := godocx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reading DOCX archive: %w", err)
	}
	r, err := newReader(archive)
	if err != nil {
		archive.Close()
		return nil, err
	}
	return r, nil
}

func newReader(archive *godocx.ReplaceDocx) (*Reader, error) {
	r := &Reader{archive: archive}
	if err := r.parseDocument(archive.Editable().GetContent()); err != nil {
		return nil, err
	}
	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.archive != nil {
		err := r.archive.Close()
		r.archive = nil
		return err
	}
	return nil
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("missing required file: word/document.xml")
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal([]byte(content), r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}

	r.processParagraphs()
	return nil
}

// processParagraphs resolves every paragraph in document order.
func (r *Reader) processParagraphs() {
	r.paragraphs = make([]parsedParagraph, 0, len(r.document.Body.Paragraphs))
	for _, p := range r.document.Body.Paragraphs {
		r.paragraphs = append(r.paragraphs, r.processParagraph(p))
	}
}

// processParagraph merges adjacent runs that share formatting. Word splits
// runs on revision and spell-check boundaries that carry no meaning here.
func (r *Reader) processParagraph(p paragraphXML) parsedParagraph {
	parsed := parsedParagraph{
		StyleID:     p.Properties.Style.Val,
		List:        p.Properties.isList(),
		SpaceBefore: twipsToPoints(p.Properties.Spacing.Before),
		SpaceAfter:  twipsToPoints(p.Properties.Spacing.After),
	}

	for _, run := range p.Runs {
		runText := run.text()
		if runText == "" {
			continue
		}
		props := run.Properties
		pr := parsedRun{
			Text:     runText,
			Bold:     props.Bold.set(),
			FontName: firstNonEmpty(props.Font.ASCII, props.Font.HAnsi),
			FontSize: halfPointsToPoints(props.FontSize.Val),
		}

		if n := len(parsed.Runs); n > 0 && parsed.Runs[n-1].sameFormat(pr) {
			parsed.Runs[n-1].Text += pr.Text
			continue
		}
		parsed.Runs = append(parsed.Runs, pr)
	}

	return parsed
}

func (pr parsedRun) sameFormat(other parsedRun) bool {
	return pr.Bold == other.Bold && pr.FontName == other.FontName && pr.FontSize == other.FontSize
}

// ParagraphCount returns the number of paragraphs, empty ones included.
func (r *Reader) ParagraphCount() int {
	return len(r.paragraphs)
}

// Text returns the document as plain text, one paragraph per line.
// List paragraphs are prefixed with a bullet.
func (r *Reader) Text() string {
	lines := make([]string, 0, len(r.paragraphs))
	for _, p := range r.paragraphs {
		var sb strings.Builder
		if p.List && len(p.Runs) > 0 {
			sb.WriteString("• ")
		}
		for _, run := range p.Runs {
			sb.WriteString(run.Text)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// Runs returns the document as positioned text runs using the default
// layout.
func (r *Reader) Runs() []text.TextRun {
	return r.RunsWithConfig(DefaultLayoutConfig())
}

// RunsWithConfig returns the document as positioned text runs. Every
// paragraph, empty or not, advances the baseline, so blank paragraphs
// between entries show up as wider vertical gaps.
func (r *Reader) RunsWithConfig(cfg LayoutConfig) []text.TextRun {
	var runs []text.TextRun
	y := cfg.PageTop
	prevAfter := 0.0
	first := true

	for _, p := range r.paragraphs {
		size := p.lineSize(cfg.DefaultFontSize)
		if !first {
			y -= prevAfter + p.SpaceBefore + size*cfg.LineSpacing
		}
		first = false
		prevAfter = p.SpaceAfter

		x := cfg.LeftMargin
		emit := func(s string, bold bool, fontName string, fontSize float64) {
			if fontName == "" {
				fontName = cfg.DefaultFont
			}
			if bold && !strings.Contains(strings.ToLower(fontName), "bold") {
				fontName += "-Bold"
			}
			if fontSize == 0 {
				fontSize = size
			}
			width := float64(utf8.RuneCountInString(s)) * fontSize * cfg.CharWidth
			runs = append(runs, text.TextRun{
				Text:     s,
				X:        x,
				Y:        y,
				Width:    width,
				FontName: fontName,
				FontSize: fontSize,
				Order:    len(runs),
			})
			x += width
		}

		for i, run := range p.Runs {
			s := run.Text
			if i == 0 && p.List && cfg.BulletGlyph != "" {
				s = cfg.BulletGlyph + " " + s
			}
			emit(s, run.Bold, run.FontName, run.FontSize)
		}
	}

	return runs
}

// lineSize returns the largest font size used in the paragraph.
func (p parsedParagraph) lineSize(fallback float64) float64 {
	size := 0.0
	for _, run := range p.Runs {
		if run.FontSize > size {
			size = run.FontSize
		}
	}
	if size == 0 {
		return fallback
	}
	return size
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

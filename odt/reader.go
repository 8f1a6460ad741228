// Package odt turns OpenDocument Text (.odt) documents into positioned
// text runs.
//
// Like Word files, ODT carries no page geometry. Each paragraph becomes one
// baseline stacked top-down from its resolved font size and margins. Bold
// spans get a "-Bold" font name suffix so name-based weight detection works
// unchanged.
package odt

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/vitae/text"
)

var errNoBody = errors.New("missing office:text body")

// Reader provides access to ODT document content.
type Reader struct {
	files      []*zip.File
	closer     io.Closer
	resolver   *StyleResolver
	paragraphs []parsedParagraph
}

// parsedParagraph holds a paragraph with its formatting resolved.
type parsedParagraph struct {
	StyleName   string
	Heading     bool
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

	// BulletGlyph is emitted in front of list items
	BulletGlyph string
}

// DefaultLayoutConfig returns a US Letter layout.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		PageTop:     792,
		LeftMargin:  72,
		LineSpacing: 1.2,
		CharWidth:   0.5,
		BulletGlyph: "•",
	}
}

// Open opens an ODT file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	r, err := newReader(zr.File, zr)
	if err != nil {
		zr.Close()
		return nil, err
	}
	return r, nil
}

// NewReader reads an ODT document held in memory.
func NewReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reading ZIP archive: %w", err)
	}
	return newReader(zr.File, nil)
}

func newReader(files []*zip.File, closer io.Closer) (*Reader, error) {
	r := &Reader{files: files, closer: closer}

	content, err := r.fileContent("content.xml")
	if err != nil {
		return nil, err
	}

	// styles.xml is optional; documents without it use the defaults.
	var docStyles *stylesXML
	if data, err := r.fileContent("styles.xml"); err == nil {
		docStyles = &stylesXML{}
		if err := xml.Unmarshal(data, docStyles); err != nil {
			docStyles = nil
		}
	}

	contentStyles := &contentStylesXML{}
	if err := xml.Unmarshal(content, contentStyles); err != nil {
		return nil, fmt.Errorf("unmarshaling content.xml: %w", err)
	}

	r.resolver = NewStyleResolver(contentStyles, docStyles)
	if err := r.parseBody(content); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// fileContent reads a file from the archive.
func (r *Reader) fileContent(name string) ([]byte, error) {
	for _, f := range r.files {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("missing required file: %s", name)
}

// parseBody walks office:body/office:text in document order. Paragraphs
// inside lists, tables and sections are flattened into the same sequence.
func (r *Reader) parseBody(content []byte) error {
	d := xml.NewDecoder(bytes.NewReader(content))

	// Find office:text.
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return errNoBody
		}
		if err != nil {
			return err
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Space == nsOffice && se.Name.Local == "text" {
			break
		}
	}

	pendingList := false
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != nsText && t.Name.Space != nsTable {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			switch t.Name.Local {
			case "p", "h":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				r.paragraphs = append(r.paragraphs, r.processParagraph(p, pendingList))
				pendingList = false
			case "list-item", "list-header":
				pendingList = t.Name.Local == "list-item"
				depth++
			case "list", "section", "table", "table-row", "table-cell",
				"table-header-rows", "table-rows", "soft-page-break":
				depth++
			default:
				// tracked-changes, sequence-decls, table-column and the like
				if err := d.Skip(); err != nil {
					return err
				}
			}

		case xml.EndElement:
			if depth == 0 {
				return nil // </office:text>
			}
			depth--
		}
	}
}

// processParagraph resolves a paragraph's style chain and merges adjacent
// segments whose effective formatting matches.
func (r *Reader) processParagraph(p paragraphXML, list bool) parsedParagraph {
	base := r.resolver.Resolve(p.StyleName)
	heading := p.Heading || base.IsHeading

	parsed := parsedParagraph{
		StyleName:   p.StyleName,
		Heading:     heading,
		List:        list,
		SpaceBefore: base.SpaceBefore,
		SpaceAfter:  base.SpaceAfter,
	}

	for _, seg := range p.Segments {
		rs := r.resolver.ResolveText(base, seg.StyleName)
		pr := parsedRun{
			Text:     seg.Text,
			Bold:     rs.Bold || (heading && !rs.boldSet),
			FontName: rs.FontName,
			FontSize: rs.FontSize,
		}

		if n := len(parsed.Runs); n > 0 && parsed.Runs[n-1].sameFormat(pr) {
			parsed.Runs[n-1].Text += pr.Text
			continue
		}
		parsed.Runs = append(parsed.Runs, pr)
	}

	// Leading space in the first run and trailing space in the last carry
	// nothing; ODF renders them collapsed.
	if n := len(parsed.Runs); n > 0 {
		parsed.Runs[0].Text = strings.TrimLeft(parsed.Runs[0].Text, " ")
		parsed.Runs[n-1].Text = strings.TrimRight(parsed.Runs[n-1].Text, " ")
		kept := parsed.Runs[:0]
		for _, run := range parsed.Runs {
			if run.Text != "" {
				kept = append(kept, run)
			}
		}
		parsed.Runs = kept
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

// PageCount returns 1: ODT has no fixed pages, so the whole document is
// treated as a single page.
func (r *Reader) PageCount() int {
	return 1
}

// Text returns the document as plain text, one paragraph per line. List
// items are prefixed with a bullet.
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
// paragraph advances the baseline, including empty ones.
func (r *Reader) RunsWithConfig(cfg LayoutConfig) []text.TextRun {
	var runs []text.TextRun
	y := cfg.PageTop
	prevAfter := 0.0
	first := true
	fallback := r.resolver.Resolve("").FontSize

	for _, p := range r.paragraphs {
		size := p.lineSize(fallback)
		if !first {
			y -= prevAfter + p.SpaceBefore + size*cfg.LineSpacing
		}
		first = false
		prevAfter = p.SpaceAfter

		x := cfg.LeftMargin
		for i, run := range p.Runs {
			s := run.Text
			if i == 0 && p.List && cfg.BulletGlyph != "" {
				s = cfg.BulletGlyph + " " + s
			}

			fontName := run.FontName
			if run.Bold && !strings.Contains(strings.ToLower(fontName), "bold") {
				fontName += "-Bold"
			}
			width := float64(utf8.RuneCountInString(s)) * run.FontSize * cfg.CharWidth
			runs = append(runs, text.TextRun{
				Text:     s,
				X:        x,
				Y:        y,
				Width:    width,
				FontName: fontName,
				FontSize: run.FontSize,
				Order:    len(runs),
			})
			x += width
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

package reader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/vitae/text"
)

var versionPattern = regexp.MustCompile(`^%PDF-(\d+)\.(\d+)`)

// PDFVersion represents a PDF version
type PDFVersion struct {
	Major int
	Minor int
}

// String returns the version as a string (e.g., "1.7")
func (v PDFVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Reader represents an open PDF document
type Reader struct {
	closer   io.Closer
	doc      *pdf.Reader
	version  PDFVersion
	fileSize int64
	merge    MergeConfig
}

// NewReader creates a reader over PDF bytes available through r.
func NewReader(r io.ReaderAt, size int64) (rd *Reader, err error) {
	version, err := parseHeader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rd, err = nil, fmt.Errorf("failed to load document: %v", p)
		}
	}()

	doc, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	return &Reader{
		doc:      doc,
		version:  version,
		fileSize: size,
		merge:    DefaultMergeConfig(),
	}, nil
}

// FromBytes creates a reader over an in-memory PDF.
func FromBytes(data []byte) (*Reader, error) {
	return NewReader(bytes.NewReader(data), int64(len(data)))
}

// Open opens a PDF file and returns a Reader
func Open(filename string) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	reader, err := NewReader(file, info.Size())
	if err != nil {
		file.Close()
		return nil, err
	}
	reader.closer = file

	return reader, nil
}

// Close closes the underlying file, if any
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// parseHeader reads the %PDF-x.y header
func parseHeader(r io.ReaderAt) (PDFVersion, error) {
	header := make([]byte, 16)
	n, err := r.ReadAt(header, 0)
	if err != nil && err != io.EOF {
		return PDFVersion{}, fmt.Errorf("failed to read header: %w", err)
	}
	if n < 8 {
		return PDFVersion{}, fmt.Errorf("header too short: %d bytes", n)
	}

	matches := versionPattern.FindSubmatch(header[:n])
	if matches == nil {
		return PDFVersion{}, fmt.Errorf("invalid PDF header: %q", header[:8])
	}

	major, _ := strconv.Atoi(string(matches[1]))
	minor, _ := strconv.Atoi(string(matches[2]))
	return PDFVersion{Major: major, Minor: minor}, nil
}

// Version returns the PDF version from the file header
func (r *Reader) Version() PDFVersion {
	return r.version
}

// FileSize returns the document size in bytes
func (r *Reader) FileSize() int64 {
	return r.fileSize
}

// SetMergeConfig replaces the glyph merging thresholds used by
// ExtractRuns.
func (r *Reader) SetMergeConfig(cfg MergeConfig) {
	r.merge = cfg
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() (n int, err error) {
	defer func() {
		if p := recover(); p != nil {
			n, err = 0, fmt.Errorf("failed to read page tree: %v", p)
		}
	}()
	return r.doc.NumPage(), nil
}

// ExtractGlyphs returns the positioned glyphs of a page (1-based), in
// content stream order.
func (r *Reader) ExtractGlyphs(pageNum int) (glyphs []Glyph, err error) {
	count, err := r.PageCount()
	if err != nil {
		return nil, err
	}
	if pageNum < 1 || pageNum > count {
		return nil, fmt.Errorf("page %d out of range [1, %d]", pageNum, count)
	}

	defer func() {
		if p := recover(); p != nil {
			glyphs, err = nil, fmt.Errorf("failed to decode page %d: %v", pageNum, p)
		}
	}()

	page := r.doc.Page(pageNum)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", pageNum)
	}

	content := page.Content()
	glyphs = make([]Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		glyphs = append(glyphs, Glyph{
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			FontName: t.Font,
			FontSize: t.FontSize,
		})
	}
	return glyphs, nil
}

// ExtractRuns returns the text runs of a page (1-based), built by merging
// its glyphs.
func (r *Reader) ExtractRuns(pageNum int) ([]text.TextRun, error) {
	glyphs, err := r.ExtractGlyphs(pageNum)
	if err != nil {
		return nil, err
	}
	return MergeGlyphs(glyphs, r.merge), nil
}

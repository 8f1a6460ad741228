package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/model"
)

// ExportFormat defines the available export formats
type ExportFormat int

const (
	// ExportFormatJSON exports the document as a JSON object
	ExportFormatJSON ExportFormat = iota
	// ExportFormatJSONL exports one flattened entry per line
	ExportFormatJSONL
	// ExportFormatCSV exports flattened entries as comma-separated values
	ExportFormatCSV
	// ExportFormatTSV exports flattened entries as tab-separated values
	ExportFormatTSV
	// ExportFormatMarkdown exports a Markdown outline
	ExportFormatMarkdown
	// ExportFormatHTML exports a standalone HTML page
	ExportFormatHTML
)

// String returns a human-readable representation of the export format
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSON:
		return "json"
	case ExportFormatJSONL:
		return "jsonl"
	case ExportFormatCSV:
		return "csv"
	case ExportFormatTSV:
		return "tsv"
	case ExportFormatMarkdown:
		return "markdown"
	case ExportFormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSON:
		return ".json"
	case ExportFormatJSONL:
		return ".jsonl"
	case ExportFormatCSV:
		return ".csv"
	case ExportFormatTSV:
		return ".tsv"
	case ExportFormatMarkdown:
		return ".md"
	case ExportFormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ContentType returns the media type for HTTP responses
func (ef ExportFormat) ContentType() string {
	switch ef {
	case ExportFormatJSON:
		return "application/json"
	case ExportFormatJSONL:
		return "application/x-ndjson"
	case ExportFormatCSV:
		return "text/csv; charset=utf-8"
	case ExportFormatTSV:
		return "text/tab-separated-values; charset=utf-8"
	case ExportFormatMarkdown:
		return "text/markdown; charset=utf-8"
	case ExportFormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// ParseFormat maps a format name or file extension to an ExportFormat.
func ParseFormat(name string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "", "json":
		return ExportFormatJSON, nil
	case "jsonl", "ndjson":
		return ExportFormatJSONL, nil
	case "csv":
		return ExportFormatCSV, nil
	case "tsv":
		return ExportFormatTSV, nil
	case "md", "markdown":
		return ExportFormatMarkdown, nil
	case "html", "htm":
		return ExportFormatHTML, nil
	default:
		return 0, fmt.Errorf("unsupported export format: %q", name)
	}
}

// ExportConfig holds configuration options for export
type ExportConfig struct {
	// Format specifies the export format
	Format ExportFormat

	// PrettyPrint enables indentation for JSON formats
	PrettyPrint bool

	// CSVDelimiter specifies the delimiter for CSV export (default: comma)
	CSVDelimiter rune

	// IncludeHeader includes header row in CSV/TSV exports
	IncludeHeader bool

	// BulletSeparator joins bullets into one CSV/TSV cell
	BulletSeparator string

	// BulletGlyphs are stripped from the start of bullets in Markdown and
	// HTML
	BulletGlyphs []string

	// Title heads Markdown and HTML output
	Title string
}

// DefaultExportConfig returns sensible defaults for export configuration
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:          ExportFormatJSON,
		PrettyPrint:     false,
		CSVDelimiter:    ',',
		IncludeHeader:   true,
		BulletSeparator: " | ",
		BulletGlyphs:    config.DefaultLexicon().BulletGlyphs,
		Title:           "Résumé",
	}
}

// ConfigFor returns the default configuration for a format
func ConfigFor(format ExportFormat) ExportConfig {
	cfg := DefaultExportConfig()
	cfg.Format = format
	if format == ExportFormatTSV {
		cfg.CSVDelimiter = '\t'
	}
	return cfg
}

// MarkdownExportConfig returns config for Markdown export
func MarkdownExportConfig() ExportConfig {
	return ConfigFor(ExportFormatMarkdown)
}

// HTMLExportConfig returns config for HTML export
func HTMLExportConfig() ExportConfig {
	return ConfigFor(ExportFormatHTML)
}

// Exporter writes résumé documents in a configured format
type Exporter struct {
	config ExportConfig
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultExportConfig(),
	}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config ExportConfig) *Exporter {
	return &Exporter{
		config: config,
	}
}

// Config returns the exporter configuration
func (e *Exporter) Config() ExportConfig {
	return e.config
}

// ExportedEntry is a work or project entry flattened for row-oriented
// formats
type ExportedEntry struct {
	// Section is "work" or "project"
	Section string `json:"section"`

	// Index is the entry position within its section
	Index int `json:"index"`

	// Title is the job title or project title
	Title string `json:"title"`

	// Company is empty for projects
	Company string `json:"company,omitempty"`

	Date    string   `json:"date"`
	Bullets []string `json:"bullets"`
}

// Entries flattens a document into export rows, work entries first.
func Entries(doc *model.ResumeDocument) []ExportedEntry {
	if doc == nil {
		return nil
	}
	entries := make([]ExportedEntry, 0, doc.EntryCount())
	for i, w := range doc.WorkExperience {
		entries = append(entries, ExportedEntry{
			Section: "work",
			Index:   i,
			Title:   w.JobTitle,
			Company: w.Company,
			Date:    w.Date,
			Bullets: nonNil(w.Bullets),
		})
	}
	for i, p := range doc.Projects {
		entries = append(entries, ExportedEntry{
			Section: "project",
			Index:   i,
			Title:   p.Title,
			Date:    p.Date,
			Bullets: nonNil(p.Bullets),
		})
	}
	return entries
}

// Export exports the document to the specified writer
func (e *Exporter) Export(doc *model.ResumeDocument, w io.Writer) error {
	if doc == nil {
		doc = model.NewResumeDocument()
	}
	switch e.config.Format {
	case ExportFormatJSON:
		return e.exportJSON(doc, w)
	case ExportFormatJSONL:
		return e.exportJSONL(doc, w)
	case ExportFormatCSV, ExportFormatTSV:
		return e.exportCSV(doc, w)
	case ExportFormatMarkdown:
		return e.exportMarkdown(doc, w)
	case ExportFormatHTML:
		return e.exportHTML(doc, w)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile exports the document to a file
func (e *Exporter) ExportToFile(doc *model.ResumeDocument, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := e.Export(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportToString exports the document to a string
func (e *Exporter) ExportToString(doc *model.ResumeDocument) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(doc, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// exportJSON writes the document with empty arrays rather than nulls
func (e *Exporter) exportJSON(doc *model.ResumeDocument, w io.Writer) error {
	normalized := *doc
	normalized.WorkExperience = append([]model.WorkExperienceEntry(nil), doc.WorkExperience...)
	normalized.Projects = append([]model.ProjectEntry(nil), doc.Projects...)
	normalized.Normalize()

	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(normalized)
}

// exportJSONL writes one entry per line
func (e *Exporter) exportJSONL(doc *model.ResumeDocument, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for i, entry := range Entries(doc) {
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("encoding entry %d: %w", i, err)
		}
	}
	return nil
}

// exportCSV exports entries as CSV or TSV
func (e *Exporter) exportCSV(doc *model.ResumeDocument, w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if e.config.CSVDelimiter != 0 {
		csvWriter.Comma = e.config.CSVDelimiter
	}

	if e.config.IncludeHeader {
		header := []string{"section", "index", "title", "company", "date", "bullets"}
		if err := csvWriter.Write(header); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
	}

	for i, entry := range Entries(doc) {
		row := []string{
			entry.Section,
			strconv.Itoa(entry.Index),
			entry.Title,
			entry.Company,
			entry.Date,
			strings.Join(entry.Bullets, e.config.BulletSeparator),
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// stripGlyph removes one leading bullet glyph and surrounding whitespace
func (e *Exporter) stripGlyph(bullet string) string {
	s := strings.TrimSpace(bullet)
	for _, g := range e.config.BulletGlyphs {
		if g != "" && strings.HasPrefix(s, g) {
			return strings.TrimSpace(strings.TrimPrefix(s, g))
		}
	}
	return s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package vitae

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/docx"
	"github.com/tsawler/vitae/format"
	"github.com/tsawler/vitae/layout"
	"github.com/tsawler/vitae/model"
	"github.com/tsawler/vitae/odt"
	"github.com/tsawler/vitae/reader"
	"github.com/tsawler/vitae/resume"
	"github.com/tsawler/vitae/text"
)

// Extractor provides a fluent interface for extracting résumé content from
// PDF, DOCX and ODT files. Each configuration method returns a new Extractor
// instance, allowing method chaining without affecting the original.
type Extractor struct {
	// Source (exactly one of filename, data, runs or pdfReader is set)
	filename  string
	data      []byte
	runs      []text.TextRun
	pageCount int
	format    format.Format

	// Readers (only one will be used based on format)
	pdfReader  *reader.Reader
	docxReader *docx.Reader
	odtReader  *odt.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		data:         e.data,
		runs:         e.runs,
		pageCount:    e.pageCount,
		format:       e.format,
		pdfReader:    e.pdfReader,
		docxReader:   e.docxReader,
		odtReader:    e.odtReader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}

	switch e.format {
	case format.PDF:
		var (
			r   *reader.Reader
			err error
		)
		if e.data != nil {
			r, err = reader.FromBytes(e.data)
		} else {
			r, err = reader.Open(e.filename)
		}
		if err != nil {
			return fmt.Errorf("%w: PDF: %w", ErrOpenFailed, err)
		}
		e.pdfReader = r

	case format.DOCX:
		var (
			r   *docx.Reader
			err error
		)
		if e.data != nil {
			r, err = docx.NewReader(e.data)
		} else {
			r, err = docx.Open(e.filename)
		}
		if err != nil {
			return fmt.Errorf("%w: DOCX: %w", ErrOpenFailed, err)
		}
		e.docxReader = r

	case format.ODT:
		var (
			r   *odt.Reader
			err error
		)
		if e.data != nil {
			r, err = odt.NewReader(e.data)
		} else {
			r, err = odt.Open(e.filename)
		}
		if err != nil {
			return fmt.Errorf("%w: ODT: %w", ErrOpenFailed, err)
		}
		e.odtReader = r

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, e.format)
	}

	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if !e.ownsReader {
		return nil
	}
	e.ownsReader = false
	e.readerOpened = false

	if e.pdfReader != nil {
		err := e.pdfReader.Close()
		e.pdfReader = nil
		return err
	}
	if e.docxReader != nil {
		err := e.docxReader.Close()
		e.docxReader = nil
		return err
	}
	if e.odtReader != nil {
		err := e.odtReader.Close()
		e.odtReader = nil
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithLexicon replaces the default vocabulary and thresholds.
//
// Example:
//
//	lex := config.DefaultLexicon()
//	lex.JobTitles = append(lex.JobTitles, "Sommelier")
//	doc, _, err := vitae.Open("resume.pdf").WithLexicon(lex).Resume()
func (e *Extractor) WithLexicon(lex config.Lexicon) *Extractor {
	newExt := e.clone()
	c := lex.Clone()
	newExt.options.lexicon = &c
	return newExt
}

// LexiconFile loads a YAML lexicon overlay. A file that cannot be read or
// fails validation makes every terminal operation return the error.
//
// Example:
//
//	doc, _, err := vitae.Open("resume.pdf").LexiconFile("lexicon.yaml").Resume()
func (e *Extractor) LexiconFile(path string) *Extractor {
	newExt := e.clone()
	if newExt.err != nil {
		return newExt
	}
	lex, err := config.LoadLexicon(path)
	if err != nil {
		newExt.err = err
		return newExt
	}
	newExt.options.lexicon = &lex
	return newExt
}

// WithWeigher sets how fonts are classified as bold.
//
// Example:
//
//	w := text.WeigherFunc(func(ref string) bool { return boldFonts[ref] })
//	doc, _, err := vitae.FromRuns(runs, 1).WithWeigher(w).Resume()
func (e *Extractor) WithWeigher(w text.FontWeigher) *Extractor {
	newExt := e.clone()
	newExt.options.weigher = w
	return newExt
}

// LineTolerance overrides the maximum baseline difference for runs on the
// same line.
//
// Example:
//
//	text, _, err := vitae.Open("resume.pdf").LineTolerance(3).Text()
func (e *Extractor) LineTolerance(tol float64) *Extractor {
	newExt := e.clone()
	newExt.options.lineTolerance = tol
	return newExt
}

// FirstMatchSections makes section lookup take the first keyword that
// matches instead of the last.
//
// Example:
//
//	doc, _, err := vitae.Open("resume.pdf").FirstMatchSections().Resume()
func (e *Extractor) FirstMatchSections() *Extractor {
	newExt := e.clone()
	newExt.options.firstMatch = true
	return newExt
}

// JoinLines makes Text emit one output line per assembled line, with runs
// separated by a space, instead of one line per run.
//
// Example:
//
//	text, _, err := vitae.Open("resume.pdf").JoinLines().Text()
func (e *Extractor) JoinLines() *Extractor {
	newExt := e.clone()
	newExt.options.joinLines = true
	return newExt
}

// WithLogger enables debug logging of the pipeline stages.
//
// Example:
//
//	doc, _, err := vitae.Open("resume.pdf").WithLogger(slog.Default()).Resume()
func (e *Extractor) WithLogger(l *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// PageCount returns the number of pages in the document. DOCX and ODT
// documents carry no pagination and always report one page.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	defer e.Close()

	return e.countPages()
}

// Runs returns the text runs of the first page in source order.
//
// Example:
//
//	runs, _, err := vitae.Open("resume.pdf").Runs()
func (e *Extractor) Runs() ([]text.TextRun, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	runs, warnings, err := e.pageRuns()
	if err != nil {
		return nil, nil, err
	}
	return runs, warnings, nil
}

// Lines returns the first page grouped into lines.
//
// Example:
//
//	lines, _, err := vitae.Open("resume.pdf").Lines()
//	for _, l := range lines {
//	    fmt.Println(l.Text())
//	}
func (e *Extractor) Lines() ([]layout.Line, []Warning, error) {
	res, warnings, err := e.analyze()
	if err != nil {
		return nil, nil, err
	}
	return res.Lines, warnings, nil
}

// Sections returns the first page's sections, in the order their
// headings appear. Content before the first heading belongs to the
// lexicon's default section.
//
// Example:
//
//	sections, _, err := vitae.Open("resume.pdf").Sections()
//	for _, s := range sections.Sections() {
//	    fmt.Println(s.Name, len(s.Lines))
//	}
func (e *Extractor) Sections() (*layout.SectionMap, []Warning, error) {
	res, warnings, err := e.analyze()
	if err != nil {
		return nil, nil, err
	}
	return res.Sections, warnings, nil
}

// Text returns the first page as flat text, one run per line, or one
// assembled line per line with JoinLines.
//
// Example:
//
//	text, warnings, err := vitae.Open("resume.pdf").Text()
func (e *Extractor) Text() (string, []Warning, error) {
	res, warnings, err := e.analyze()
	if err != nil {
		return "", nil, err
	}
	if e.options.joinLines {
		return layout.JoinedText(res.Lines), warnings, nil
	}
	return layout.FlatText(res.Lines), warnings, nil
}

// Resume parses the first page into work experience and project entries.
// Entries with unresolved fields and missing sections are reported as
// warnings.
//
// Example:
//
//	doc, warnings, err := vitae.Open("resume.pdf").Resume()
//	for _, job := range doc.WorkExperience {
//	    fmt.Println(job.JobTitle, "at", job.Company)
//	}
func (e *Extractor) Resume() (*model.ResumeDocument, []Warning, error) {
	res, warnings, err := e.Analyze()
	if err != nil {
		return nil, nil, err
	}
	return res.Document, warnings, nil
}

// Analyze runs the full pipeline and returns every intermediate stage
// along with the document. Parser advisories are added to the warnings.
func (e *Extractor) Analyze() (*resume.Result, []Warning, error) {
	res, warnings, err := e.analyze()
	if err != nil {
		return nil, nil, err
	}
	for _, a := range res.Advisories {
		warnings = append(warnings, advisoryWarning(a))
	}

	e.options.log().Debug("parsed resume",
		slog.Int("work_entries", len(res.Document.WorkExperience)),
		slog.Int("project_entries", len(res.Document.Projects)),
		slog.Int("warnings", len(warnings)))
	return res, warnings, nil
}

// analyze reads the first page and runs the pipeline.
func (e *Extractor) analyze() (*resume.Result, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	lex, err := e.options.resolveLexicon()
	if err != nil {
		return nil, nil, err
	}

	runs, warnings, err := e.pageRuns()
	if err != nil {
		return nil, nil, err
	}

	parser := resume.NewParserWithLexicon(lex, e.options.weigher)
	res := parser.Parse(runs)

	e.options.log().Debug("analyzed page",
		slog.Int("runs", len(runs)),
		slog.Int("lines", len(res.Lines)),
		slog.Any("sections", res.Sections.Names()))
	return res, warnings, nil
}

// pageRuns returns the first page's runs and the warnings of this call,
// including one when the document has further pages. Warnings are never
// stored on the Extractor, so repeated terminal calls report the same set.
func (e *Extractor) pageRuns() ([]text.TextRun, []Warning, error) {
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pageCount, err := e.countPages()
	if err != nil {
		return nil, nil, err
	}
	warnings := append([]Warning(nil), e.warnings...)
	if pageCount > 1 {
		warnings = append(warnings, multiPageWarning(pageCount))
	}

	var runs []text.TextRun
	switch {
	case e.pdfReader != nil:
		runs, err = e.pdfReader.ExtractRuns(1)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: page 1: %w", ErrOpenFailed, err)
		}
	case e.docxReader != nil:
		runs = e.docxReader.Runs()
	case e.odtReader != nil:
		runs = e.odtReader.Runs()
	default:
		runs = append([]text.TextRun(nil), e.runs...)
	}

	e.options.log().Debug("read first page",
		slog.String("format", e.format.String()),
		slog.Int("pages", pageCount),
		slog.Int("runs", len(runs)))
	return runs, warnings, nil
}

// countPages returns the page count of the open source.
func (e *Extractor) countPages() (int, error) {
	switch {
	case e.pdfReader != nil:
		n, err := e.pdfReader.PageCount()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrOpenFailed, err)
		}
		if n == 0 {
			return 0, ErrNoPages
		}
		return n, nil
	case e.docxReader != nil:
		return 1, nil
	case e.odtReader != nil:
		return e.odtReader.PageCount(), nil
	case e.pageCount > 0:
		return e.pageCount, nil
	default:
		return 0, errors.New("vitae: extractor has no source")
	}
}

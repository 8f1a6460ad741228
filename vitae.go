// Package vitae provides a fluent API for extracting structured work
// experience and projects from résumé PDFs, Word and OpenDocument files.
//
// Basic usage:
//
//	doc, warnings, err := vitae.Open("resume.pdf").Resume()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", vitae.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := vitae.Open("resume.pdf").
//	    LexiconFile("lexicon.yaml").
//	    FirstMatchSections().
//	    WithLogger(logger).
//	    Resume()
//
// Only the first page of a document is parsed; a warning reports any
// further pages. Parsing problems that affect part of the result, such as
// a missing projects section or a job entry without a recognizable date,
// are reported as warnings rather than errors.
//
// The pipeline stages live in their own packages: layout (lines, sections,
// subsections, bullets), scoring (field selection) and resume (section
// extractors). Callers with their own text source can start from
// [FromRuns].
package vitae

import (
	"fmt"
	"path/filepath"

	"github.com/tsawler/vitae/format"
	"github.com/tsawler/vitae/reader"
	"github.com/tsawler/vitae/text"
)

// Open opens a PDF, DOCX or ODT file and returns an Extractor for fluent
// configuration. The file is read lazily by the first terminal operation,
// which also closes it.
//
// Example:
//
//	doc, warnings, err := vitae.Open("resume.pdf").Resume()
func Open(filename string) *Extractor {
	e := &Extractor{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
	switch {
	case filename == "":
		e.err = ErrNoInput
	case e.format == format.Unknown:
		e.err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	return e
}

// FromBytes creates an Extractor over an in-memory document. The format
// is detected from the content.
//
// Example:
//
//	doc, _, err := vitae.FromBytes(upload).Resume()
func FromBytes(data []byte) *Extractor {
	e := &Extractor{
		data:    data,
		format:  format.DetectFromBytes(data),
		options: defaultOptions(),
	}
	switch {
	case len(data) == 0:
		e.err = ErrNoInput
	case e.format == format.Unknown:
		e.err = fmt.Errorf("%w: unrecognized content", ErrUnsupportedFormat)
	}
	return e
}

// FromRuns creates an Extractor over runs already produced by another text
// source. pageCount is the number of pages in the source document and only
// drives the multi-page warning; values below 1 are treated as 1.
//
// Example:
//
//	doc, _, err := vitae.FromRuns(runs, 1).Resume()
func FromRuns(runs []text.TextRun, pageCount int) *Extractor {
	if pageCount < 1 {
		pageCount = 1
	}
	return &Extractor{
		runs:         append([]text.TextRun(nil), runs...),
		pageCount:    pageCount,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("resume.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	doc, _, err := vitae.FromReader(r).Resume()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		format:       format.PDF,
		pdfReader:    r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := vitae.Must(vitae.Open("resume.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to a terminal operation such as
// Text() or Resume() and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	text := vitae.MustText(vitae.Open("resume.pdf").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

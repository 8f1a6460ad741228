package vitae

import (
	"errors"

	"github.com/tsawler/vitae/config"
)

var (
	// ErrNoInput is returned when no filename or data was supplied.
	ErrNoInput = errors.New("vitae: no input")

	// ErrUnsupportedFormat is returned for documents that are not PDF,
	// DOCX or ODT.
	ErrUnsupportedFormat = errors.New("vitae: unsupported format")

	// ErrOpenFailed is returned when the document cannot be opened or its
	// first page cannot be decoded.
	ErrOpenFailed = errors.New("vitae: open failed")

	// ErrNoPages is returned for a PDF without pages.
	ErrNoPages = errors.New("vitae: document has no pages")

	// ErrInvalidLexicon is returned when a lexicon fails validation.
	ErrInvalidLexicon = config.ErrInvalidLexicon
)

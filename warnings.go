package vitae

import (
	"fmt"
	"strings"

	"github.com/tsawler/vitae/resume"
)

// WarningCode classifies a non-fatal issue
type WarningCode int

const (
	// CodeMultiPage means the document has more than one page and only the
	// first was parsed
	CodeMultiPage WarningCode = iota + 1

	// CodeEmptyPage means the first page produced no text
	CodeEmptyPage

	// CodeSectionNotFound means no work or project section was found
	CodeSectionNotFound

	// CodeFieldUnresolved means an entry field was left blank because no
	// candidate qualified
	CodeFieldUnresolved
)

// String returns the code's short name
func (c WarningCode) String() string {
	switch c {
	case CodeMultiPage:
		return "multi-page"
	case CodeEmptyPage:
		return "empty-page"
	case CodeSectionNotFound:
		return "section-not-found"
	case CodeFieldUnresolved:
		return "field-unresolved"
	default:
		return "unknown"
	}
}

// MarshalText encodes the code by name
func (c WarningCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Warning is a non-fatal issue encountered while extracting. The result
// is still usable, though possibly incomplete.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// String returns the warning message
func (w Warning) String() string {
	return w.Message
}

// FormatWarnings renders warnings one per line, prefixed with their code.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = fmt.Sprintf("[%s] %s", w.Code, w.Message)
	}
	return strings.Join(lines, "\n")
}

// multiPageWarning reports the pages that were skipped
func multiPageWarning(pageCount int) Warning {
	return Warning{
		Code:    CodeMultiPage,
		Message: fmt.Sprintf("document has %d pages; only page 1 was parsed", pageCount),
	}
}

// advisoryWarning converts a parser advisory into a Warning
func advisoryWarning(a resume.Advisory) Warning {
	var code WarningCode
	switch a.Code {
	case resume.AdvisoryEmptyPage:
		code = CodeEmptyPage
	case resume.AdvisorySectionNotFound:
		code = CodeSectionNotFound
	case resume.AdvisoryFieldUnresolved:
		code = CodeFieldUnresolved
	}
	return Warning{Code: code, Message: a.String()}
}

package text

import (
	"strings"
	"unicode"
)

// TextRun represents one positioned piece of text on a page
type TextRun struct {
	// Text is the run content
	Text string

	// X is the horizontal start position of the run
	X float64

	// Y is the vertical baseline coordinate
	Y float64

	// Width is the horizontal extent of the run (0 when unknown)
	Width float64

	// FontName is the resolved display name of the run's font
	FontName string

	// FontSize is the font size in layout units (0 when unknown)
	FontSize float64

	// Order is the run's position in the source stream (0-based)
	Order int
}

// IsEmpty reports whether the run carries no text at all.
// Whitespace-only runs are not empty.
func (r TextRun) IsEmpty() bool {
	return len(r.Text) == 0
}

// Trimmed returns the run text without leading and trailing whitespace
func (r TextRun) Trimmed() string {
	return strings.TrimSpace(r.Text)
}

// Words splits the run text on whitespace
func (r TextRun) Words() []string {
	return strings.Fields(r.Text)
}

// WordCount returns the number of whitespace-delimited words in the run
func (r TextRun) WordCount() int {
	return len(r.Words())
}

// HasDigit reports whether the run contains a decimal digit
func (r TextRun) HasDigit() bool {
	for _, c := range r.Text {
		if unicode.IsDigit(c) {
			return true
		}
	}
	return false
}

// IsUpper reports whether the run text equals its own upper-cased form
func (r TextRun) IsUpper() bool {
	return r.Text == strings.ToUpper(r.Text)
}

// Texts returns the text of every run, in order
func Texts(runs []TextRun) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = r.Text
	}
	return out
}

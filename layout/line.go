// Package layout provides the geometric stages of résumé parsing: line
// assembly, section segmentation, subsection splitting and bullet
// reconstruction.
package layout

import (
	"math"
	"strings"

	"github.com/tsawler/vitae/text"
)

// Line represents a single line of text on a page
type Line struct {
	// Runs are the text runs that make up this line, in source order
	Runs []text.TextRun

	// Index is the line's position on the page (0-based, reading order)
	Index int

	// Baseline is the Y coordinate of the first run in the line
	Baseline float64
}

// Text returns the line content with runs separated by a single space
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Runs))
	for _, r := range l.Runs {
		if t := strings.TrimSpace(r.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// RunCount returns the number of runs in the line
func (l Line) RunCount() int {
	return len(l.Runs)
}

// IsSingleRun reports whether the line consists of exactly one run
func (l Line) IsSingleRun() bool {
	return len(l.Runs) == 1
}

// LineConfig holds configuration for line assembly
type LineConfig struct {
	// Tolerance is the baseline distance below which a run joins the
	// current line. The comparison is strict: a distance equal to the
	// tolerance starts a new line. (default: 5)
	Tolerance float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		Tolerance: 5,
	}
}

// LineAssembler groups positioned runs into lines
type LineAssembler struct {
	config LineConfig
}

// NewLineAssembler creates a new line assembler with default configuration
func NewLineAssembler() *LineAssembler {
	return &LineAssembler{
		config: DefaultLineConfig(),
	}
}

// NewLineAssemblerWithConfig creates a line assembler with custom configuration
func NewLineAssemblerWithConfig(config LineConfig) *LineAssembler {
	return &LineAssembler{
		config: config,
	}
}

// Assemble walks runs in source order and closes the current line whenever
// a run's baseline is not strictly within the tolerance of the previous
// run's baseline. Runs are not sorted; they are assumed to arrive in
// reading order. Runs with empty text are skipped and never affect line
// breaks.
func (a *LineAssembler) Assemble(runs []text.TextRun) []Line {
	var lines []Line
	var current []text.TextRun
	var prevY float64
	havePrev := false

	flush := func() {
		if len(current) == 0 {
			return
		}
		lines = append(lines, Line{
			Runs:     current,
			Index:    len(lines),
			Baseline: current[0].Y,
		})
		current = nil
	}

	for _, run := range runs {
		if run.IsEmpty() {
			continue
		}
		if havePrev && math.Abs(prevY-run.Y) < a.config.Tolerance {
			current = append(current, run)
		} else {
			flush()
			current = []text.TextRun{run}
		}
		prevY = run.Y
		havePrev = true
	}
	flush()

	return lines
}

// AssembleLines groups runs into lines using the default configuration
func AssembleLines(runs []text.TextRun) []Line {
	return NewLineAssembler().Assemble(runs)
}

// FlattenRuns concatenates the runs of all lines, preserving order
func FlattenRuns(lines []Line) []text.TextRun {
	n := 0
	for _, l := range lines {
		n += len(l.Runs)
	}
	out := make([]text.TextRun, 0, n)
	for _, l := range lines {
		out = append(out, l.Runs...)
	}
	return out
}

// RunCount returns the total number of runs across lines
func RunCount(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += len(l.Runs)
	}
	return n
}

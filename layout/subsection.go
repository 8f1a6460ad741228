package layout

import (
	"math"

	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/text"
)

// SplitStrategy identifies how a section was divided into subsections
type SplitStrategy int

const (
	SplitNone SplitStrategy = iota
	SplitByGapStrategy
	SplitByFontWeightStrategy
)

// String returns a string representation of the strategy
func (s SplitStrategy) String() string {
	switch s {
	case SplitByGapStrategy:
		return "gap"
	case SplitByFontWeightStrategy:
		return "font-weight"
	default:
		return "none"
	}
}

// Subsection is one logical entry of a section (one job, one project)
type Subsection struct {
	// Runs are the entry's runs, flattened in order
	Runs []text.TextRun
}

// Text returns the run texts joined with single spaces
func (s Subsection) Text() string {
	return Line{Runs: s.Runs}.Text()
}

// SubsectionConfig holds configuration for subsection splitting
type SubsectionConfig struct {
	// SignificantGap is the rounded baseline gap above which a gap counts
	// towards the running average (default: 5)
	SignificantGap float64

	// GapMultiplier marks a boundary when a gap exceeds this multiple of
	// the running average of significant gaps (default: 1.4)
	GapMultiplier float64

	// BulletGlyphs are excluded as entry headers by the font-weight strategy
	BulletGlyphs []string

	// Weigher decides whether a run's font is bold (default: NameWeigher)
	Weigher text.FontWeigher
}

// DefaultSubsectionConfig returns sensible default configuration
func DefaultSubsectionConfig() SubsectionConfig {
	lex := config.DefaultLexicon()
	return SubsectionConfig{
		SignificantGap: lex.SignificantGap,
		GapMultiplier:  lex.GapMultiplier,
		BulletGlyphs:   lex.BulletGlyphs,
		Weigher:        text.NameWeigher{},
	}
}

// SubsectionSplitter divides a section into per-entry subsections
type SubsectionSplitter struct {
	config SubsectionConfig
}

// NewSubsectionSplitter creates a splitter with default configuration
func NewSubsectionSplitter() *SubsectionSplitter {
	return &SubsectionSplitter{
		config: DefaultSubsectionConfig(),
	}
}

// NewSubsectionSplitterWithConfig creates a splitter with custom configuration
func NewSubsectionSplitterWithConfig(config SubsectionConfig) *SubsectionSplitter {
	if config.Weigher == nil {
		config.Weigher = text.NameWeigher{}
	}
	return &SubsectionSplitter{
		config: config,
	}
}

// Split divides the section's lines by vertical gaps and falls back to
// bold entry headers when the gap strategy finds no boundary. The result
// is never empty for a non-empty section.
func (s *SubsectionSplitter) Split(lines []Line) ([]Subsection, SplitStrategy) {
	if RunCount(lines) == 0 {
		return nil, SplitNone
	}

	subsections := s.SplitByGap(lines)
	if len(subsections) != 1 {
		return subsections, SplitByGapStrategy
	}
	return s.SplitByFontWeight(lines), SplitByFontWeightStrategy
}

// SplitByGap walks consecutive run pairs and opens a new subsection before
// a run whose rounded baseline gap exceeds GapMultiplier times the average
// of the significant gaps seen so far.
func (s *SubsectionSplitter) SplitByGap(lines []Line) []Subsection {
	runs := FlattenRuns(lines)
	if len(runs) == 0 {
		return nil
	}

	subsections := []Subsection{{Runs: []text.TextRun{runs[0]}}}
	var significant int
	var sum float64

	for i := 1; i < len(runs); i++ {
		gap := math.Round(math.Abs(runs[i].Y - runs[i-1].Y))

		if significant > 0 && gap > s.config.GapMultiplier*(sum/float64(significant)) {
			subsections = append(subsections, Subsection{Runs: []text.TextRun{runs[i]}})
		} else {
			last := &subsections[len(subsections)-1]
			last.Runs = append(last.Runs, runs[i])
		}

		if gap > s.config.SignificantGap {
			significant++
			sum += gap
		}
	}

	return subsections
}

// SplitByFontWeight opens a new subsection at a line holding a single bold
// run, when the previous line holds a single non-bold run and the bold run
// is not a bare bullet glyph.
func (s *SubsectionSplitter) SplitByFontWeight(lines []Line) []Subsection {
	var subsections []Subsection

	for i, line := range lines {
		if len(line.Runs) == 0 {
			continue
		}
		if len(subsections) == 0 || (i > 0 && s.opensEntry(lines[i-1], line)) {
			subsections = append(subsections, Subsection{})
		}
		last := &subsections[len(subsections)-1]
		last.Runs = append(last.Runs, line.Runs...)
	}

	return subsections
}

func (s *SubsectionSplitter) opensEntry(prev, cur Line) bool {
	if !prev.IsSingleRun() || !cur.IsSingleRun() {
		return false
	}
	if text.IsBoldRun(s.config.Weigher, prev.Runs[0]) {
		return false
	}
	run := cur.Runs[0]
	return text.IsBoldRun(s.config.Weigher, run) && !isBareGlyph(run.Text, s.config.BulletGlyphs)
}

// SplitSubsections divides lines using the default configuration
func SplitSubsections(lines []Line) []Subsection {
	subsections, _ := NewSubsectionSplitter().Split(lines)
	return subsections
}

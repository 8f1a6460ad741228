// Package layout provides the geometric stages of résumé parsing. It
// includes the Analyzer that chains line assembly and section segmentation
// and hands out the configured splitter and bullet extractor.
package layout

import (
	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/text"
)

// AnalyzerConfig holds configuration options for the layout analyzer.
// Each stage has its own sub-configuration.
type AnalyzerConfig struct {
	// Line assembly configuration
	LineConfig LineConfig

	// Section segmentation configuration
	SectionConfig SectionConfig

	// Subsection splitting configuration
	SubsectionConfig SubsectionConfig

	// Bullet extraction configuration
	BulletConfig BulletConfig
}

// DefaultAnalyzerConfig returns a configuration built from the default lexicon
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfigFromLexicon(config.DefaultLexicon(), nil)
}

// AnalyzerConfigFromLexicon derives every stage configuration from lex.
// A nil weigher selects NameWeigher.
func AnalyzerConfigFromLexicon(lex config.Lexicon, weigher text.FontWeigher) AnalyzerConfig {
	if weigher == nil {
		weigher = text.NameWeigher{}
	}
	return AnalyzerConfig{
		LineConfig: LineConfig{
			Tolerance: lex.LineTolerance,
		},
		SectionConfig: SectionConfig{
			Keywords:    lex.SectionKeywords(),
			DefaultName: lex.DefaultSection,
			Weigher:     weigher,
		},
		SubsectionConfig: SubsectionConfig{
			SignificantGap: lex.SignificantGap,
			GapMultiplier:  lex.GapMultiplier,
			BulletGlyphs:   lex.BulletGlyphs,
			Weigher:        weigher,
		},
		BulletConfig: BulletConfig{
			Glyphs: lex.BulletGlyphs,
		},
	}
}

// AnalysisResult contains the line and section structure of one page
type AnalysisResult struct {
	// Lines are the assembled lines in reading order
	Lines []Line

	// Sections maps section names to their non-heading lines
	Sections *SectionMap
}

// Analyzer chains the layout stages with a shared configuration
type Analyzer struct {
	config    AnalyzerConfig
	lines     *LineAssembler
	segmenter *SectionSegmenter
	splitter  *SubsectionSplitter
	extractor *BulletExtractor
}

// NewAnalyzer creates an analyzer with the default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultAnalyzerConfig())
}

// NewAnalyzerWithConfig creates an analyzer with a custom configuration
func NewAnalyzerWithConfig(config AnalyzerConfig) *Analyzer {
	return &Analyzer{
		config:    config,
		lines:     NewLineAssemblerWithConfig(config.LineConfig),
		segmenter: NewSectionSegmenterWithConfig(config.SectionConfig),
		splitter:  NewSubsectionSplitterWithConfig(config.SubsectionConfig),
		extractor: NewBulletExtractorWithConfig(config.BulletConfig),
	}
}

// Config returns the analyzer configuration
func (a *Analyzer) Config() AnalyzerConfig {
	return a.config
}

// Analyze assembles lines and segments them into sections
func (a *Analyzer) Analyze(runs []text.TextRun) *AnalysisResult {
	lines := a.lines.Assemble(runs)
	return &AnalysisResult{
		Lines:    lines,
		Sections: a.segmenter.Segment(lines),
	}
}

// Lines assembles lines only
func (a *Analyzer) Lines(runs []text.TextRun) []Line {
	return a.lines.Assemble(runs)
}

// Split divides one section's lines into subsections
func (a *Analyzer) Split(lines []Line) ([]Subsection, SplitStrategy) {
	return a.splitter.Split(lines)
}

// Bullets extracts the bullet points of one subsection
func (a *Analyzer) Bullets(sub Subsection) []string {
	return a.extractor.Extract(sub.Runs)
}

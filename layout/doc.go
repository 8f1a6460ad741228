// Package layout provides the geometric stages of résumé parsing: turning
// positioned text runs into lines, sections, per-entry subsections and
// bullet points.
//
// # Layout Analysis
//
// The [Analyzer] chains the stages with one configuration:
//
//	analyzer := layout.NewAnalyzer()
//	result := analyzer.Analyze(runs)
//	lines, ok := result.Sections.Lines("EXPERIENCE")
//	subsections, strategy := analyzer.Split(lines)
//
// # Stages
//
//   - [LineAssembler] - groups runs whose baselines are within a tolerance
//   - [SectionSegmenter] - detects heading lines and buckets the rest by
//     the active heading
//   - [SubsectionSplitter] - divides a section into entries by vertical gap,
//     falling back to bold entry headers
//   - [BulletExtractor] - rebuilds bullet points from runs
//
// # Configuration
//
// Each stage can be configured independently, or all of them can be
// derived from a lexicon:
//
//	lex := config.DefaultLexicon()
//	lex.LineTolerance = 3
//	analyzer := layout.NewAnalyzerWithConfig(layout.AnalyzerConfigFromLexicon(lex, nil))
//
// # Flat Text
//
// [FlatText] and [JoinedText] render assembled lines as plain text for
// consumers that do not need structure.
package layout

package layout

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/text"
)

// keywordHeadingPattern matches heading text made only of ASCII letters,
// whitespace and ampersands
var keywordHeadingPattern = regexp.MustCompile(`^[A-Za-z\s&]+$`)

// Section is a named, contiguous block of lines under one heading
type Section struct {
	// Name is the heading text, stored verbatim
	Name string

	// Lines are the non-heading lines of the section, in order
	Lines []Line
}

// SectionMap maps section names to their lines and remembers the order in
// which sections were discovered. A heading that repeats an earlier name
// appends to the existing section.
type SectionMap struct {
	names []string
	lines map[string][]Line
}

// NewSectionMap creates an empty section map
func NewSectionMap() *SectionMap {
	return &SectionMap{
		lines: make(map[string][]Line),
	}
}

func (m *SectionMap) add(name string, line Line) {
	if _, ok := m.lines[name]; !ok {
		m.names = append(m.names, name)
	}
	m.lines[name] = append(m.lines[name], line)
}

// Names returns the section names in discovery order
func (m *SectionMap) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Lines returns the lines of the named section
func (m *SectionMap) Lines(name string) ([]Line, bool) {
	if m == nil {
		return nil, false
	}
	lines, ok := m.lines[name]
	return lines, ok
}

// Len returns the number of sections
func (m *SectionMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Sections returns every section in discovery order
func (m *SectionMap) Sections() []Section {
	if m == nil {
		return nil
	}
	out := make([]Section, 0, len(m.names))
	for _, name := range m.names {
		out = append(out, Section{Name: name, Lines: m.lines[name]})
	}
	return out
}

// SectionConfig holds configuration for section segmentation
type SectionConfig struct {
	// Keywords is the vocabulary that marks a single-run line as a heading
	// when it is written in letters only and starts upper case
	Keywords []string

	// DefaultName is the section collecting lines before the first heading
	// (default: "PROFILE")
	DefaultName string

	// Weigher decides whether a run's font is bold (default: NameWeigher)
	Weigher text.FontWeigher

	// RequireLetter makes the bold upper-case rule ignore runs without a
	// letter, such as bold date ranges or bare glyphs (default: false)
	RequireLetter bool
}

// DefaultSectionConfig returns sensible default configuration
func DefaultSectionConfig() SectionConfig {
	lex := config.DefaultLexicon()
	return SectionConfig{
		Keywords:    lex.SectionKeywords(),
		DefaultName: lex.DefaultSection,
		Weigher:     text.NameWeigher{},
	}
}

// SectionSegmenter buckets lines under the most recent heading
type SectionSegmenter struct {
	config SectionConfig
}

// NewSectionSegmenter creates a new segmenter with default configuration
func NewSectionSegmenter() *SectionSegmenter {
	return &SectionSegmenter{
		config: DefaultSectionConfig(),
	}
}

// NewSectionSegmenterWithConfig creates a segmenter with custom configuration
func NewSectionSegmenterWithConfig(config SectionConfig) *SectionSegmenter {
	if config.Weigher == nil {
		config.Weigher = text.NameWeigher{}
	}
	return &SectionSegmenter{
		config: config,
	}
}

// Segment walks lines in order. A heading line switches the current
// section to the heading's text and is dropped; every other line is
// appended to the current section.
func (s *SectionSegmenter) Segment(lines []Line) *SectionMap {
	sections := NewSectionMap()
	current := s.config.DefaultName

	for _, line := range lines {
		if s.IsHeading(line) {
			current = line.Runs[0].Text
			continue
		}
		sections.add(current, line)
	}

	return sections
}

// IsHeading reports whether a line is a section heading. The line must
// hold exactly one run, which is either bold and upper case, or made of
// letters only, capitalised, and contains a section keyword. Text without
// cased letters counts as upper case, so a bold "2020 – 2022" is a heading
// unless RequireLetter is set.
func (s *SectionSegmenter) IsHeading(line Line) bool {
	if !line.IsSingleRun() {
		return false
	}
	run := line.Runs[0]

	if text.IsBoldRun(s.config.Weigher, run) && run.IsUpper() {
		if !s.config.RequireLetter || hasLetter(run.Text) {
			return true
		}
	}

	if !keywordHeadingPattern.MatchString(run.Text) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(run.Text)
	if !unicode.IsUpper(first) {
		return false
	}
	return config.ContainsFold(run.Text, s.config.Keywords...)
}

// SegmentSections buckets lines into sections using the default configuration
func SegmentSections(lines []Line) *SectionMap {
	return NewSectionSegmenter().Segment(lines)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

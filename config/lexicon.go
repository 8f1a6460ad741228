package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrInvalidLexicon is returned when a lexicon fails validation
var ErrInvalidLexicon = errors.New("vitae: invalid lexicon")

// MatchMode controls how section keyword lookup resolves several matches
type MatchMode int

const (
	// MatchLast lets every matching keyword overwrite the previous
	// selection, so the last keyword in priority order that matches wins.
	MatchLast MatchMode = iota
	// MatchFirst stops at the first keyword that matches any section.
	MatchFirst
)

// String returns a string representation of the match mode
func (m MatchMode) String() string {
	switch m {
	case MatchLast:
		return "last"
	case MatchFirst:
		return "first"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (m MatchMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *MatchMode) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "last", "":
		*m = MatchLast
	case "first":
		*m = MatchFirst
	default:
		return fmt.Errorf("%w: unknown section match mode %q", ErrInvalidLexicon, string(b))
	}
	return nil
}

// Lexicon is the vocabulary and threshold set driving the parser
type Lexicon struct {
	// BulletGlyphs are the strings that open a bullet point
	BulletGlyphs []string `yaml:"bullet_glyphs" json:"bullet_glyphs"`

	// Months are full month names; a 4-letter prefix also matches
	Months []string `yaml:"months" json:"months"`

	// Seasons are season names used by date scoring
	Seasons []string `yaml:"seasons" json:"seasons"`

	// JobTitles is the job-title lexicon, matched per word ignoring case
	JobTitles []string `yaml:"job_titles" json:"job_titles"`

	// PrimarySectionKeywords and SecondarySectionKeywords together form the
	// vocabulary that turns a single-run line into a section heading
	PrimarySectionKeywords   []string `yaml:"primary_section_keywords" json:"primary_section_keywords"`
	SecondarySectionKeywords []string `yaml:"secondary_section_keywords" json:"secondary_section_keywords"`

	// WorkKeywords is the priority list used to find the work section
	WorkKeywords []string `yaml:"work_keywords" json:"work_keywords"`

	// ProjectKeywords is the priority list used to find the project section
	ProjectKeywords []string `yaml:"project_keywords" json:"project_keywords"`

	// DefaultSection names the section collecting lines before any heading
	DefaultSection string `yaml:"default_section" json:"default_section"`

	// LineTolerance is the maximum baseline distance (exclusive) for two
	// runs to share a line (default: 5)
	LineTolerance float64 `yaml:"line_tolerance" json:"line_tolerance"`

	// SignificantGap is the minimum rounded gap (exclusive) that counts
	// towards the running average of subsection gaps (default: 5)
	SignificantGap float64 `yaml:"significant_gap" json:"significant_gap"`

	// GapMultiplier is the factor over the running average that marks a
	// subsection boundary (default: 1.4)
	GapMultiplier float64 `yaml:"gap_multiplier" json:"gap_multiplier"`

	// MaxWords is the word count above which title-like fields are
	// penalised (default: 5)
	MaxWords int `yaml:"max_words" json:"max_words"`

	// SectionMatch selects last-match-wins or first-match-wins lookup
	SectionMatch MatchMode `yaml:"section_match" json:"section_match"`
}

// DefaultLexicon returns the English lexicon with the calibrated thresholds
func DefaultLexicon() Lexicon {
	return Lexicon{
		BulletGlyphs: []string{
			"⋅", "∙", "🞄", "•", "⦁", "⚫︎", "●", "⬤", "⚬", "○",
		},
		Months: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		Seasons: []string{"Summer", "Fall", "Spring", "Winter"},
		JobTitles: []string{
			"Accountant", "Administrator", "Advisor", "Agent", "Analyst",
			"Apprentice", "Architect", "Assistant", "Associate", "Auditor",
			"Bartender", "Biologist", "Bookkeeper", "Buyer", "Carpenter",
			"Cashier", "CEO", "Clerk", "Co-op", "Co-Founder", "Consultant",
			"Coordinator", "CTO", "Developer", "Designer", "Director",
			"Driver", "Editor", "Electrician", "Engineer", "Extern",
			"Founder", "Freelancer", "Head", "Intern", "Janitor",
			"Journalist", "Laborer", "Lawyer", "Lead", "Manager", "Mechanic",
			"Member", "Nurse", "Officer", "Operator", "Operation",
			"Photographer", "President", "Producer", "Recruiter",
			"Representative", "Researcher", "Sales", "Server", "Scientist",
			"Specialist", "Supervisor", "Teacher", "Technician", "Trader",
			"Trainee", "Treasurer", "Tutor", "Vice", "VP", "Volunteer",
			"Webmaster", "Worker",
		},
		PrimarySectionKeywords: []string{
			"work", "experience", "education", "project", "skill",
		},
		SecondarySectionKeywords: []string{
			"job", "course", "extracurricular", "objective", "summary",
			"award", "honor",
		},
		WorkKeywords:    []string{"work", "experience", "employment", "history", "job"},
		ProjectKeywords: []string{"project"},
		DefaultSection:  "PROFILE",
		LineTolerance:   5,
		SignificantGap:  5,
		GapMultiplier:   1.4,
		MaxWords:        5,
		SectionMatch:    MatchLast,
	}
}

// Validate checks the lexicon for values the pipeline cannot work with
func (l Lexicon) Validate() error {
	switch {
	case len(l.BulletGlyphs) == 0:
		return fmt.Errorf("%w: no bullet glyphs", ErrInvalidLexicon)
	case l.LineTolerance <= 0:
		return fmt.Errorf("%w: line tolerance must be positive, got %v", ErrInvalidLexicon, l.LineTolerance)
	case l.SignificantGap < 0:
		return fmt.Errorf("%w: significant gap must not be negative, got %v", ErrInvalidLexicon, l.SignificantGap)
	case l.GapMultiplier <= 0:
		return fmt.Errorf("%w: gap multiplier must be positive, got %v", ErrInvalidLexicon, l.GapMultiplier)
	case l.MaxWords <= 0:
		return fmt.Errorf("%w: max words must be positive, got %d", ErrInvalidLexicon, l.MaxWords)
	case l.SectionMatch != MatchLast && l.SectionMatch != MatchFirst:
		return fmt.Errorf("%w: unknown section match mode %d", ErrInvalidLexicon, l.SectionMatch)
	}
	for _, g := range l.BulletGlyphs {
		if g == "" {
			return fmt.Errorf("%w: empty bullet glyph", ErrInvalidLexicon)
		}
	}
	return nil
}

// Clone returns a deep copy of the lexicon
func (l Lexicon) Clone() Lexicon {
	c := l
	c.BulletGlyphs = cloneStrings(l.BulletGlyphs)
	c.Months = cloneStrings(l.Months)
	c.Seasons = cloneStrings(l.Seasons)
	c.JobTitles = cloneStrings(l.JobTitles)
	c.PrimarySectionKeywords = cloneStrings(l.PrimarySectionKeywords)
	c.SecondarySectionKeywords = cloneStrings(l.SecondarySectionKeywords)
	c.WorkKeywords = cloneStrings(l.WorkKeywords)
	c.ProjectKeywords = cloneStrings(l.ProjectKeywords)
	return c
}

// SectionKeywords returns the primary and secondary heading vocabulary
func (l Lexicon) SectionKeywords() []string {
	out := make([]string, 0, len(l.PrimarySectionKeywords)+len(l.SecondarySectionKeywords))
	out = append(out, l.PrimarySectionKeywords...)
	return append(out, l.SecondarySectionKeywords...)
}

// ContainsMonth reports whether s contains a month name or the first four
// letters of one. Matching is case-sensitive.
func (l Lexicon) ContainsMonth(s string) bool {
	for _, m := range l.Months {
		if m == "" {
			continue
		}
		if strings.Contains(s, m) || strings.Contains(s, prefix(m, 4)) {
			return true
		}
	}
	return false
}

// ContainsSeason reports whether s contains a season name
func (l Lexicon) ContainsSeason(s string) bool {
	for _, season := range l.Seasons {
		if season != "" && strings.Contains(s, season) {
			return true
		}
	}
	return false
}

// HasJobTitleWord reports whether any whitespace-delimited word of s equals
// a job-title lexicon entry, ignoring case
func (l Lexicon) HasJobTitleWord(s string) bool {
	if len(l.JobTitles) == 0 {
		return false
	}
	folder := cases.Fold()
	titles := make(map[string]struct{}, len(l.JobTitles))
	for _, t := range l.JobTitles {
		titles[folder.String(t)] = struct{}{}
	}
	for _, w := range strings.Fields(s) {
		if _, ok := titles[folder.String(w)]; ok {
			return true
		}
	}
	return false
}

// HasSectionKeyword reports whether s contains a section keyword, ignoring case
func (l Lexicon) HasSectionKeyword(s string) bool {
	return ContainsFold(s, l.SectionKeywords()...)
}

// ContainsFold reports whether s contains any of the substrings, compared
// under Unicode case folding
func ContainsFold(s string, substrs ...string) bool {
	folder := cases.Fold()
	folded := folder.String(s)
	for _, sub := range substrs {
		if sub == "" {
			continue
		}
		if strings.Contains(folded, folder.String(sub)) {
			return true
		}
	}
	return false
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

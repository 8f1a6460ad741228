package scoring

import (
	"regexp"

	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/text"
)

var (
	lettersOnlyPattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
	yearPattern        = regexp.MustCompile(`(?:19|20)\d{2}`)
	presentPattern     = regexp.MustCompile(`(?i)present`)
)

// HasMoreWordsThan matches runs with more than n whitespace-delimited words
func HasMoreWordsThan(n int) Predicate {
	return func(r text.TextRun) bool {
		return r.WordCount() > n
	}
}

// HasDigit matches runs containing a decimal digit
func HasDigit(r text.TextRun) bool {
	return r.HasDigit()
}

// HasLettersOnly matches runs made only of ASCII letters and whitespace
func HasLettersOnly(r text.TextRun) bool {
	return lettersOnlyPattern.MatchString(r.Text)
}

// HasYear matches runs containing a year from 1900 to 2099
func HasYear(r text.TextRun) bool {
	return yearPattern.MatchString(r.Text)
}

// HasPresent matches runs containing "present" in any case
func HasPresent(r text.TextRun) bool {
	return presentPattern.MatchString(r.Text)
}

// Equals matches runs whose text equals s exactly. An empty s never matches.
func Equals(s string) Predicate {
	return func(r text.TextRun) bool {
		return s != "" && r.Text == s
	}
}

// JobTitleFeatures scores job-title candidates
func JobTitleFeatures(lex config.Lexicon) []Feature {
	return []Feature{
		{Name: "job-title-word", Match: func(r text.TextRun) bool { return lex.HasJobTitleWord(r.Text) }, Weight: 10},
		{Name: "too-many-words", Match: HasMoreWordsThan(lex.MaxWords), Weight: -3},
		{Name: "has-digit", Match: HasDigit, Weight: -5},
	}
}

// DateFeatures scores date candidates. Every matching signal adds one
// point, so compound date strings accumulate score.
func DateFeatures(lex config.Lexicon) []Feature {
	return []Feature{
		{Name: "month", Match: func(r text.TextRun) bool { return lex.ContainsMonth(r.Text) }, Weight: 1},
		{Name: "season", Match: func(r text.TextRun) bool { return lex.ContainsSeason(r.Text) }, Weight: 1},
		{Name: "present", Match: HasPresent, Weight: 1},
		{Name: "year", Match: HasYear, Weight: 1},
	}
}

// CompanyFeatures scores company candidates against the already chosen
// job title and date texts
func CompanyFeatures(lex config.Lexicon, jobTitle, date string) []Feature {
	return []Feature{
		{Name: "too-many-words", Match: HasMoreWordsThan(lex.MaxWords), Weight: -10},
		{Name: "letters-only", Match: HasLettersOnly, Weight: 10},
		{Name: "is-date", Match: Equals(date), Weight: -5},
		{Name: "is-job-title", Match: Equals(jobTitle), Weight: -10},
		{Name: "month", Match: func(r text.TextRun) bool { return lex.ContainsMonth(r.Text) }, Weight: -5},
	}
}

// ProjectTitleFeatures scores project-title candidates
func ProjectTitleFeatures(lex config.Lexicon) []Feature {
	return []Feature{
		{Name: "too-many-words", Match: HasMoreWordsThan(lex.MaxWords), Weight: -5},
		{Name: "has-digit", Match: HasDigit, Weight: -5},
		{Name: "letters-only", Match: HasLettersOnly, Weight: 10},
	}
}

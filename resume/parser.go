package resume

import (
	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/layout"
	"github.com/tsawler/vitae/model"
	"github.com/tsawler/vitae/scoring"
	"github.com/tsawler/vitae/text"
)

const (
	workSection    = "work experience"
	projectSection = "projects"
)

// Result is the outcome of parsing one page
type Result struct {
	// Document holds the structured entries
	Document *model.ResumeDocument

	// Lines are the assembled lines of the page
	Lines []layout.Line

	// Sections are the segmented sections of the page
	Sections *layout.SectionMap

	// Advisories lists the locally degraded parts of the result
	Advisories []Advisory
}

// Parser extracts work experience and projects from positioned runs
type Parser struct {
	lex      config.Lexicon
	analyzer *layout.Analyzer
}

// NewParser creates a parser with the default lexicon
func NewParser() *Parser {
	return NewParserWithLexicon(config.DefaultLexicon(), nil)
}

// NewParserWithLexicon creates a parser with a custom lexicon and font
// weigher. A nil weigher selects text.NameWeigher.
func NewParserWithLexicon(lex config.Lexicon, weigher text.FontWeigher) *Parser {
	return &Parser{
		lex:      lex,
		analyzer: layout.NewAnalyzerWithConfig(layout.AnalyzerConfigFromLexicon(lex, weigher)),
	}
}

// Lexicon returns the parser's lexicon
func (p *Parser) Lexicon() config.Lexicon {
	return p.lex.Clone()
}

// Analyzer returns the layout analyzer used by the parser
func (p *Parser) Analyzer() *layout.Analyzer {
	return p.analyzer
}

// Parse runs the whole pipeline over one page's runs
func (p *Parser) Parse(runs []text.TextRun) *Result {
	analysis := p.analyzer.Analyze(runs)
	res := &Result{
		Document: model.NewResumeDocument(),
		Lines:    analysis.Lines,
		Sections: analysis.Sections,
	}

	if len(analysis.Lines) == 0 {
		res.Advisories = append(res.Advisories, Advisory{Code: AdvisoryEmptyPage, Entry: -1})
		return res
	}

	work, advisories := p.ExtractWorkExperience(analysis.Sections)
	res.Document.WorkExperience = work
	res.Advisories = append(res.Advisories, advisories...)

	projects, advisories := p.ExtractProjects(analysis.Sections)
	res.Document.Projects = projects
	res.Advisories = append(res.Advisories, advisories...)

	res.Document.Normalize()
	return res
}

// ExtractWorkExperience builds one entry per subsection of the work section
func (p *Parser) ExtractWorkExperience(sections *layout.SectionMap) ([]model.WorkExperienceEntry, []Advisory) {
	name, lines, ok := FindSection(sections, p.lex.WorkKeywords, p.lex.SectionMatch)
	if !ok {
		return []model.WorkExperienceEntry{}, []Advisory{{Code: AdvisorySectionNotFound, Section: workSection, Entry: -1}}
	}

	subsections, _ := p.analyzer.Split(lines)
	entries := make([]model.WorkExperienceEntry, 0, len(subsections))
	var advisories []Advisory

	for i, sub := range subsections {
		title := scoring.Evaluate(sub.Runs, scoring.JobTitleFeatures(p.lex))
		date := scoring.Evaluate(sub.Runs, scoring.DateFeatures(p.lex))
		company := scoring.Evaluate(sub.Runs, scoring.CompanyFeatures(p.lex, title.Text(), date.Text()))

		entries = append(entries, model.WorkExperienceEntry{
			JobTitle: title.Text(),
			Date:     date.Text(),
			Company:  company.Text(),
			Bullets:  p.analyzer.Bullets(sub),
		})

		advisories = appendUnresolved(advisories, name, i, map[string]scoring.Result{
			"job title": title,
			"date":      date,
			"company":   company,
		}, "job title", "date", "company")
	}

	return entries, advisories
}

// ExtractProjects builds one entry per subsection of the project section
func (p *Parser) ExtractProjects(sections *layout.SectionMap) ([]model.ProjectEntry, []Advisory) {
	name, lines, ok := FindSection(sections, p.lex.ProjectKeywords, p.lex.SectionMatch)
	if !ok {
		return []model.ProjectEntry{}, []Advisory{{Code: AdvisorySectionNotFound, Section: projectSection, Entry: -1}}
	}

	subsections, _ := p.analyzer.Split(lines)
	entries := make([]model.ProjectEntry, 0, len(subsections))
	var advisories []Advisory

	for i, sub := range subsections {
		title := scoring.Evaluate(sub.Runs, scoring.ProjectTitleFeatures(p.lex))
		date := scoring.Evaluate(sub.Runs, scoring.DateFeatures(p.lex))

		entries = append(entries, model.ProjectEntry{
			Title:   title.Text(),
			Date:    date.Text(),
			Bullets: p.analyzer.Bullets(sub),
		})

		advisories = appendUnresolved(advisories, name, i, map[string]scoring.Result{
			"title": title,
			"date":  date,
		}, "title", "date")
	}

	return entries, advisories
}

// appendUnresolved adds a field advisory for every unresolved result, in
// the given field order
func appendUnresolved(advisories []Advisory, section string, entry int, results map[string]scoring.Result, order ...string) []Advisory {
	for _, field := range order {
		if !results[field].Found() {
			advisories = append(advisories, Advisory{
				Code:    AdvisoryFieldUnresolved,
				Section: section,
				Entry:   entry,
				Field:   field,
			})
		}
	}
	return advisories
}

// Parse parses runs with the default lexicon and returns the document
func Parse(runs []text.TextRun) *model.ResumeDocument {
	return NewParser().Parse(runs).Document
}

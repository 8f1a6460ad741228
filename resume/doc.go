// Package resume composes the layout and scoring stages into structured
// résumé records.
//
// [Parser.Parse] is a pure, synchronous transformation of one page's runs:
//
//	p := resume.NewParser()
//	res := p.Parse(runs)
//	for _, job := range res.Document.WorkExperience {
//	    fmt.Println(job.JobTitle, job.Company, job.Date)
//	}
//
// A Parser holds no mutable state and may be shared between goroutines.
//
// Failures degrade locally. An empty page yields an empty document, a
// missing section yields no entries for that section, and an unresolved
// field is left blank. Each case is reported as an [Advisory] next to the
// document rather than as an error.
package resume

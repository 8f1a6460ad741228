// Package model provides the structured résumé records produced by the
// parser.
//
// All parsing ultimately produces a [ResumeDocument]:
//
//	doc := model.NewResumeDocument()
//	doc.WorkExperience = append(doc.WorkExperience, model.WorkExperienceEntry{
//	    JobTitle: "Software Engineer",
//	    Company:  "Acme Corp",
//	})
//
// A field the parser could not resolve is an empty string; the record is
// still present with its other fields populated. Entry and bullet lists are
// never nil after [ResumeDocument.Normalize], so JSON output always carries
// arrays.
package model

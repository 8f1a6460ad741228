// Package scoring selects the best text run for a structured résumé field.
//
// Scoring rules are plain data: a list of [Feature] values, each pairing a
// predicate over a run with a weight. [Score] sums the weights of every
// matching predicate per candidate and returns the highest-scoring run,
// preferring the earliest run on ties. When no candidate scores above zero
// a blank run with score 0 is returned, so a missing signal yields an empty
// field rather than a low-confidence guess.
//
//	title, _ := scoring.Score(runs, scoring.JobTitleFeatures(lex))
//	date, _ := scoring.Score(runs, scoring.DateFeatures(lex))
//	company, _ := scoring.Score(runs, scoring.CompanyFeatures(lex, title.Text, date.Text))
//
// Company scoring depends on the already chosen job title and date, so
// those fields must be resolved first.
package scoring

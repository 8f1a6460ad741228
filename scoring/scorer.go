package scoring

import "github.com/tsawler/vitae/text"

// Predicate is a boolean rule over a text run
type Predicate func(run text.TextRun) bool

// Feature pairs a predicate with the weight it contributes when true
type Feature struct {
	// Name identifies the feature in debugging output
	Name string

	// Match is the predicate
	Match Predicate

	// Weight is added to the candidate's score when Match returns true
	Weight float64
}

// Result is the outcome of scoring a set of candidates
type Result struct {
	// Run is the winning run, or a blank run when nothing scored above 0
	Run text.TextRun

	// Score is the winning score (0 for the blank placeholder)
	Score float64

	// Index is the position of the winning run among the candidates, or
	// -1 for the blank placeholder
	Index int
}

// Found reports whether a candidate scored above zero
func (r Result) Found() bool {
	return r.Index >= 0
}

// Text returns the winning run's text
func (r Result) Text() string {
	return r.Run.Text
}

// Score returns the candidate with the highest total feature weight.
// Ties go to the earliest candidate. When the best score is not positive a
// blank run with score 0 is returned.
func Score(candidates []text.TextRun, features []Feature) (text.TextRun, float64) {
	res := Evaluate(candidates, features)
	return res.Run, res.Score
}

// Evaluate is Score with the winning index reported
func Evaluate(candidates []text.TextRun, features []Feature) Result {
	best := -1
	var bestScore float64

	for i, c := range candidates {
		s := RunScore(c, features)
		if best < 0 || s > bestScore {
			best = i
			bestScore = s
		}
	}

	if best < 0 || bestScore <= 0 {
		return Result{Run: text.TextRun{}, Score: 0, Index: -1}
	}
	return Result{Run: candidates[best], Score: bestScore, Index: best}
}

// RunScore sums the weights of every feature matching run
func RunScore(run text.TextRun, features []Feature) float64 {
	var total float64
	for _, f := range features {
		if f.Match != nil && f.Match(run) {
			total += f.Weight
		}
	}
	return total
}

package vitae

import (
	"io"
	"log/slog"

	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/text"
)

// ExtractOptions holds configuration for résumé extraction.
type ExtractOptions struct {
	// Vocabulary and thresholds (nil means config.DefaultLexicon)
	lexicon *config.Lexicon

	// Font weight detection (nil means text.NameWeigher)
	weigher text.FontWeigher

	// Overrides applied on top of the lexicon
	lineTolerance float64
	firstMatch    bool

	// Text output
	joinLines bool

	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		lexicon:       nil,
		weigher:       nil,
		lineTolerance: 0,
		firstMatch:    false,
		joinLines:     false,
		logger:        nil,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		weigher:       o.weigher,
		lineTolerance: o.lineTolerance,
		firstMatch:    o.firstMatch,
		joinLines:     o.joinLines,
		logger:        o.logger,
	}

	if o.lexicon != nil {
		lex := o.lexicon.Clone()
		newOpts.lexicon = &lex
	}

	return newOpts
}

// resolveLexicon returns the lexicon with option overrides applied.
func (o ExtractOptions) resolveLexicon() (config.Lexicon, error) {
	lex := config.DefaultLexicon()
	if o.lexicon != nil {
		lex = o.lexicon.Clone()
	}
	if o.lineTolerance > 0 {
		lex.LineTolerance = o.lineTolerance
	}
	if o.firstMatch {
		lex.SectionMatch = config.MatchFirst
	}
	if err := lex.Validate(); err != nil {
		return config.Lexicon{}, err
	}
	return lex, nil
}

// log returns the configured logger or one that discards everything.
func (o ExtractOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

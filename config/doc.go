// Package config holds the injectable configuration of the résumé parser
// and of the commands built on top of it.
//
// # Lexicon
//
// Every vocabulary and threshold used by the parsing pipeline lives in a
// [Lexicon] value rather than in package-level data: bullet glyphs, month
// and season names, the job-title lexicon, the section keyword vocabulary,
// the keyword priority lists used to locate the work and project sections,
// and the unit-less coordinate thresholds.
//
//	lex := config.DefaultLexicon()
//	lex.JobTitles = append(lex.JobTitles, "Ingenieur")
//	lex.LineTolerance = 3
//
// A lexicon can also be loaded from YAML. The file is validated against an
// embedded JSON Schema and overlaid on top of the defaults, so only the keys
// present in the file are replaced:
//
//	lex, err := config.LoadLexicon("lexicon.yaml")
//
// # Settings
//
// [LoadSettings] reads command settings from the environment, optionally
// from a .env file in the working directory.
package config

package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon_Valid(t *testing.T) {
	lex := DefaultLexicon()
	require.NoError(t, lex.Validate())
	assert.Equal(t, "PROFILE", lex.DefaultSection)
	assert.Equal(t, 5.0, lex.LineTolerance)
	assert.Equal(t, 1.4, lex.GapMultiplier)
	assert.Equal(t, MatchLast, lex.SectionMatch)
	assert.Equal(t, []string{"work", "experience", "employment", "history", "job"}, lex.WorkKeywords)
	assert.Len(t, lex.SectionKeywords(), len(lex.PrimarySectionKeywords)+len(lex.SecondarySectionKeywords))
}

func TestParseLexicon_Overlay(t *testing.T) {
	lex, err := ParseLexicon([]byte(`
job_titles: [Sommelier, Curator]
default_section: INTRO
gap_multiplier: 2
section_match: first
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Sommelier", "Curator"}, lex.JobTitles)
	assert.Equal(t, "INTRO", lex.DefaultSection)
	assert.Equal(t, 2.0, lex.GapMultiplier)
	assert.Equal(t, MatchFirst, lex.SectionMatch)

	// untouched keys keep their defaults
	def := DefaultLexicon()
	assert.Equal(t, def.Months, lex.Months)
	assert.Equal(t, def.BulletGlyphs, lex.BulletGlyphs)
	assert.Equal(t, def.LineTolerance, lex.LineTolerance)
}

func TestParseLexicon_Empty(t *testing.T) {
	lex, err := ParseLexicon([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLexicon(), lex)
}

func TestParseLexicon_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "bullets: [x]"},
		{"empty glyph list", "bullet_glyphs: []"},
		{"empty glyph", `bullet_glyphs: [""]`},
		{"zero tolerance", "line_tolerance: 0"},
		{"negative gap", "significant_gap: -1"},
		{"fractional max words", "max_words: 2.5"},
		{"unknown match mode", "section_match: middle"},
		{"wrong type", "months: January"},
		{"not yaml", "job_titles: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLexicon([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLexicon)
		})
	}
}

func TestLoadLexicon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project_keywords: [project, portfolio]\n"), 0o600))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"project", "portfolio"}, lex.ProjectKeywords)

	_, err = LoadLexicon(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLexicon_Validate(t *testing.T) {
	lex := DefaultLexicon()
	lex.MaxWords = 0
	assert.ErrorIs(t, lex.Validate(), ErrInvalidLexicon)

	lex = DefaultLexicon()
	lex.SectionMatch = MatchMode(7)
	assert.ErrorIs(t, lex.Validate(), ErrInvalidLexicon)
}

func TestLexicon_Clone(t *testing.T) {
	lex := DefaultLexicon()
	c := lex.Clone()
	c.JobTitles[0] = "Changed"
	c.BulletGlyphs = append(c.BulletGlyphs, "-")

	assert.Equal(t, "Accountant", lex.JobTitles[0])
	assert.NotContains(t, lex.BulletGlyphs, "-")
}

func TestLexicon_Matchers(t *testing.T) {
	lex := DefaultLexicon()

	assert.True(t, lex.ContainsMonth("Sept 2019"))
	assert.True(t, lex.ContainsMonth("May 2020"))
	assert.False(t, lex.ContainsMonth("Jun 2023"))
	assert.False(t, lex.ContainsMonth("september"))

	assert.True(t, lex.ContainsSeason("Fall 2021"))
	assert.False(t, lex.ContainsSeason("autumn"))

	assert.True(t, lex.HasJobTitleWord("senior ENGINEER"))
	assert.False(t, lex.HasJobTitleWord("Engineering Lead-ish"))
	assert.True(t, lex.HasJobTitleWord("Co-op Student"))

	assert.True(t, lex.HasSectionKeyword("Technical Skills"))
	assert.False(t, lex.HasSectionKeyword("Hobbies"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("WORK EXPERIENCE", "experience"))
	assert.False(t, ContainsFold("Education", "work", ""))
	assert.False(t, ContainsFold("anything"))
}

func TestMatchMode_Text(t *testing.T) {
	var m MatchMode
	require.NoError(t, m.UnmarshalText([]byte("First")))
	assert.Equal(t, MatchFirst, m)
	require.NoError(t, m.UnmarshalText([]byte("")))
	assert.Equal(t, MatchLast, m)
	assert.ErrorIs(t, m.UnmarshalText([]byte("both")), ErrInvalidLexicon)

	b, err := MatchFirst.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))
	assert.Equal(t, "unknown", MatchMode(9).String())
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("VITAE_ADDR", ":9999")
	t.Setenv("VITAE_LEXICON", "/tmp/lex.yaml")
	t.Setenv("VITAE_LOG_LEVEL", "debug")
	t.Setenv("VITAE_LOG_FORMAT", "text")
	t.Setenv("VITAE_MAX_UPLOAD_MB", "not-a-number")

	s := LoadSettings()
	assert.Equal(t, ":9999", s.Addr)
	assert.Equal(t, "/tmp/lex.yaml", s.LexiconPath)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
	assert.Equal(t, 16, s.MaxUploadMB)
}

func TestSettings_Lexicon(t *testing.T) {
	lex, err := Settings{}.Lexicon()
	require.NoError(t, err)
	assert.Equal(t, DefaultLexicon(), lex)

	_, err = Settings{LexiconPath: filepath.Join(t.TempDir(), "none.yaml")}.Lexicon()
	assert.Error(t, err)
}

func TestSettings_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := Settings{LogLevel: "warn", LogFormat: "json"}.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	Settings{LogFormat: "TEXT"}.NewLogger(&buf).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/vitae/text"
)

// glyphs lays out s one character per glyph starting at x, 6 units apart.
func glyphs(s string, x, y float64, font string) []Glyph {
	out := make([]Glyph, 0, len(s))
	for _, r := range s {
		out = append(out, Glyph{Text: string(r), X: x, Y: y, Width: 6, FontName: font, FontSize: 12})
		x += 6
	}
	return out
}

func texts(runs []text.TextRun) []string {
	return text.Texts(runs)
}

func TestMergeGlyphs_SingleWord(t *testing.T) {
	runs := MergeGlyphs(glyphs("Acme", 72, 700, "Helvetica"), DefaultMergeConfig())

	require.Len(t, runs, 1)
	assert.Equal(t, "Acme", runs[0].Text)
	assert.Equal(t, 72.0, runs[0].X)
	assert.Equal(t, 700.0, runs[0].Y)
	assert.Equal(t, 24.0, runs[0].Width)
	assert.Equal(t, "Helvetica", runs[0].FontName)
	assert.Equal(t, 0, runs[0].Order)
}

func TestMergeGlyphs_SpaceGlyphs(t *testing.T) {
	runs := MergeGlyphs(glyphs("Acme  Corp ", 72, 700, "Helvetica"), DefaultMergeConfig())

	require.Len(t, runs, 1)
	assert.Equal(t, "Acme Corp", runs[0].Text)
}

func TestMergeGlyphs_GapInsertsSpace(t *testing.T) {
	in := append(glyphs("Acme", 72, 700, "F"), glyphs("Corp", 72+24+4, 700, "F")...)

	runs := MergeGlyphs(in, DefaultMergeConfig())

	require.Len(t, runs, 1)
	assert.Equal(t, "Acme Corp", runs[0].Text)
}

func TestMergeGlyphs_Breaks(t *testing.T) {
	tests := []struct {
		name   string
		glyphs []Glyph
		want   []string
	}{
		{
			name:   "font change",
			glyphs: append(glyphs("Engineer", 72, 700, "F-Bold"), glyphs("Acme", 72+48, 700, "F")...),
			want:   []string{"Engineer", "Acme"},
		},
		{
			name:   "baseline change",
			glyphs: append(glyphs("Line", 72, 700, "F"), glyphs("Next", 72+24, 686, "F")...),
			want:   []string{"Line", "Next"},
		},
		{
			name:   "wide gap",
			glyphs: append(glyphs("Acme", 72, 700, "F"), glyphs("2020", 400, 700, "F")...),
			want:   []string{"Acme", "2020"},
		},
		{
			name:   "backwards jump",
			glyphs: append(glyphs("Right", 300, 700, "F"), glyphs("Left", 72, 700, "F")...),
			want:   []string{"Right", "Left"},
		},
		{
			name:   "baseline jitter stays joined",
			glyphs: append(glyphs("Ac", 72, 700, "F"), glyphs("me", 84, 700.4, "F")...),
			want:   []string{"Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := MergeGlyphs(tt.glyphs, DefaultMergeConfig())
			assert.Equal(t, tt.want, texts(runs))
			for i, r := range runs {
				assert.Equal(t, i, r.Order)
			}
		})
	}
}

func TestMergeGlyphs_DropsEmptyAndBlank(t *testing.T) {
	in := []Glyph{
		{Text: "", X: 10, Y: 700, FontName: "F", FontSize: 12},
		{Text: " ", X: 10, Y: 700, Width: 3, FontName: "F", FontSize: 12},
	}
	in = append(in, glyphs("x", 72, 650, "F")...)
	in = append(in, Glyph{Text: " ", X: 72, Y: 600, Width: 3, FontName: "F", FontSize: 12})

	runs := MergeGlyphs(in, DefaultMergeConfig())

	assert.Equal(t, []string{"x"}, texts(runs))
}

func TestMergeGlyphs_NormalizesLigatures(t *testing.T) {
	in := []Glyph{
		{Text: "ﬁ", X: 72, Y: 700, Width: 6, FontName: "F", FontSize: 12},
		{Text: "rm", X: 78, Y: 700, Width: 12, FontName: "F", FontSize: 12},
	}

	runs := MergeGlyphs(in, DefaultMergeConfig())

	require.Len(t, runs, 1)
	assert.Equal(t, "firm", runs[0].Text)
}

func TestMergeGlyphs_DefaultFontSize(t *testing.T) {
	in := []Glyph{
		{Text: "a", X: 0, Y: 0, Width: 1, FontName: "F"},
		{Text: "b", X: 100, Y: 0, Width: 1, FontName: "F"},
	}

	runs := MergeGlyphs(in, DefaultMergeConfig())

	assert.Equal(t, []string{"a", "b"}, texts(runs), "gap of 99 exceeds 1.5 x default size")
}

func TestMergeGlyphs_Empty(t *testing.T) {
	assert.Empty(t, MergeGlyphs(nil, DefaultMergeConfig()))
}

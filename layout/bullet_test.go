package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/vitae/text"
)

func runsOf(texts ...string) []text.TextRun {
	runs := make([]text.TextRun, len(texts))
	for i, s := range texts {
		runs[i] = regular(s, 700-float64(i)*14)
	}
	return runs
}

func TestBulletExtractor(t *testing.T) {
	tests := []struct {
		name string
		runs []text.TextRun
		want []string
	}{
		{
			"no bullets",
			runsOf("Engineer", "Acme"),
			nil,
		},
		{
			"seeded with trailing space",
			runsOf("• Built X"),
			[]string{"• Built X "},
		},
		{
			"continuation runs concatenate",
			runsOf("Engineer", "• Built X", "and shipped Y"),
			[]string{"• Built X and shipped Y"},
		},
		{
			"leading whitespace before glyph",
			runsOf("  ● Led team", "○ Hired"),
			[]string{"  ● Led team ", "○ Hired "},
		},
		{
			"glyph inside text does not open",
			runsOf("• Used Go", "with a • in the middle"),
			[]string{"• Used Go with a • in the middle"},
		},
		{
			"runs before first bullet dropped",
			runsOf("2020", "Acme", "⦁ One", "⦁ Two"),
			[]string{"⦁ One ", "⦁ Two "},
		},
	}

	extractor := NewBulletExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.runs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBulletExtractor_CustomGlyphs(t *testing.T) {
	extractor := NewBulletExtractorWithConfig(BulletConfig{Glyphs: []string{"-"}})
	got := extractor.Extract(runsOf("- First", "• not a glyph here", "- Second"))
	want := []string{"- First • not a glyph here", "- Second "}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestBulletExtractor_EveryItemCarriesGlyph(t *testing.T) {
	lex := DefaultBulletConfig().Glyphs
	for _, item := range ExtractBullets(runsOf("• a", "b", "● c", "d", "e")) {
		if !containsGlyph(item, lex) {
			t.Errorf("Item %q has no glyph", item)
		}
	}
}

func TestBulletExtractor_Repair(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{"empty", nil, nil},
		{"all carry glyphs", []string{"• a ", "• b "}, []string{"• a ", "• b "}},
		{
			"wrapped line merges up",
			[]string{"• Built the billing ", "service in Go", "• Hired "},
			[]string{"• Built the billing service in Go", "• Hired "},
		},
		{
			"glyph after leading text counts",
			[]string{"• a ", "step ● b"},
			[]string{"• a ", "step ● b"},
		},
		{"leading orphan kept", []string{"intro", "• a "}, []string{"intro", "• a "}},
	}

	extractor := NewBulletExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Repair(tt.items)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGlyphHelpers(t *testing.T) {
	glyphs := DefaultBulletConfig().Glyphs

	if !startsWithGlyph("  • item", glyphs) {
		t.Error("Expected leading glyph after spaces to match")
	}
	if startsWithGlyph("item •", glyphs) {
		t.Error("Expected trailing glyph not to start the text")
	}
	if !containsGlyph("item •", glyphs) {
		t.Error("Expected trailing glyph to be found")
	}
	if !isBareGlyph(" ● ", glyphs) {
		t.Error("Expected padded glyph to be bare")
	}
	if isBareGlyph("● item", glyphs) {
		t.Error("Expected glyph with text not to be bare")
	}
	if startsWithGlyph("item", []string{""}) {
		t.Error("Expected empty glyph to match nothing")
	}
}

package layout

import (
	"strings"

	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/text"
)

// BulletConfig holds configuration for bullet extraction
type BulletConfig struct {
	// Glyphs are the strings that open a new bullet point
	Glyphs []string
}

// DefaultBulletConfig returns sensible default configuration
func DefaultBulletConfig() BulletConfig {
	return BulletConfig{
		Glyphs: config.DefaultLexicon().BulletGlyphs,
	}
}

// BulletExtractor merges runs into discrete bullet-point strings
type BulletExtractor struct {
	config BulletConfig
}

// NewBulletExtractor creates a bullet extractor with default configuration
func NewBulletExtractor() *BulletExtractor {
	return &BulletExtractor{
		config: DefaultBulletConfig(),
	}
}

// NewBulletExtractorWithConfig creates a bullet extractor with custom configuration
func NewBulletExtractorWithConfig(config BulletConfig) *BulletExtractor {
	return &BulletExtractor{
		config: config,
	}
}

// Extract returns the bullet points found in runs, in order.
//
// A run whose trimmed text starts with a glyph opens a new item seeded with
// its text and a trailing space; other runs are concatenated onto the open
// item, and runs before the first bullet are discarded. The result then goes
// through Repair, which leaves it unchanged since every item here opens with
// a glyph.
func (e *BulletExtractor) Extract(runs []text.TextRun) []string {
	var items []string

	for _, run := range runs {
		if startsWithGlyph(run.Text, e.config.Glyphs) {
			items = append(items, run.Text+" ")
			continue
		}
		if len(items) > 0 {
			items[len(items)-1] += run.Text
		}
	}

	return e.Repair(items)
}

// Repair merges every item that contains no glyph into the item before it.
// It fixes lists split on something other than a leading glyph, such as one
// item per line where a wrapped line became its own item. A leading item
// without a glyph is kept.
func (e *BulletExtractor) Repair(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if len(out) > 0 && !containsGlyph(item, e.config.Glyphs) {
			out[len(out)-1] += item
			continue
		}
		out = append(out, item)
	}
	return out
}

// ExtractBullets extracts bullet points using the default configuration
func ExtractBullets(runs []text.TextRun) []string {
	return NewBulletExtractor().Extract(runs)
}

func startsWithGlyph(s string, glyphs []string) bool {
	s = strings.TrimSpace(s)
	for _, g := range glyphs {
		if g != "" && strings.HasPrefix(s, g) {
			return true
		}
	}
	return false
}

func containsGlyph(s string, glyphs []string) bool {
	for _, g := range glyphs {
		if g != "" && strings.Contains(s, g) {
			return true
		}
	}
	return false
}

func isBareGlyph(s string, glyphs []string) bool {
	s = strings.TrimSpace(s)
	for _, g := range glyphs {
		if g != "" && s == g {
			return true
		}
	}
	return false
}

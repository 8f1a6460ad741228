package reader

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/vitae/text"
)

// Glyph is one positioned piece of text as reported by the PDF decoder,
// usually a single character.
type Glyph struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	FontName string
	FontSize float64
}

// MergeConfig holds the thresholds for joining glyphs into runs. Gap
// ratios are multiples of the glyph's font size.
type MergeConfig struct {
	// BaselineTolerance is the largest Y difference within one run
	BaselineTolerance float64

	// SpaceRatio is the estimated width of a space character
	SpaceRatio float64

	// SpaceThreshold is the fraction of a space width at which a gap
	// becomes a word break
	SpaceThreshold float64

	// RunGapRatio is the gap at which a new run starts
	RunGapRatio float64

	// DefaultFontSize is used when the decoder reports no size
	DefaultFontSize float64
}

// DefaultMergeConfig returns thresholds suited to typical résumé PDFs.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		BaselineTolerance: 1.0,
		SpaceRatio:        0.25,
		SpaceThreshold:    0.5,
		RunGapRatio:       1.5,
		DefaultFontSize:   10,
	}
}

// MergeGlyphs joins consecutive glyphs into text runs. A run continues
// while font name and size stay the same, the baseline stays within
// tolerance, and the horizontal gap is neither wider than RunGapRatio
// nor a backwards jump. Gaps wider than a fraction of a space become a
// single space. Run text is NFKC-normalized, trailing whitespace is
// dropped, and runs left empty are discarded.
func MergeGlyphs(glyphs []Glyph, cfg MergeConfig) []text.TextRun {
	var (
		runs []text.TextRun
		cur  *text.TextRun
		sb   strings.Builder
		end  float64
	)

	flush := func() {
		if cur == nil {
			return
		}
		s := strings.TrimRightFunc(norm.NFKC.String(sb.String()), unicode.IsSpace)
		if s != "" {
			cur.Text = s
			cur.Width = end - cur.X
			cur.Order = len(runs)
			runs = append(runs, *cur)
		}
		cur = nil
		sb.Reset()
	}

	for _, g := range glyphs {
		if g.Text == "" {
			continue
		}
		size := g.FontSize
		if size <= 0 {
			size = cfg.DefaultFontSize
		}
		blank := strings.TrimSpace(g.Text) == ""

		if cur != nil {
			gap := g.X - end
			sameLine := math.Abs(cur.Y-g.Y) <= cfg.BaselineTolerance
			if blank && sameLine {
				if !strings.HasSuffix(sb.String(), " ") {
					sb.WriteByte(' ')
				}
				end = math.Max(end, g.X+g.Width)
				continue
			}
			sameStyle := g.FontName == cur.FontName && g.FontSize == cur.FontSize
			if !sameLine || !sameStyle || gap > size*cfg.RunGapRatio || gap < -size {
				flush()
			} else if gap >= size*cfg.SpaceRatio*cfg.SpaceThreshold && !strings.HasSuffix(sb.String(), " ") {
				sb.WriteByte(' ')
			}
		}

		if cur == nil {
			if blank {
				continue
			}
			cur = &text.TextRun{
				X:        g.X,
				Y:        g.Y,
				FontName: g.FontName,
				FontSize: g.FontSize,
			}
		}
		sb.WriteString(g.Text)
		end = g.X + g.Width
	}
	flush()

	return runs
}

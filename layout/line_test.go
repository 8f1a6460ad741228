package layout

import (
	"testing"

	"github.com/tsawler/vitae/text"
)

// makeRun creates a test run at baseline y
func makeRun(txt string, y float64, font string) text.TextRun {
	return text.TextRun{Text: txt, Y: y, FontName: font, FontSize: 12}
}

func regular(txt string, y float64) text.TextRun { return makeRun(txt, y, "Helvetica") }

func bold(txt string, y float64) text.TextRun { return makeRun(txt, y, "Helvetica-Bold") }

func TestLineAssembler_Empty(t *testing.T) {
	lines := NewLineAssembler().Assemble(nil)
	if len(lines) != 0 {
		t.Errorf("Expected 0 lines, got %d", len(lines))
	}
}

func TestLineAssembler_SingleRun(t *testing.T) {
	lines := AssembleLines([]text.TextRun{regular("Hello", 700)})

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text() != "Hello" {
		t.Errorf("Expected 'Hello', got '%s'", lines[0].Text())
	}
	if lines[0].Index != 0 || lines[0].Baseline != 700 {
		t.Errorf("Unexpected index/baseline: %d/%v", lines[0].Index, lines[0].Baseline)
	}
}

func TestLineAssembler_StrictTolerance(t *testing.T) {
	tests := []struct {
		name  string
		dy    float64
		lines int
	}{
		{"same baseline", 0, 1},
		{"within tolerance", 4.9, 1},
		{"exactly tolerance", 5, 2},
		{"beyond tolerance", 12, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := AssembleLines([]text.TextRun{
				regular("a", 700),
				regular("b", 700-tt.dy),
			})
			if len(lines) != tt.lines {
				t.Errorf("dy=%v: expected %d lines, got %d", tt.dy, tt.lines, len(lines))
			}
		})
	}
}

func TestLineAssembler_ComparesWithPreviousRun(t *testing.T) {
	// Each step is within tolerance of the previous run, so the line keeps
	// growing even though the total drift exceeds it.
	lines := AssembleLines([]text.TextRun{
		regular("a", 700),
		regular("b", 697),
		regular("c", 694),
		regular("d", 691),
	})
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].RunCount() != 4 {
		t.Errorf("Expected 4 runs, got %d", lines[0].RunCount())
	}
}

func TestLineAssembler_PreservesSourceOrder(t *testing.T) {
	lines := AssembleLines([]text.TextRun{
		regular("low", 600),
		regular("high", 700),
		regular("high too", 700),
	})

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text() != "low" || lines[1].Text() != "high high too" {
		t.Errorf("Unexpected order: %q, %q", lines[0].Text(), lines[1].Text())
	}
	if lines[1].Index != 1 {
		t.Errorf("Expected index 1, got %d", lines[1].Index)
	}
}

func TestLineAssembler_SkipsEmptyRuns(t *testing.T) {
	// The empty run at 650 must not split "a" from "b".
	lines := AssembleLines([]text.TextRun{
		regular("a", 700),
		regular("", 650),
		regular("b", 699),
		regular(" ", 699),
	})
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].RunCount() != 3 {
		t.Errorf("Expected whitespace run kept, got %d runs", lines[0].RunCount())
	}
}

func TestLineAssembler_CustomTolerance(t *testing.T) {
	asm := NewLineAssemblerWithConfig(LineConfig{Tolerance: 1})
	lines := asm.Assemble([]text.TextRun{regular("a", 700), regular("b", 698)})
	if len(lines) != 2 {
		t.Errorf("Expected 2 lines with tolerance 1, got %d", len(lines))
	}
}

func TestFlattenRuns(t *testing.T) {
	runs := []text.TextRun{regular("a", 700), regular("b", 700), regular("c", 680)}
	lines := AssembleLines(runs)

	flat := FlattenRuns(lines)
	if len(flat) != 3 || RunCount(lines) != 3 {
		t.Fatalf("Expected 3 runs, got %d/%d", len(flat), RunCount(lines))
	}
	for i := range runs {
		if flat[i].Text != runs[i].Text {
			t.Errorf("Run %d: expected %q, got %q", i, runs[i].Text, flat[i].Text)
		}
	}
}

func TestFlatAndJoinedText(t *testing.T) {
	lines := AssembleLines([]text.TextRun{
		regular("Jane", 700),
		regular("Doe", 700),
		regular("Engineer", 680),
	})

	if got := FlatText(lines); got != "Jane\nDoe\nEngineer" {
		t.Errorf("FlatText: got %q", got)
	}
	if got := JoinedText(lines); got != "Jane Doe\nEngineer" {
		t.Errorf("JoinedText: got %q", got)
	}
	if got := FlatText(nil); got != "" {
		t.Errorf("FlatText(nil): got %q", got)
	}
}

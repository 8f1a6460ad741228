// Package text defines the positioned text runs consumed by the résumé
// parsing pipeline.
//
// A [TextRun] is one string fragment reported by a text source (the PDF,
// DOCX or ODT readers) together with its baseline, horizontal offset, font
// reference and source order. Runs are immutable values; every stage
// downstream copies them into lines, sections and subsections without
// modifying them.
//
// # Font Weight
//
// Bold detection is isolated behind the [FontWeigher] interface so that a
// source exposing real font-weight metadata can replace the default
// name-based heuristic:
//
//	var w text.FontWeigher = text.NameWeigher{}
//	if w.IsBold(run.FontName) {
//	    // ...
//	}
//
// [NameWeigher] reports a font as bold when its display name contains
// "bold" in any letter case.
package text

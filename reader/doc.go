// Package reader opens PDF documents and turns page content into text runs.
//
// Decoding is delegated to github.com/ledongthuc/pdf, which reports one
// positioned glyph at a time. This package validates the file header,
// recovers decoder panics as errors, and merges glyphs into the runs the
// layout stages consume.
//
// # Opening PDF Files
//
// Use [Open] for a file on disk or [FromBytes] for an upload:
//
//	r, err := reader.Open("resume.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	runs, err := r.ExtractRuns(1)
//
// # Glyph Merging
//
// [MergeGlyphs] joins glyphs that share font, size and baseline and sit
// close together. Word gaps become single spaces; wide gaps, font
// changes and baseline changes start a new run. See [MergeConfig].
package reader

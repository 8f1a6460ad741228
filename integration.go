package vitae

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/vitae/model"
)

// BatchResult is the outcome of parsing one file of a batch.
type BatchResult struct {
	Path     string
	Document *model.ResumeDocument
	Warnings []Warning
	Err      error
}

// ParseFiles parses résumé files concurrently, with at most workers files
// in flight (workers < 1 means GOMAXPROCS). configure, if non-nil, adds
// options to each file's Extractor. Per-file failures are reported in the
// results, which keep the order of paths; the returned error is non-nil
// only if ctx is cancelled.
//
// Example:
//
//	results, err := vitae.ParseFiles(ctx, paths, 4, func(e *vitae.Extractor) *vitae.Extractor {
//	    return e.FirstMatchSections()
//	})
func ParseFiles(ctx context.Context, paths []string, workers int, configure func(*Extractor) *Extractor) ([]BatchResult, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]BatchResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ext := Open(path)
			if configure != nil {
				ext = configure(ext)
			}
			doc, warnings, err := ext.Resume()
			results[i] = BatchResult{Path: path, Document: doc, Warnings: warnings, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

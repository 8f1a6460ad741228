// Command vitae extracts work experience and projects from résumé files.
//
// Usage:
//
//	vitae [flags] resume.pdf [more.docx more.odt ...]
//
// Output goes to stdout in the selected format; warnings go to stderr.
// Several files are parsed concurrently and printed in argument order.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tsawler/vitae"
	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/export"
)

// options holds the parsed command line
type options struct {
	format     string
	lexicon    string
	firstMatch bool
	joinLines  bool
	workers    int
	paths      []string
}

func main() {
	settings := config.LoadSettings()
	logger := settings.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	opts, err := parseFlags(os.Args[1:], settings)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout, os.Stderr); err != nil {
		slog.Error("vitae failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, settings config.Settings) (options, error) {
	var opts options
	fs := flag.NewFlagSet("vitae", flag.ContinueOnError)
	fs.StringVar(&opts.format, "format", "json", "output format: json, jsonl, csv, tsv, markdown, html or text")
	fs.StringVar(&opts.lexicon, "lexicon", settings.LexiconPath, "YAML lexicon overlay")
	fs.BoolVar(&opts.firstMatch, "first-match", false, "use the first matching section keyword instead of the last")
	fs.BoolVar(&opts.joinLines, "join-lines", false, "with -format text, join the runs of each line")
	fs.IntVar(&opts.workers, "workers", 0, "files parsed concurrently (0 = GOMAXPROCS)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.paths = fs.Args()
	if len(opts.paths) == 0 {
		return opts, errors.New("usage: vitae [flags] file [file ...]")
	}
	if opts.format != "text" {
		if _, err := export.ParseFormat(opts.format); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// configure applies the command line options to an Extractor
func (o options) configure(e *vitae.Extractor) *vitae.Extractor {
	if o.lexicon != "" {
		e = e.LexiconFile(o.lexicon)
	}
	if o.firstMatch {
		e = e.FirstMatchSections()
	}
	if o.joinLines {
		e = e.JoinLines()
	}
	return e.WithLogger(slog.Default())
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	if opts.format == "text" {
		return runText(opts, stdout, stderr)
	}

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	exporter := export.NewExporterWithConfig(export.ConfigFor(format))

	results, err := vitae.ParseFiles(ctx, opts.paths, opts.workers, opts.configure)
	if err != nil {
		return err
	}

	failed := 0
	for i, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}
		reportWarnings(stderr, res.Path, res.Warnings)

		if len(results) > 1 && format != export.ExportFormatJSON && format != export.ExportFormatJSONL {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "==> %s <==\n", res.Path)
		}
		if len(results) > 1 && format == export.ExportFormatJSON {
			if err := writeTagged(stdout, res); err != nil {
				return err
			}
			continue
		}
		if err := exporter.Export(res.Document, stdout); err != nil {
			return fmt.Errorf("%s: %w", res.Path, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// writeTagged writes one JSON object per file in batch mode so the output
// stays attributable
func writeTagged(w io.Writer, res vitae.BatchResult) error {
	return json.NewEncoder(w).Encode(struct {
		Path     string          `json:"path"`
		Document any             `json:"document"`
		Warnings []vitae.Warning `json:"warnings"`
	}{res.Path, res.Document, nonNilWarnings(res.Warnings)})
}

func runText(opts options, stdout, stderr io.Writer) error {
	for i, path := range opts.paths {
		txt, warnings, err := opts.configure(vitae.Open(path)).Text()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		reportWarnings(stderr, path, warnings)
		if len(opts.paths) > 1 {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "==> %s <==\n", path)
		}
		fmt.Fprintln(stdout, txt)
	}
	return nil
}

func reportWarnings(w io.Writer, path string, warnings []vitae.Warning) {
	for _, warn := range warnings {
		fmt.Fprintf(w, "%s: [%s] %s\n", path, warn.Code, warn.Message)
	}
}

func nonNilWarnings(ws []vitae.Warning) []vitae.Warning {
	if ws == nil {
		return []vitae.Warning{}
	}
	return ws
}

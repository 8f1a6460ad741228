// Package export renders parsed résumés for downstream consumers.
//
// An [Exporter] writes a [model.ResumeDocument] in one of several formats:
//
//   - JSON: the document as-is, with workExperience and projects arrays
//   - JSONL: one flattened entry per line, for ingestion pipelines
//   - CSV and TSV: one flattened entry per row
//   - Markdown: headings per entry with bullet lists
//   - HTML: a standalone page built as a DOM tree
//
// Markdown and HTML strip the leading bullet glyph from each bullet since
// both formats render their own list markers.
//
// # Usage
//
//	exp := export.NewExporterWithConfig(export.MarkdownExportConfig())
//	md, err := exp.ExportToString(doc)
package export

package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/vitae/model"
)

func sampleDocument() *model.ResumeDocument {
	return &model.ResumeDocument{
		WorkExperience: []model.WorkExperienceEntry{
			{
				JobTitle: "Software Engineer",
				Date:     "Jan 2020 - Present",
				Company:  "Acme Corp",
				Bullets:  []string{"• Built X and shipped Y ", "• Led a team of 4"},
			},
		},
		Projects: []model.ProjectEntry{
			{Title: "Compiler", Date: "2019", Bullets: nil},
		},
	}
}

func TestExportFormat_String(t *testing.T) {
	tests := []struct {
		format ExportFormat
		want   string
		ext    string
	}{
		{ExportFormatJSON, "json", ".json"},
		{ExportFormatJSONL, "jsonl", ".jsonl"},
		{ExportFormatCSV, "csv", ".csv"},
		{ExportFormatTSV, "tsv", ".tsv"},
		{ExportFormatMarkdown, "markdown", ".md"},
		{ExportFormatHTML, "html", ".html"},
		{ExportFormat(99), "unknown", ".txt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.format.String())
		assert.Equal(t, tt.ext, tt.format.FileExtension())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{"", ExportFormatJSON, false},
		{"JSON", ExportFormatJSON, false},
		{".md", ExportFormatMarkdown, false},
		{"markdown", ExportFormatMarkdown, false},
		{"ndjson", ExportFormatJSONL, false},
		{"htm", ExportFormatHTML, false},
		{"tsv", ExportFormatTSV, false},
		{"pdf", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestConfigFor(t *testing.T) {
	assert.Equal(t, '\t', ConfigFor(ExportFormatTSV).CSVDelimiter)
	assert.Equal(t, ',', ConfigFor(ExportFormatCSV).CSVDelimiter)
	assert.Equal(t, ExportFormatMarkdown, MarkdownExportConfig().Format)
	assert.Equal(t, ExportFormatHTML, HTMLExportConfig().Format)
	assert.Equal(t, ExportFormatJSON, NewExporter().Config().Format)
}

func TestExporter_JSON(t *testing.T) {
	out, err := NewExporter().ExportToString(sampleDocument())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, out, `"workExperience":[{"jobTitle":"Software Engineer"`)
	assert.Contains(t, out, `"bullets":[]`, "nil bullets render as an empty array")
}

func TestExporter_JSONDoesNotMutateInput(t *testing.T) {
	doc := sampleDocument()
	_, err := NewExporter().ExportToString(doc)
	require.NoError(t, err)
	assert.Nil(t, doc.Projects[0].Bullets)
}

func TestExporter_JSONEmptyDocument(t *testing.T) {
	out, err := NewExporter().ExportToString(&model.ResumeDocument{})
	require.NoError(t, err)
	assert.Equal(t, `{"workExperience":[],"projects":[]}`+"\n", out)

	out, err = NewExporter().ExportToString(nil)
	require.NoError(t, err)
	assert.Equal(t, `{"workExperience":[],"projects":[]}`+"\n", out)
}

func TestExporter_PrettyPrint(t *testing.T) {
	cfg := DefaultExportConfig()
	cfg.PrettyPrint = true

	out, err := NewExporterWithConfig(cfg).ExportToString(sampleDocument())
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"workExperience\": [")
}

func TestExporter_JSONL(t *testing.T) {
	out, err := NewExporterWithConfig(ConfigFor(ExportFormatJSONL)).ExportToString(sampleDocument())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first ExportedEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "work", first.Section)
	assert.Equal(t, "Acme Corp", first.Company)

	var second ExportedEntry
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "project", second.Section)
	assert.Equal(t, "Compiler", second.Title)
	assert.Equal(t, []string{}, second.Bullets)
}

func TestExporter_CSV(t *testing.T) {
	out, err := NewExporterWithConfig(ConfigFor(ExportFormatCSV)).ExportToString(sampleDocument())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"section", "index", "title", "company", "date", "bullets"}, records[0])
	assert.Equal(t, "Software Engineer", records[1][2])
	assert.Equal(t, "• Built X and shipped Y  | • Led a team of 4", records[1][5])
	assert.Equal(t, []string{"project", "0", "Compiler", "", "2019", ""}, records[2])
}

func TestExporter_TSVWithoutHeader(t *testing.T) {
	cfg := ConfigFor(ExportFormatTSV)
	cfg.IncludeHeader = false

	out, err := NewExporterWithConfig(cfg).ExportToString(sampleDocument())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "work\t0\tSoftware Engineer\tAcme Corp\t"))
}

func TestExporter_Markdown(t *testing.T) {
	out, err := NewExporterWithConfig(MarkdownExportConfig()).ExportToString(sampleDocument())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Résumé\n\n## Work Experience\n\n"))
	assert.Contains(t, out, "### Software Engineer\n\n**Acme Corp** · *Jan 2020 - Present*\n\n")
	assert.Contains(t, out, "- Built X and shipped Y\n- Led a team of 4\n")
	assert.Contains(t, out, "## Projects\n\n### Compiler\n\n*2019*\n")
	assert.True(t, strings.HasSuffix(out, "*2019*\n"))
}

func TestExporter_MarkdownEmptyAndEscaped(t *testing.T) {
	doc := &model.ResumeDocument{
		WorkExperience: []model.WorkExperienceEntry{{JobTitle: "", Company: "R&D_Labs *Inc*"}},
	}

	out, err := NewExporterWithConfig(MarkdownExportConfig()).ExportToString(doc)
	require.NoError(t, err)

	assert.Contains(t, out, "### Untitled\n\n**R&D\\_Labs \\*Inc\\***\n")
	assert.Contains(t, out, "## Projects\n\n_None found._\n")
}

func TestExporter_HTML(t *testing.T) {
	doc := sampleDocument()
	doc.WorkExperience[0].Bullets = append(doc.WorkExperience[0].Bullets, "• <script>alert(1)</script>")

	out, err := NewExporterWithConfig(HTMLExportConfig()).ExportToString(doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html><html><head><meta charset=\"utf-8\"/><title>Résumé</title></head>"))
	assert.Contains(t, out, `<section class="work-experience"><h2>Work Experience</h2><article class="entry"><h3>Software Engineer</h3>`)
	assert.Contains(t, out, `<p class="company">Acme Corp</p><p class="date">Jan 2020 - Present</p>`)
	assert.Contains(t, out, `<li>Built X and shipped Y</li>`)
	assert.Contains(t, out, `<li>&lt;script&gt;alert(1)&lt;/script&gt;</li>`)
	assert.Contains(t, out, `<article class="entry"><h3>Compiler</h3><p class="date">2019</p></article>`)
	assert.NotContains(t, out, "<script>")
}

func TestExporter_UnsupportedFormat(t *testing.T) {
	cfg := DefaultExportConfig()
	cfg.Format = ExportFormat(42)

	_, err := NewExporterWithConfig(cfg).ExportToString(sampleDocument())
	assert.Error(t, err)
}

func TestExporter_ExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, NewExporter().ExportToFile(sampleDocument(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme Corp")
}

func TestEntries_Nil(t *testing.T) {
	assert.Nil(t, Entries(nil))
}

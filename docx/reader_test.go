package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/vitae/internal/testdoc"
)

func createTestDOCX(t *testing.T, content string) []byte {
	t.Helper()
	return testdoc.DOCX(content)
}

func para(runs string) string {
	return testdoc.Paragraph(runs)
}

func run(s string) string {
	return testdoc.Run(s)
}

func boldRun(s string) string {
	return testdoc.BoldRun(s)
}

func TestNewReader_Text(t *testing.T) {
	data := createTestDOCX(t, para(run("Hello"))+para(run("World")))

	r, err := NewReader(data)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, 2, r.ParagraphCount())
	assert.Equal(t, "Hello\nWorld", r.Text())
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, createTestDOCX(t, para(run("Jane Doe"))), 0o600))

	r, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", r.Text())
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close(), "second Close is a no-op")
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.docx"))
	assert.Error(t, err)
}

func TestNewReader_InvalidZip(t *testing.T) {
	_, err := NewReader([]byte("definitely not a zip"))
	assert.Error(t, err)
}

func TestNewReader_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<Types/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = NewReader(buf.Bytes())
	assert.Error(t, err)
}

func TestRuns_Geometry(t *testing.T) {
	data := createTestDOCX(t,
		para(boldRun("EXPERIENCE"))+
			para(boldRun("Software Engineer"))+
			para(run("Acme Corp")+run(" | ")+boldRun("2020"))+
			para(""))

	r, err := NewReader(data)
	require.NoError(t, err)

	runs := r.Runs()
	require.Len(t, runs, 5)

	assert.Equal(t, "EXPERIENCE", runs[0].Text)
	assert.Equal(t, "Calibri-Bold", runs[0].FontName)
	assert.InDelta(t, 792, runs[0].Y, 0.001)
	assert.InDelta(t, 72, runs[0].X, 0.001)

	assert.InDelta(t, 792-13.2, runs[1].Y, 0.001)

	// adjacent runs with identical formatting merge into one
	assert.Equal(t, "Acme Corp | ", runs[2].Text)
	assert.Equal(t, "Calibri", runs[2].FontName)
	assert.Equal(t, "2020", runs[3].Text)
	assert.Equal(t, runs[2].Y, runs[3].Y)
	assert.Greater(t, runs[3].X, runs[2].X)

	for i, r := range runs {
		assert.Equal(t, i, r.Order)
	}
}

func TestRuns_EmptyParagraphWidensGap(t *testing.T) {
	data := createTestDOCX(t, para(run("a"))+para(run("b"))+para("")+para(run("c")))

	r, err := NewReader(data)
	require.NoError(t, err)

	runs := r.Runs()
	require.Len(t, runs, 3)
	first := runs[0].Y - runs[1].Y
	second := runs[1].Y - runs[2].Y
	assert.InDelta(t, 2*first, second, 0.001)
}

func TestRuns_SpacingAndFontSize(t *testing.T) {
	data := createTestDOCX(t,
		para(run("a"))+
			`<w:p><w:pPr><w:spacing w:before="240"/></w:pPr><w:r><w:rPr><w:sz w:val="28"/><w:rFonts w:ascii="Georgia"/></w:rPr><w:t>b</w:t></w:r></w:p>`)

	r, err := NewReader(data)
	require.NoError(t, err)

	runs := r.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, "Georgia", runs[1].FontName)
	assert.Equal(t, 14.0, runs[1].FontSize)
	assert.InDelta(t, 12+14*1.2, runs[0].Y-runs[1].Y, 0.001)
}

func TestRuns_ListParagraphGetsBullet(t *testing.T) {
	data := createTestDOCX(t,
		`<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="3"/></w:numPr></w:pPr>`+run("Built X")+`</w:p>`)

	r, err := NewReader(data)
	require.NoError(t, err)

	runs := r.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, "• Built X", runs[0].Text)
	assert.Equal(t, "• Built X", r.Text())
}

func TestRuns_BoldToggleOff(t *testing.T) {
	data := createTestDOCX(t, para(`<w:r><w:rPr><w:b w:val="0"/></w:rPr><w:t>plain</w:t></w:r>`))

	r, err := NewReader(data)
	require.NoError(t, err)

	runs := r.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, "Calibri", runs[0].FontName)
}

func TestRuns_TablesAndHyperlinksKeepOrder(t *testing.T) {
	data := createTestDOCX(t,
		para(run("before"))+
			`<w:tbl><w:tr><w:tc>`+para(run("cell"))+`</w:tc></w:tr></w:tbl>`+
			`<w:p><w:hyperlink w:id="rId9">`+run("link")+`</w:hyperlink></w:p>`+
			`<w:p><w:del>`+run("gone")+`</w:del>`+run("kept")+`</w:p>`)

	r, err := NewReader(data)
	require.NoError(t, err)

	assert.Equal(t, "before\ncell\nlink\nkept", r.Text())
}

func TestBoolXML_Set(t *testing.T) {
	tests := []struct {
		name string
		b    boolXML
		want bool
	}{
		{"absent", boolXML{}, false},
		{"bare", boolXML{XMLName: xmlName("b")}, true},
		{"true", boolXML{XMLName: xmlName("b"), Val: "true"}, true},
		{"zero", boolXML{XMLName: xmlName("b"), Val: "0"}, false},
		{"false", boolXML{XMLName: xmlName("b"), Val: "false"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.set())
		})
	}
}

func TestUnitConversions(t *testing.T) {
	assert.Equal(t, 12.0, twipsToPoints("240"))
	assert.Equal(t, 0.0, twipsToPoints(""))
	assert.Equal(t, 0.0, twipsToPoints("-20"))
	assert.Equal(t, 11.0, halfPointsToPoints("22"))
	assert.Equal(t, 0.0, halfPointsToPoints("x"))
}

func xmlName(local string) xml.Name {
	return xml.Name{Local: local}
}

package format

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{DOCX, "DOCX"},
		{ODT, "ODT"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.format.String(), "Format(%d).String()", tt.format)
	}
}

func TestFormat_ExtensionAndMIME(t *testing.T) {
	assert.Equal(t, ".pdf", PDF.Extension())
	assert.Equal(t, ".docx", DOCX.Extension())
	assert.Equal(t, ".odt", ODT.Extension())
	assert.Equal(t, "", Unknown.Extension())
	assert.Equal(t, "application/pdf", PDF.MIMEType())
	assert.Equal(t, "application/octet-stream", Unknown.MIMEType())
	assert.True(t, PDF.Structured())
	assert.False(t, DOCX.Structured())
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"resume.pdf", PDF},
		{"resume.PDF", PDF},
		{"cv.docx", DOCX},
		{"cv.DocX", DOCX},
		{"cv.odt", ODT},
		{"notes.txt", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.filename), tt.filename)
	}
}

func TestFromMIMEType(t *testing.T) {
	assert.Equal(t, PDF, FromMIMEType("application/pdf"))
	assert.Equal(t, PDF, FromMIMEType("Application/PDF; charset=binary"))
	assert.Equal(t, DOCX, FromMIMEType(DOCX.MIMEType()))
	assert.Equal(t, ODT, FromMIMEType("application/vnd.oasis.opendocument.text"))
	assert.Equal(t, Unknown, FromMIMEType("text/plain"))
}

func TestDetectFromBytes(t *testing.T) {
	assert.Equal(t, PDF, DetectFromBytes([]byte("%PDF-1.7\n...")))
	assert.Equal(t, Unknown, DetectFromBytes([]byte("hello")))
	assert.Equal(t, Unknown, DetectFromBytes(nil))

	docx := zipWith(t, "word/document.xml")
	assert.Equal(t, DOCX, DetectFromBytes(docx))

	xlsx := zipWith(t, "xl/workbook.xml")
	assert.Equal(t, Unknown, DetectFromBytes(xlsx))

	odt := zipEntry(t, "mimetype", "application/vnd.oasis.opendocument.text")
	assert.Equal(t, ODT, DetectFromBytes(odt))

	ods := zipEntry(t, "mimetype", "application/vnd.oasis.opendocument.spreadsheet")
	assert.Equal(t, Unknown, DetectFromBytes(ods))
}

func TestDetectContent_FallsBackToName(t *testing.T) {
	assert.Equal(t, PDF, DetectContent("resume.docx", []byte("%PDF-1.4")))
	assert.Equal(t, DOCX, DetectContent("resume.docx", []byte("not a zip")))
	assert.Equal(t, Unknown, DetectContent("resume", []byte("plain")))
}

func zipWith(t *testing.T, name string) []byte {
	t.Helper()
	return zipEntry(t, name, "<x/>")
}

func zipEntry(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

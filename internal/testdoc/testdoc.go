// Package testdoc builds small PDF, DOCX and ODT documents for tests.
package testdoc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// PDF assembles a PDF with one page per content stream. Fonts F1
// (Helvetica) and F2 (Helvetica-Bold) are available on every page, with
// every character 500/1000 em wide.
func PDF(contents ...string) []byte {
	widths := strings.TrimSpace(strings.Repeat("500 ", 95))
	font := func(name string) string {
		return fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [%s] >>", name, widths)
	}

	// 1 catalog, 2 pages, 3 F1, 4 F2, then (page, content) pairs
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"",
		font("Helvetica"),
		font("Helvetica-Bold"),
	}
	kids := make([]string, 0, len(contents))
	for i, c := range contents {
		pageNum := 5 + 2*i
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>", pageNum+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(c)+1, c),
		)
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(contents))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// TextLine returns a content stream fragment drawing s at (x, y). Bold
// selects Helvetica-Bold.
func TextLine(s string, x, y float64, size float64, bold bool) string {
	font := "F1"
	if bold {
		font = "F2"
	}
	r := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)
	return fmt.Sprintf("BT /%s %g Tf %g %g Td (%s) Tj ET\n", font, size, x, y, r.Replace(s))
}

// DOCX builds a minimal DOCX archive around WordprocessingML body content.
func DOCX(body string) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := []struct{ name, content string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
		{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>` + body + `</w:body>
</w:document>`},
	}

	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write([]byte(f.content)); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Paragraph wraps runs in a <w:p> element.
func Paragraph(runs ...string) string {
	return "<w:p>" + strings.Join(runs, "") + "</w:p>"
}

// ListParagraph wraps runs in a numbered <w:p> element.
func ListParagraph(runs ...string) string {
	return `<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>` + strings.Join(runs, "") + "</w:p>"
}

// Run returns a plain <w:r> element.
func Run(s string) string {
	return `<w:r><w:t xml:space="preserve">` + s + `</w:t></w:r>`
}

// BoldRun returns a bold <w:r> element.
func BoldRun(s string) string {
	return `<w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">` + s + `</w:t></w:r>`
}

const odtNamespaces = `xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" ` +
	`xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0" ` +
	`xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" ` +
	`xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0" ` +
	`xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"`

// ODT builds a minimal ODT archive around office:text body content. The
// default paragraph font is Liberation Sans 11pt, and the automatic text
// style "Bold" sets a bold weight.
func ODT(body string) []byte {
	return ODTWithStyles(body, "")
}

// ODTWithStyles is ODT with extra style definitions appended to the
// automatic styles of content.xml.
func ODTWithStyles(body, autoStyles string) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	// mimetype must be the first entry and stored uncompressed.
	mw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		panic(err)
	}
	if _, err := mw.Write([]byte("application/vnd.oasis.opendocument.text")); err != nil {
		panic(err)
	}

	files := []struct{ name, content string }{
		{"META-INF/manifest.xml", `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
  <manifest:file-entry manifest:full-path="/" manifest:media-type="application/vnd.oasis.opendocument.text"/>
  <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
  <manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>
</manifest:manifest>`},
		{"styles.xml", `<?xml version="1.0" encoding="UTF-8"?>
<office:document-styles ` + odtNamespaces + `>
  <office:styles>
    <style:default-style style:family="paragraph">
      <style:text-properties style:font-name="Liberation Sans" fo:font-size="11pt"/>
    </style:default-style>
  </office:styles>
</office:document-styles>`},
		{"content.xml", `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content ` + odtNamespaces + `>
  <office:automatic-styles>
    <style:style style:name="Bold" style:family="text">
      <style:text-properties fo:font-weight="bold"/>
    </style:style>` + autoStyles + `
  </office:automatic-styles>
  <office:body>
    <office:text>` + body + `</office:text>
  </office:body>
</office:document-content>`},
	}

	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write([]byte(f.content)); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// ODTParagraph wraps inline content in a <text:p> element.
func ODTParagraph(content ...string) string {
	return "<text:p>" + strings.Join(content, "") + "</text:p>"
}

// ODTBold returns a span in the bold automatic style.
func ODTBold(s string) string {
	return `<text:span text:style-name="Bold">` + s + "</text:span>"
}

// ODTList wraps each item's inline content in its own list item.
func ODTList(items ...string) string {
	var sb strings.Builder
	sb.WriteString("<text:list>")
	for _, item := range items {
		sb.WriteString("<text:list-item>" + ODTParagraph(item) + "</text:list-item>")
	}
	sb.WriteString("</text:list>")
	return sb.String()
}

// Package format provides document format detection for résumé uploads.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
)

// odtMIMEType is also the content of the mimetype entry in ODT archives
const odtMIMEType = "application/vnd.oasis.opendocument.text"

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case DOCX:
		return "DOCX"
	case ODT:
		return "ODT"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case DOCX:
		return ".docx"
	case ODT:
		return ".odt"
	default:
		return ""
	}
}

// MIMEType returns the media type for the format.
func (f Format) MIMEType() string {
	switch f {
	case PDF:
		return "application/pdf"
	case DOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ODT:
		return odtMIMEType
	default:
		return "application/octet-stream"
	}
}

// Structured reports whether positioned text can be extracted from the
// format. Only PDF carries the geometry the résumé parser needs.
func (f Format) Structured() bool {
	return f == PDF
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".docx":
		return DOCX
	case ".odt":
		return ODT
	default:
		return Unknown
	}
}

// FromMIMEType maps a media type to a format, ignoring parameters.
func FromMIMEType(mimeType string) Format {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case PDF.MIMEType():
		return PDF
	case DOCX.MIMEType():
		return DOCX
	case ODT.MIMEType():
		return ODT
	default:
		return Unknown
	}
}

// DetectFromBytes inspects the content to determine format. ZIP archives
// are opened to tell DOCX and ODT apart from other office files.
func DetectFromBytes(data []byte) Format {
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}
	if bytes.HasPrefix(data, []byte{0x50, 0x4B, 0x03, 0x04}) {
		return detectZIPFormat(data)
	}
	return Unknown
}

// DetectContent prefers magic bytes and falls back to the filename.
func DetectContent(filename string, data []byte) Format {
	if f := DetectFromBytes(data); f != Unknown {
		return f
	}
	return Detect(filename)
}

func detectZIPFormat(data []byte) Format {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}
	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX
		case f.Name == "mimetype":
			if isODTMimetype(f) {
				return ODT
			}
		}
	}
	return Unknown
}

// isODTMimetype reports whether a mimetype entry names OpenDocument Text.
// Spreadsheets and presentations carry their own mimetype.
func isODTMimetype(f *zip.File) bool {
	rc, err := f.Open()
	if err != nil {
		return false
	}
	defer rc.Close()
	buf := make([]byte, len(odtMIMEType)+1)
	n, _ := io.ReadFull(rc, buf)
	return strings.TrimSpace(string(buf[:n])) == odtMIMEType
}

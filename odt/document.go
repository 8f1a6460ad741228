package odt

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// ODF XML namespaces
const (
	nsOffice = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsText   = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsTable  = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
)

// segment is a piece of paragraph text under one character style.
type segment struct {
	Text      string
	StyleName string // innermost span style, "" for text directly in the paragraph
}

// paragraphXML is a <text:p> or <text:h> with its inline content kept in
// document order. Spans may nest; the innermost style applies.
type paragraphXML struct {
	StyleName    string
	Heading      bool
	OutlineLevel int
	Segments     []segment
}

// UnmarshalXML walks the paragraph's inline content.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.Heading = start.Name.Local == "h"
	p.StyleName = attr(start, "style-name")
	if lvl, err := strconv.Atoi(attr(start, "outline-level")); err == nil {
		p.OutlineLevel = lvl
	}
	return p.readInline(d, "")
}

// readInline consumes tokens up to the end of the current element.
func (p *paragraphXML) readInline(d *xml.Decoder, style string) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.CharData:
			p.appendText(collapseSpace(string(t)), style)

		case xml.StartElement:
			switch t.Name.Local {
			case "span":
				inner := style
				if s := attr(t, "style-name"); s != "" {
					inner = s
				}
				if err := p.readInline(d, inner); err != nil {
					return err
				}
			case "a", "meta", "ruby-base":
				if err := p.readInline(d, style); err != nil {
					return err
				}
			case "s":
				n := 1
				if c, err := strconv.Atoi(attr(t, "c")); err == nil && c > 0 {
					n = c
				}
				p.appendText(strings.Repeat(" ", n), style)
				if err := d.Skip(); err != nil {
					return err
				}
			case "tab", "line-break":
				p.appendText(" ", style)
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				// notes, frames, annotations and bookmarks
				if err := d.Skip(); err != nil {
					return err
				}
			}

		case xml.EndElement:
			return nil
		}
	}
}

// appendText extends the last segment when the style is unchanged.
func (p *paragraphXML) appendText(s, style string) {
	if s == "" {
		return
	}
	if n := len(p.Segments); n > 0 && p.Segments[n-1].StyleName == style {
		p.Segments[n-1].Text += s
		return
	}
	p.Segments = append(p.Segments, segment{Text: s, StyleName: style})
}

// collapseSpace maps line breaks and tabs in character data to spaces and
// collapses runs of spaces, as ODF consumers do for non-<text:s> whitespace.
func collapseSpace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\n', '\r', '\t':
			if !prevSpace {
				sb.WriteByte(' ')
			}
			prevSpace = true
		default:
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return sb.String()
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

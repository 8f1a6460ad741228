package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    bodyXML  `xml:"body"`
}

// bodyXML represents the document body. Paragraphs are collected in
// document order, including those nested inside tables and content
// controls.
type bodyXML struct {
	Paragraphs []paragraphXML
}

// UnmarshalXML walks the body token stream so table cell paragraphs keep
// their position relative to top-level paragraphs.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Paragraphs = append(b.Paragraphs, p)
				continue
			}
			depth++
		case xml.EndElement:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>). Runs inside
// hyperlinks are flattened into Runs in document order.
type paragraphXML struct {
	Properties paragraphPropsXML
	Runs       []runXML
}

// UnmarshalXML decodes paragraph properties and runs, descending into
// hyperlinks, smart tags and inserted-text wrappers.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case "r":
				var r runXML
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, r)
			case "del", "delText":
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style   styleRefXML       `xml:"pStyle"`
	NumPr   numberingPropsXML `xml:"numPr"`
	Spacing spacingXML        `xml:"spacing"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// numberingPropsXML represents numbering properties for lists.
type numberingPropsXML struct {
	ILvl  valXML `xml:"ilvl"`
	NumID valXML `xml:"numId"`
}

// valXML is any element whose only payload is a w:val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// spacingXML represents paragraph spacing.
type spacingXML struct {
	Before string `xml:"before,attr"` // Space before in twips
	After  string `xml:"after,attr"`  // Space after in twips
}

// runXML represents a text run (<w:r>).
type runXML struct {
	Properties runPropsXML `xml:"rPr"`
	Text       []textXML   `xml:"t"`
	Tabs       []tabXML    `xml:"tab"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold     boolXML `xml:"b"`
	FontSize valXML  `xml:"sz"`
	Font     fontXML `xml:"rFonts"`
}

// boolXML represents a toggle property such as <w:b/> or <w:b w:val="0"/>.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// fontXML represents font settings.
type fontXML struct {
	ASCII string `xml:"ascii,attr"`
	HAnsi string `xml:"hAnsi,attr"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	Value string `xml:",chardata"`
}

// tabXML represents a tab character.
type tabXML struct {
	XMLName xml.Name `xml:"tab"`
}

// set reports whether the toggle is present and not switched off.
func (b boolXML) set() bool {
	if b.XMLName.Local == "" {
		return false
	}
	switch strings.ToLower(b.Val) {
	case "false", "0", "off", "none":
		return false
	}
	return true
}

// isList reports whether the paragraph carries list numbering.
func (p paragraphPropsXML) isList() bool {
	id := p.NumPr.NumID.Val
	return id != "" && id != "0"
}

// text returns the run text with tabs expanded.
func (r runXML) text() string {
	var sb strings.Builder
	for _, t := range r.Text {
		sb.WriteString(t.Value)
	}
	for range r.Tabs {
		sb.WriteByte('\t')
	}
	return sb.String()
}

// twipsToPoints converts a twips attribute into layout points.
func twipsToPoints(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v / 20
}

// halfPointsToPoints converts a w:sz attribute into points.
func halfPointsToPoints(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v / 2
}

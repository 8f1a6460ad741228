package odt

import "encoding/xml"

// stylesXML represents the structure of styles.xml
type stylesXML struct {
	XMLName    xml.Name         `xml:"document-styles"`
	Styles     *officeStylesXML `xml:"styles"`
	AutoStyles *autoStylesXML   `xml:"automatic-styles"`
}

// contentStylesXML holds the automatic styles of content.xml
type contentStylesXML struct {
	AutoStyles *autoStylesXML `xml:"automatic-styles"`
}

// officeStylesXML represents the office:styles element (named styles).
type officeStylesXML struct {
	DefaultStyles []styleDefXML `xml:"default-style"`
	Styles        []styleDefXML `xml:"style"`
}

// autoStylesXML represents the office:automatic-styles element.
type autoStylesXML struct {
	Styles []styleDefXML `xml:"style"`
}

// styleDefXML represents a style definition (<style:style> or
// <style:default-style>).
type styleDefXML struct {
	Name                string             `xml:"name,attr"`
	Family              string             `xml:"family,attr"` // paragraph, text, ...
	ParentStyleName     string             `xml:"parent-style-name,attr"`
	DefaultOutlineLevel string             `xml:"default-outline-level,attr"`
	ParagraphProps      *paragraphPropsXML `xml:"paragraph-properties"`
	TextProps           *textPropsXML      `xml:"text-properties"`
}

// paragraphPropsXML represents paragraph properties (<style:paragraph-properties>).
type paragraphPropsXML struct {
	MarginTop    string `xml:"margin-top,attr"`
	MarginBottom string `xml:"margin-bottom,attr"`
}

// textPropsXML represents text properties (<style:text-properties>).
type textPropsXML struct {
	FontName   string `xml:"font-name,attr"`
	FontFamily string `xml:"font-family,attr"`
	FontSize   string `xml:"font-size,attr"`
	FontWeight string `xml:"font-weight,attr"` // normal, bold, 100-900
}

package odt

import (
	"strconv"
	"strings"
)

// ResolvedStyle contains the resolved properties of a style that matter
// for layout and weight detection.
type ResolvedStyle struct {
	Name   string
	Family string

	// Heading info
	IsHeading    bool
	HeadingLevel int // 1-9, 0 if not a heading

	// Paragraph spacing in points
	SpaceBefore float64
	SpaceAfter  float64

	// Character properties
	FontName string
	FontSize float64 // points
	Bold     bool

	// boldSet records an explicit font-weight anywhere in the chain
	boldSet bool
}

// StyleResolver resolves styles with inheritance support.
type StyleResolver struct {
	styles   map[string]*styleDefXML
	defaults *ResolvedStyle
	resolved map[string]*ResolvedStyle
}

// NewStyleResolver creates a resolver over the named and automatic styles
// of styles.xml and the automatic styles of content.xml. Either may be nil.
func NewStyleResolver(content *contentStylesXML, doc *stylesXML) *StyleResolver {
	sr := &StyleResolver{
		styles:   make(map[string]*styleDefXML),
		resolved: make(map[string]*ResolvedStyle),
		defaults: &ResolvedStyle{
			FontName: "Liberation Serif", // LibreOffice default
			FontSize: 12,
		},
	}

	add := func(defs []styleDefXML) {
		for i := range defs {
			sr.styles[defs[i].Name] = &defs[i]
		}
	}

	if doc != nil {
		if doc.Styles != nil {
			for i := range doc.Styles.DefaultStyles {
				if def := &doc.Styles.DefaultStyles[i]; def.Family == "paragraph" {
					sr.applyStyleDef(sr.defaults, def)
				}
			}
			add(doc.Styles.Styles)
		}
		if doc.AutoStyles != nil {
			add(doc.AutoStyles.Styles)
		}
	}
	// Automatic styles in content.xml override same-named styles.
	if content != nil && content.AutoStyles != nil {
		add(content.AutoStyles.Styles)
	}

	return sr
}

// Resolve returns the fully resolved style for the given style name. An
// unknown or empty name resolves to the document defaults.
func (sr *StyleResolver) Resolve(styleName string) *ResolvedStyle {
	if resolved, ok := sr.resolved[styleName]; ok {
		return resolved
	}

	resolved := sr.defaultStyle()
	resolved.Name = styleName

	if def, ok := sr.styles[styleName]; ok {
		resolved.Family = def.Family
		for _, name := range sr.buildInheritanceChain(styleName) {
			if d, ok := sr.styles[name]; ok {
				sr.applyStyleDef(resolved, d)
			}
		}
		for _, name := range sr.buildInheritanceChain(styleName) {
			if d, ok := sr.styles[name]; ok && d.DefaultOutlineLevel != "" {
				if level, err := strconv.Atoi(d.DefaultOutlineLevel); err == nil && level >= 1 && level <= 9 {
					resolved.IsHeading = true
					resolved.HeadingLevel = level
				}
			}
		}
	}

	if !resolved.IsHeading && styleName != "" {
		resolved.IsHeading, resolved.HeadingLevel = detectBuiltInHeading(styleName)
	}

	sr.resolved[styleName] = resolved
	return resolved
}

// ResolveText applies the character properties of a text style on top of
// the paragraph style base. An empty text style returns base unchanged.
func (sr *StyleResolver) ResolveText(base *ResolvedStyle, textStyle string) ResolvedStyle {
	out := *base
	if textStyle == "" {
		return out
	}
	for _, name := range sr.buildInheritanceChain(textStyle) {
		if def, ok := sr.styles[name]; ok && def.TextProps != nil {
			sr.applyTextProps(&out, def.TextProps)
		}
	}
	return out
}

// defaultStyle returns a copy of the document defaults.
func (sr *StyleResolver) defaultStyle() *ResolvedStyle {
	d := *sr.defaults
	return &d
}

// buildInheritanceChain returns style names from base to derived.
func (sr *StyleResolver) buildInheritanceChain(styleName string) []string {
	var chain []string
	visited := make(map[string]bool)

	current := styleName
	for current != "" && !visited[current] {
		visited[current] = true
		chain = append([]string{current}, chain...) // Prepend

		def, ok := sr.styles[current]
		if !ok {
			break
		}
		current = def.ParentStyleName
	}

	return chain
}

// applyStyleDef applies a style definition's properties to a resolved style.
func (sr *StyleResolver) applyStyleDef(resolved *ResolvedStyle, def *styleDefXML) {
	if ppr := def.ParagraphProps; ppr != nil {
		if ppr.MarginTop != "" {
			resolved.SpaceBefore = parseLength(ppr.MarginTop)
		}
		if ppr.MarginBottom != "" {
			resolved.SpaceAfter = parseLength(ppr.MarginBottom)
		}
	}
	if def.TextProps != nil {
		sr.applyTextProps(resolved, def.TextProps)
	}
}

func (sr *StyleResolver) applyTextProps(resolved *ResolvedStyle, tpr *textPropsXML) {
	if tpr.FontName != "" {
		resolved.FontName = tpr.FontName
	} else if tpr.FontFamily != "" {
		resolved.FontName = cleanFontFamily(tpr.FontFamily)
	}
	if size := strings.TrimSpace(tpr.FontSize); size != "" {
		if pct, ok := strings.CutSuffix(size, "%"); ok {
			if v, err := strconv.ParseFloat(pct, 64); err == nil && v > 0 {
				resolved.FontSize *= v / 100
			}
		} else if pt := parseLength(size); pt > 0 {
			resolved.FontSize = pt
		}
	}
	if tpr.FontWeight != "" {
		resolved.Bold = isBoldWeight(tpr.FontWeight)
		resolved.boldSet = true
	}
}

// isBoldWeight maps fo:font-weight to bold; numeric weights from 600 up
// count as bold.
func isBoldWeight(w string) bool {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "bold" || w == "bolder" {
		return true
	}
	n, err := strconv.Atoi(w)
	return err == nil && n >= 600
}

// detectBuiltInHeading checks for common heading style names.
func detectBuiltInHeading(styleName string) (bool, int) {
	name := strings.ToLower(strings.ReplaceAll(styleName, "_20_", " "))

	switch name {
	case "title":
		return true, 1
	case "subtitle":
		return true, 2
	}

	// "Heading", "Heading 1", "Heading_1", "heading2"
	if rest, ok := strings.CutPrefix(name, "heading"); ok {
		rest = strings.TrimLeft(rest, " _")
		if rest == "" {
			return true, 1
		}
		if level, err := strconv.Atoi(rest); err == nil && level >= 1 && level <= 9 {
			return true, level
		}
	}

	return false, 0
}

// parseLength parses an ODF length value to points.
// Supports: pt, in, cm, mm, px
func parseLength(s string) float64 {
	s = strings.TrimSpace(s)

	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' {
			break
		}
	}
	if i == 0 {
		return 0
	}

	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0
	}

	switch strings.ToLower(strings.TrimSpace(s[i:])) {
	case "in":
		return value * 72
	case "cm":
		return value * 28.3465
	case "mm":
		return value * 2.83465
	case "px":
		return value * 0.75 // 96 DPI
	case "%":
		return 0
	default:
		return value // pt or unitless
	}
}

// cleanFontFamily removes quotes from font family names.
func cleanFontFamily(family string) string {
	return strings.Trim(strings.TrimSpace(family), "'\"")
}

package text

import "strings"

// FontWeigher decides whether a font reference denotes a bold face
type FontWeigher interface {
	IsBold(fontRef string) bool
}

// NameWeigher detects bold fonts by a case-insensitive "bold" substring in
// the font's display name, e.g. "Helvetica-Bold" or "ABCDEF+Roboto-BoldItalic".
type NameWeigher struct{}

// IsBold implements FontWeigher
func (NameWeigher) IsBold(fontRef string) bool {
	return strings.Contains(strings.ToLower(fontRef), "bold")
}

// WeigherFunc adapts a plain function to the FontWeigher interface
type WeigherFunc func(fontRef string) bool

// IsBold implements FontWeigher
func (f WeigherFunc) IsBold(fontRef string) bool {
	return f(fontRef)
}

// IsBoldRun reports whether the run's font is bold according to w.
// A nil weigher falls back to NameWeigher.
func IsBoldRun(w FontWeigher, r TextRun) bool {
	if w == nil {
		w = NameWeigher{}
	}
	return w.IsBold(r.FontName)
}

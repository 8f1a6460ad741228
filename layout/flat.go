package layout

import "strings"

// FlatText returns the text of every run in line order, one run per output
// line. It performs no section or subsection segmentation.
func FlatText(lines []Line) string {
	var b strings.Builder
	first := true
	for _, l := range lines {
		for _, r := range l.Runs {
			if !first {
				b.WriteByte('\n')
			}
			b.WriteString(r.Text)
			first = false
		}
	}
	return b.String()
}

// JoinedText returns one output line per assembled line, with the runs of a
// line separated by a single space.
func JoinedText(lines []Line) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text())
	}
	return strings.Join(out, "\n")
}

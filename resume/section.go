package resume

import (
	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/layout"
)

// FindSection locates the target section by keyword priority.
//
// Every keyword is tried in order against every section name in discovery
// order, ignoring case. With MatchLast each match overwrites the previous
// selection, so the last matching (keyword, name) pair decides; with
// MatchFirst the search stops at the first match.
func FindSection(sections *layout.SectionMap, keywords []string, mode config.MatchMode) (string, []layout.Line, bool) {
	var name string
	found := false

	names := sections.Names()
	for _, kw := range keywords {
		for _, candidate := range names {
			if !config.ContainsFold(candidate, kw) {
				continue
			}
			name = candidate
			found = true
			if mode == config.MatchFirst {
				lines, _ := sections.Lines(name)
				return name, lines, true
			}
		}
	}

	if !found {
		return "", nil, false
	}
	lines, _ := sections.Lines(name)
	return name, lines, true
}

package resume

import "fmt"

// AdvisoryCode classifies a non-fatal parsing outcome
type AdvisoryCode string

const (
	// AdvisoryEmptyPage means the page held no text runs
	AdvisoryEmptyPage AdvisoryCode = "empty-page"

	// AdvisorySectionNotFound means no section name matched the keywords
	// of a target section
	AdvisorySectionNotFound AdvisoryCode = "section-not-found"

	// AdvisoryFieldUnresolved means no candidate scored above zero for a
	// field, which was left blank
	AdvisoryFieldUnresolved AdvisoryCode = "field-unresolved"
)

// Advisory describes a locally degraded part of the result
type Advisory struct {
	Code AdvisoryCode

	// Section is the target section ("work experience", "projects") or,
	// for unresolved fields, the matched section name
	Section string

	// Entry is the 0-based entry index for field advisories, -1 otherwise
	Entry int

	// Field names the unresolved field
	Field string
}

// String returns a human-readable description of the advisory
func (a Advisory) String() string {
	switch a.Code {
	case AdvisoryEmptyPage:
		return "page contains no text"
	case AdvisorySectionNotFound:
		return fmt.Sprintf("no %s section found", a.Section)
	case AdvisoryFieldUnresolved:
		return fmt.Sprintf("%s entry %d: could not determine %s", a.Section, a.Entry+1, a.Field)
	default:
		return string(a.Code)
	}
}

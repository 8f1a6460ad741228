package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/vitae/model"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"|", `\|`,
	"\r", "",
	"\n", " ",
)

// escapeMarkdown escapes characters that would change inline formatting.
func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(strings.TrimSpace(text))
}

// exportMarkdown writes one level-3 heading per entry. Blank fields are
// left out rather than rendered as empty lines.
func (e *Exporter) exportMarkdown(doc *model.ResumeDocument, w io.Writer) error {
	var sb strings.Builder

	if e.config.Title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(e.config.Title))
	}

	sb.WriteString("## Work Experience\n\n")
	if len(doc.WorkExperience) == 0 {
		sb.WriteString("_None found._\n\n")
	}
	for _, job := range doc.WorkExperience {
		e.markdownEntry(&sb, job.JobTitle, job.Company, job.Date, job.Bullets)
	}

	sb.WriteString("## Projects\n\n")
	if len(doc.Projects) == 0 {
		sb.WriteString("_None found._\n\n")
	}
	for _, p := range doc.Projects {
		e.markdownEntry(&sb, p.Title, "", p.Date, p.Bullets)
	}

	_, err := io.WriteString(w, strings.TrimRight(sb.String(), "\n")+"\n")
	return err
}

func (e *Exporter) markdownEntry(sb *strings.Builder, title, company, date string, bullets []string) {
	if title = escapeMarkdown(title); title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(sb, "### %s\n\n", title)

	var meta []string
	if c := escapeMarkdown(company); c != "" {
		meta = append(meta, "**"+c+"**")
	}
	if d := escapeMarkdown(date); d != "" {
		meta = append(meta, "*"+d+"*")
	}
	if len(meta) > 0 {
		sb.WriteString(strings.Join(meta, " · "))
		sb.WriteString("\n\n")
	}

	wrote := false
	for _, b := range bullets {
		if s := escapeMarkdown(e.stripGlyph(b)); s != "" {
			fmt.Fprintf(sb, "- %s\n", s)
			wrote = true
		}
	}
	if wrote {
		sb.WriteString("\n")
	}
}

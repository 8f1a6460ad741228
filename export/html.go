package export

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/vitae/model"
)

// exportHTML renders a standalone page. The page is assembled as a node
// tree and serialized by html.Render, which handles all escaping.
func (e *Exporter) exportHTML(doc *model.ResumeDocument, w io.Writer) error {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	page := element(atom.Html, nil)
	root.AppendChild(page)

	head := element(atom.Head, nil)
	head.AppendChild(element(atom.Meta, map[string]string{"charset": "utf-8"}))
	if e.config.Title != "" {
		head.AppendChild(element(atom.Title, nil, textNode(e.config.Title)))
	}
	page.AppendChild(head)

	body := element(atom.Body, nil)
	page.AppendChild(body)
	if e.config.Title != "" {
		body.AppendChild(element(atom.H1, nil, textNode(e.config.Title)))
	}

	work := element(atom.Section, map[string]string{"class": "work-experience"},
		element(atom.H2, nil, textNode("Work Experience")))
	for _, job := range doc.WorkExperience {
		work.AppendChild(e.htmlEntry(job.JobTitle, job.Company, job.Date, job.Bullets))
	}
	body.AppendChild(work)

	projects := element(atom.Section, map[string]string{"class": "projects"},
		element(atom.H2, nil, textNode("Projects")))
	for _, p := range doc.Projects {
		projects.AppendChild(e.htmlEntry(p.Title, "", p.Date, p.Bullets))
	}
	body.AppendChild(projects)

	if err := html.Render(w, root); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (e *Exporter) htmlEntry(title, company, date string, bullets []string) *html.Node {
	article := element(atom.Article, map[string]string{"class": "entry"},
		element(atom.H3, nil, textNode(title)))

	if company != "" {
		article.AppendChild(element(atom.P, map[string]string{"class": "company"}, textNode(company)))
	}
	if date != "" {
		article.AppendChild(element(atom.P, map[string]string{"class": "date"}, textNode(date)))
	}

	list := element(atom.Ul, nil)
	for _, b := range bullets {
		if s := e.stripGlyph(b); s != "" {
			list.AppendChild(element(atom.Li, nil, textNode(s)))
		}
	}
	if list.FirstChild != nil {
		article.AppendChild(list)
	}
	return article
}

// element builds an element node. Attributes are emitted in key order.
func element(a atom.Atom, attrs map[string]string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, key := range sortedKeys(attrs) {
		n.Attr = append(n.Attr, html.Attribute{Key: key, Val: attrs[key]})
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Package content holds the copy of the landing page. Documentation sections
// are written in Markdown and rendered to HTML once at startup.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"bootcamp-landing/pkg/sections"
)

//go:embed docs/*.md
var docsFS embed.FS

// Raw HTML in the Markdown sources is escaped (WithUnsafe is not set).
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldmarkHTML.WithXHTML()),
)

// Doc is one documentation section.
type Doc struct {
	Section sections.Section
	Eyebrow string
	Title   string
	Lead    string
	Body    template.HTML
}

type docSource struct {
	eyebrow, title, lead, file string
}

var docSources = map[sections.Section]docSource{
	sections.Introduction: {
		eyebrow: "Aperçu du Programme",
		title:   "Introduction au Bootcamp",
		lead: "Un programme intensif de 12 semaines conçu pour transformer les développeurs africains " +
			"en builders complets capables de construire, déployer et monétiser des applications modernes.",
		file: "docs/introduction.md",
	},
	sections.Pillars: {
		eyebrow: "Curriculum",
		title:   "Trois Piliers de Maîtrise",
		lead: "Notre approche est construite autour de trois piliers fondamentaux qui couvrent " +
			"toutes les compétences nécessaires pour devenir un builder moderne.",
		file: "docs/pillars.md",
	},
	sections.Benefits: {
		eyebrow: "Ce Que Vous Recevez",
		title:   "Écosystème Complet",
		lead: "Au-delà du contenu technique, vous bénéficiez d'un écosystème complet " +
			"de support, communauté et opportunités.",
		file: "docs/benefits.md",
	},
}

// Library is the rendered set of documentation sections.
type Library struct {
	docs map[sections.Section]Doc
}

// Load renders every documentation section.
func Load() (*Library, error) {
	lib := &Library{docs: make(map[sections.Section]Doc, len(docSources))}
	for section, src := range docSources {
		body, err := renderMarkdown(src.file)
		if err != nil {
			return nil, fmt.Errorf("error rendering %s: %w", section, err)
		}
		lib.docs[section] = Doc{
			Section: section,
			Eyebrow: src.eyebrow,
			Title:   src.title,
			Lead:    src.lead,
			Body:    body,
		}
	}
	return lib, nil
}

// Doc returns the rendered section. Register has no document.
func (l *Library) Doc(s sections.Section) (Doc, bool) {
	d, ok := l.docs[s]
	return d, ok
}

func renderMarkdown(file string) (template.HTML, error) {
	src, err := docsFS.ReadFile(file)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := mdRenderer.Convert(src, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Package renderer turns analysis results into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/folio"
)

//go:embed templates/*.md
var templates embed.FS

// allocationView is the data bound to the allocation templates. Values are
// pre-formatted so the templates stay free of formatting logic.
type allocationView struct {
	Rows  []allocationRowView
	Total string
}

type allocationRowView struct {
	Class string
	Value string
	Pct   string
}

// AllocationMarkdown renders an asset allocation to a markdown table.
func AllocationMarkdown(rows []folio.AssetAllocationRow) string {
	view := allocationView{}
	var total float64
	for _, r := range rows {
		total += r.Value
		view.Rows = append(view.Rows, allocationRowView{
			Class: r.Class,
			Value: eur(r.Value),
			Pct:   r.Pct.String(),
		})
	}
	view.Total = eur(total)

	partials := map[string]string{
		"allocation_total": "templates/allocation_total.md",
	}
	return renderTemplate("allocation", "templates/allocation.md", partials, view)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

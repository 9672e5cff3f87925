// Package renderer turns cambio views into markdown, using the templates embedded in
// the templates folder.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates is the templates folder.
var templates, _ = fs.Sub(templatesFS, "templates")

// RenderCountries renders the country picker.
func RenderCountries(c *Countries) string {
	partials := map[string]string{
		"countries_title": "countries_title.md",
		"countries_table": "countries_table.md",
	}
	return renderTemplate("countries", "countries.md", partials, c)
}

// RenderConversion renders a conversion result.
func RenderConversion(c *Conversion) string {
	return renderTemplate("conversion", "conversion.md", nil, c)
}

// RenderChart renders a rate chart. A table lists every day unless the chart is compact.
func RenderChart(c *Chart) string {
	partials := map[string]string{
		"chart_table": "chart_table.md",
	}
	return renderTemplate("chart", "chart.md", partials, c)
}

// RenderWatchlist renders the selected currencies.
func RenderWatchlist(w *Watchlist) string {
	partials := map[string]string{
		"watchlist_table": "watchlist_table.md",
	}
	if w.Base != "" {
		partials["watchlist_table"] = "watchlist_table_valued.md"
	}
	return renderTemplate("watchlist", "watchlist.md", partials, w)
}

// RenderCurrencies renders the convertible currencies.
func RenderCurrencies(c *Currencies) string {
	return renderTemplate("currencies", "currencies.md", nil, c)
}

// RenderQuotations renders a list of quotations.
func RenderQuotations(q *Quotations) string {
	return renderTemplate("quotations", "quotations.md", nil, q)
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
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
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

package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
)

//go:embed templates/*.md
var templates embed.FS

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"score": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"check": func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
	"label": func(d finanzas.Date) string { return d.Format(finanzas.MonthLabelFormat) },
}

// RenderIndex renders the Nauta Index and its components.
func RenderIndex(idx finanzas.NautaIndex) string {
	return renderTemplate("index", "index.md", nil, idx)
}

// RenderNetWorth renders a net worth breakdown.
func RenderNetWorth(nw finanzas.NetWorth) string {
	return renderTemplate("networth", "networth.md", nil, nw)
}

// RenderHistory renders the recorded net worth snapshots.
func RenderHistory(h History) string {
	return renderTemplate("history", "history.md", nil, h)
}

// RenderInsights renders insights in the given order.
func RenderInsights(insights []finanzas.Insight) string {
	return renderTemplate("insights", "insights.md", nil, insights)
}

// RenderComparison renders a month-over-month comparison.
func RenderComparison(cmp finanzas.MonthComparison) string {
	return renderTemplate("compare", "compare.md", nil, cmp)
}

// RenderProjection renders a cashflow projection.
func RenderProjection(months []finanzas.CashflowMonth) string {
	return renderTemplate("projection", "projection.md", nil, months)
}

// RenderRatios renders the financial ratios.
func RenderRatios(r finanzas.Ratios) string {
	return renderTemplate("ratios", "ratios.md", nil, r)
}

// RenderRates renders a table of exchange rates.
func RenderRates(r *finanzas.Rates) string {
	return renderTemplate("rates", "rates.md", nil, r)
}

// RenderReport renders every section of a report, for publishing.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"index":      "index.md",
		"networth":   "networth.md",
		"ratios":     "ratios.md",
		"insights":   "insights.md",
		"compare":    "compare.md",
		"projection": "projection.md",
		"history":    "history.md",
	}
	if len(r.History.Entries) == 0 {
		partials["history"] = ""
	}
	return renderTemplate("report", "report.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
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

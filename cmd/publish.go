package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/renderer"
	"github.com/google/subcommands"
)

type publishCmd struct {
	outputDir      string
	frontMatterTpl string
	date           string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates the full financial report as markdown and HTML" }

func (*publishCmd) Usage() string {
	return `publish [-o <dir>] [-frontmatter <file>] [-d <date>]

  Generates the report of every section (index, net worth, ratios, insights,
  comparison, projection and history) and saves it as report-<date>.md and
  report-<date>.html in the output directory.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
	f.StringVar(&c.date, "d", "0d", "Date of the report (defaults to today).")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	on, status := parseDay(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	books, data, status := DecodeData(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer books.Close()

	snapshots, err := finanzas.NetWorthHistory(books.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load net worth history: %v\n", err)
		return subcommands.ExitFailure
	}
	report := renderer.NewReport(data, books.Conv, books.Currency, on, snapshots)

	files, err := publish(c.outputDir, report, frontMatterTpl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, file := range files {
		fmt.Println(file)
	}
	return subcommands.ExitSuccess
}

// publish writes the markdown and HTML versions of report into dir and returns their paths.
func publish(dir string, report *renderer.Report, frontMatterTpl *template.Template) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	md := renderer.RenderReport(report)
	html, err := toHTML(md)
	if err != nil {
		return nil, fmt.Errorf("failed to convert report to HTML: %w", err)
	}

	// Generate frontmatter if template is provided
	if frontMatterTpl != nil {
		fm, err := renderFrontMatter(frontMatterTpl, report)
		if err != nil {
			return nil, fmt.Errorf("failed to render front matter for report %s: %w", report.Date, err)
		}
		md = fm + "\n" + md // Prepend front matter to markdown
	}

	name := filepath.Join(dir, "report-"+report.Date.String())
	files := []string{name + ".md", name + ".html"}
	for i, content := range []string{md, html} {
		if err := os.WriteFile(files[i], []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write file %s: %w", files[i], err)
		}
		log.Printf("Generated %s", files[i])
	}
	return files, nil
}

// toHTML converts GitHub flavored markdown to HTML.
func toHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderFrontMatter(tpl *template.Template, report *renderer.Report) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, report); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}

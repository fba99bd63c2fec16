package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal on stdout.
func printMarkdown(md string) { printMarkdownTo(os.Stdout, md) }

func printMarkdownTo(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("cannot create markdown renderer, printing raw markdown: %v", err)
		fmt.Fprintln(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown, printing raw markdown: %v", err)
		fmt.Fprintln(w, md)
		return
	}
	fmt.Fprint(w, out)
}

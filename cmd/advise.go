package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Khaaled22/finanzas-app-v5-sub000/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type adviseCmd struct {
	model string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "start an interactive session with the AI financial advisor" }
func (*adviseCmd) Usage() string {
	return `fin advise [question]

  Starts a chat with an AI advisor that reads your data. The question, if any, is
  asked first. Requires GEMINI_API_KEY. Type 'bye' to exit.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Model name (defaults to the advisor model of the configuration)")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := OpenBooks(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer books.Close()

	model := c.model
	if model == "" {
		model = books.Config.Advisor.Model
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(model, agent.Books{Store: books.Store, Conv: books.Conv, Currency: books.Currency})
	economist := agent.NewEconomist(model)
	a := agent.New(os.Stdout, os.Stdin, model, analyst, economist)
	a.Print = printMarkdownTo

	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

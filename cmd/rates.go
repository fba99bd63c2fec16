package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Khaaled22/finanzas-app-v5-sub000/rates"
	"github.com/Khaaled22/finanzas-app-v5-sub000/renderer"
	"github.com/google/subcommands"
)

type ratesCmd struct {
	base string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "fetch and display exchange rates" }
func (*ratesCmd) Usage() string {
	return `fin rates [-base <currency>]

  Fetches today's exchange rates from the configured rates url. Responses are cached
  for the day.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "", "Base currency (defaults to the rates base of the configuration)")
}

func (c *ratesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	base := c.base
	if base == "" {
		base = cfg.Rates.Base
	}

	r, err := rates.New(cfg.Rates.URL).Fetch(ctx, base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderRates(r))
	return subcommands.ExitSuccess
}

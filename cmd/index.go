package cmd

import (
	"context"
	"flag"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/renderer"
	"github.com/google/subcommands"
)

type indexCmd struct{}

func (*indexCmd) Name() string     { return "index" }
func (*indexCmd) Synopsis() string { return "display the Nauta Index, a 0-100 financial health score" }
func (*indexCmd) Usage() string {
	return `fin index

  Computes the Nauta Index from five components: emergency fund, savings rate,
  toxic debts, insurance and retirement. See 'fin topic index'.
`
}

func (*indexCmd) SetFlags(f *flag.FlagSet) {}

func (*indexCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, data, status := DecodeData(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer books.Close()

	printMarkdown(renderer.RenderIndex(finanzas.CalculateNautaIndex(data, books.Conv, books.Currency)))
	return subcommands.ExitSuccess
}

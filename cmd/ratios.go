package cmd

import (
	"context"
	"flag"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/renderer"
	"github.com/google/subcommands"
)

type ratiosCmd struct{}

func (*ratiosCmd) Name() string { return "ratios" }
func (*ratiosCmd) Synopsis() string {
	return "display debt-to-income, savings rate, debt service and emergency fund ratios"
}
func (*ratiosCmd) Usage() string {
	return `fin ratios

  Displays the financial ratios and a summary of the investments.
`
}

func (*ratiosCmd) SetFlags(f *flag.FlagSet) {}

func (*ratiosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, data, status := DecodeData(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer books.Close()

	printMarkdown(renderer.RenderRatios(finanzas.CalculateRatios(data, books.Conv, books.Currency)))
	return subcommands.ExitSuccess
}

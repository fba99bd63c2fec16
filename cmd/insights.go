package cmd

import (
	"context"
	"flag"
	"fmt"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/renderer"
	"github.com/google/subcommands"
)

type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display advice about the budget, most urgent first" }
func (*insightsCmd) Usage() string {
	return `fin insights

  Flags over budget categories, the savings rate and toxic debts.
`
}

func (*insightsCmd) SetFlags(f *flag.FlagSet) {}

func (*insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, data, status := DecodeData(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer books.Close()

	insights := finanzas.GenerateInsights(data, books.Conv, books.Currency)
	if len(insights) == 0 {
		fmt.Println("Nothing to report.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderInsights(insights))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/renderer"
	"github.com/google/subcommands"
)

type compareCmd struct {
	date string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare this month's transactions with last month's" }
func (*compareCmd) Usage() string {
	return `fin compare [-d <date>]

  Compares the total of the transactions of the month of <date> with the previous
  month.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "A day in the month to compare (defaults to today).")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := parseDay(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	books, data, status := DecodeData(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer books.Close()

	cmp := finanzas.CompareWithPreviousMonth(data.Transactions, books.Conv, books.Currency, on)
	printMarkdown(renderer.RenderComparison(cmp))
	return subcommands.ExitSuccess
}

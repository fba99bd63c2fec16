package cmd

import (
	"context"
	"flag"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/renderer"
	"github.com/google/subcommands"
)

type projectionCmd struct {
	date string
}

func (*projectionCmd) Name() string     { return "projection" }
func (*projectionCmd) Synopsis() string { return "project the cashflow over the next twelve months" }
func (*projectionCmd) Usage() string {
	return `fin projection [-d <date>]

  Projects income, budgeted expenses and debt payments month by month, starting
  with the month of <date>.
`
}

func (c *projectionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "A day in the first projected month (defaults to today).")
}

func (c *projectionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, status := parseDay(c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	books, data, status := DecodeData(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer books.Close()

	months := finanzas.ProjectCashflow(data.Categories, data.Debts, data.Ynab, books.Conv, books.Currency, on)
	printMarkdown(renderer.RenderProjection(months))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/renderer"
	"github.com/google/subcommands"
)

type netWorthCmd struct {
	save bool
}

func (*netWorthCmd) Name() string     { return "networth" }
func (*netWorthCmd) Synopsis() string { return "display the net worth: savings plus investments minus debts" }
func (*netWorthCmd) Usage() string {
	return `fin networth [-save]

  Computes the net worth in the display currency. With -save, today's net worth is
  recorded in the history, replacing any snapshot of the same day.
`
}

func (c *netWorthCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.save, "save", false, "Record today's net worth in the history")
}

func (c *netWorthCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, data, status := DecodeData(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	defer books.Close()

	nw := finanzas.CalculateNetWorth(data, books.Conv, books.Currency)
	printMarkdown(renderer.RenderNetWorth(nw))

	if !c.save {
		return subcommands.ExitSuccess
	}
	now := time.Now()
	if err := finanzas.SaveNetWorthSnapshot(books.Store, nw.Total, now); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving net worth snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved net worth snapshot for %s\n", finanzas.DateOf(now))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the recorded net worth snapshots" }
func (*historyCmd) Usage() string {
	return `fin history

  Displays the net worth snapshots recorded with 'fin networth -save', oldest first,
  with the change since the previous snapshot.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (*historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := OpenBooks(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer books.Close()

	snapshots, err := finanzas.NetWorthHistory(books.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(snapshots) == 0 {
		fmt.Println("No net worth snapshot yet, record one with 'fin networth -save'.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderHistory(renderer.NewHistory(snapshots)))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a JSON backup into the store" }
func (*importCmd) Usage() string {
	return `fin import <file.json>

  Replaces the content of the store with a JSON backup, as written by 'fin export'.
  Use - to read the backup from stdin.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import requires exactly one file")
		return subcommands.ExitUsageError
	}

	var r io.Reader = os.Stdin
	if name := f.Arg(0); name != "-" {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening backup: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}
	b, err := DecodeBackup(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	books, err := OpenBooks(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer books.Close()

	if err := WriteBackup(books.Store, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to the store: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d categories, %d transactions, %d debts, %d savings goals and %d investments\n",
		len(b.Categories), len(b.Transactions), len(b.Debts), len(b.SavingsGoals), len(b.Investments))
	return subcommands.ExitSuccess
}

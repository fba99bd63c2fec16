// Package cmd implements the fin CLI application to analyse personal finances.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/store"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&indexCmd{}, "health")
	c.Register(&netWorthCmd{}, "health")
	c.Register(&historyCmd{}, "health")
	c.Register(&ratiosCmd{}, "health")

	c.Register(&insightsCmd{}, "budget")
	c.Register(&compareCmd{}, "budget")
	c.Register(&projectionCmd{}, "budget")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&ratesCmd{}, "data")
	c.Register(&publishCmd{}, "data")

	c.Register(&adviseCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "finanzas.yaml", "Path to the configuration file (YAML)")
var displayCurrency = flag.String("c", "", "Display currency, overrides the configuration")

// Verbose enables log output.
var Verbose = flag.Bool("v", false, "Verbose output")

// Books is what a command works on: the user's store and how to display amounts.
type Books struct {
	Config   *Config
	Store    store.Store
	Conv     finanzas.Converter
	Currency string
}

// OpenBooks loads the configuration and opens its store.
func OpenBooks(ctx context.Context) (*Books, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	cur := cfg.DisplayCurrency
	if *displayCurrency != "" {
		cur = strings.ToUpper(*displayCurrency)
		if err := finanzas.ValidateCurrency(cur); err != nil {
			return nil, fmt.Errorf("invalid display currency: %w", err)
		}
	}

	s, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("could not open store: %w", err)
	}
	log.Printf("opened %q store, displaying %s", cfg.Store.Backend, cur)
	return &Books{Config: cfg, Store: s, Conv: cfg.Converter(ctx), Currency: cur}, nil
}

// Close releases the store.
func (b *Books) Close() error { return b.Store.Close() }

// Data loads every collection of the store.
func (b *Books) Data() (finanzas.Data, error) {
	data, err := finanzas.LoadData(b.Store)
	if err != nil {
		return finanzas.Data{}, fmt.Errorf("could not load data: %w", err)
	}
	return data, nil
}

// DecodeData opens the books and loads their data, reporting errors on stderr.
func DecodeData(ctx context.Context) (*Books, finanzas.Data, subcommands.ExitStatus) {
	books, err := OpenBooks(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, finanzas.Data{}, subcommands.ExitFailure
	}
	data, err := books.Data()
	if err != nil {
		books.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, finanzas.Data{}, subcommands.ExitFailure
	}
	return books, data, subcommands.ExitSuccess
}

// parseDay parses a -d flag value.
func parseDay(s string) (finanzas.Date, subcommands.ExitStatus) {
	on, err := finanzas.ParseDate(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return finanzas.Date{}, subcommands.ExitUsageError
	}
	return on, subcommands.ExitSuccess
}

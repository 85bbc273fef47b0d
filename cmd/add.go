package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add shares of a stock to the portfolio" }
func (*addCmd) Usage() string {
	return `hld add <symbol> <shares>

  Adds a whole, positive number of shares of <symbol> to the portfolio.
  A new symbol is looked up to record its company name.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: add requires a symbol and a number of shares.")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(strings.TrimSpace(f.Arg(0)))
	shares, err := ParseShares(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Add(symbol, shares); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	h, _ := store.Get(symbol)
	fmt.Printf("Added %s shares of %s (%s), now holding %s.\n", shares, symbol, h.CompanyName, h.Shares)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a stock from the portfolio" }
func (*removeCmd) Usage() string {
	return `hld remove <symbol>

  Removes the whole holding of <symbol>. Removing a symbol that is not held
  changes nothing.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: remove requires a symbol.")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(strings.TrimSpace(f.Arg(0)))

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	removed, err := store.Remove(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Printf("Stock %s not found in portfolio.\n", symbol)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Removed %s from portfolio.\n", symbol)
	return subcommands.ExitSuccess
}

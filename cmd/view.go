package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct {
	markdown bool
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display the portfolio at the latest close" }
func (*viewCmd) Usage() string {
	return `hld view [-markdown]

  Displays every holding at its latest close and the total portfolio value.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "markdown", false, "print raw markdown instead of rendering it")
}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	v, err := store.Valuation()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.ValuationMarkdown(v)
	if c.markdown {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

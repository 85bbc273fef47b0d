package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive menu to add, remove and view holdings (default)" }
func (*menuCmd) Usage() string {
	return `hld [menu]

  Starts the interactive menu. It is the default command.
  See 'hld topic menu'.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	m := NewMenu(store, os.Stdin, os.Stdout)
	m.Render = renderMarkdown
	if err := m.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const menuText = `
Stock Portfolio Tracker
1. Add Stock
2. Remove Stock
3. View Portfolio
4. Exit
`

// Menu is the interactive loop over a store.
type Menu struct {
	store *holdings.Store
	in    *bufio.Scanner
	out   io.Writer

	// Render turns the markdown portfolio view into terminal output.
	Render func(md string) string
}

// NewMenu returns a menu reading choices from in and writing to out.
func NewMenu(store *holdings.Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store:  store,
		in:     bufio.NewScanner(in),
		out:    out,
		Render: func(md string) string { return md },
	}
}

// Run loops until the user exits or the input ends.
//
// Invalid share counts are reported and the menu is shown again. Storage and
// market data errors end the loop and are returned.
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, menuText)
		choice, err := m.prompt("Enter your choice: ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = m.add()
		case "2":
			err = m.remove()
		case "3":
			err = m.view()
		case "4":
			fmt.Fprintln(m.out, "Exiting the program.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}

		if errors.Is(err, holdings.ErrInput) {
			fmt.Fprintf(m.out, "Error: %v\n", err)
			continue
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// prompt prints label and reads one line.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// endOfInput turns the end of the input into a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) add() error {
	symbol, err := m.prompt("Enter stock symbol: ")
	if err != nil {
		return err
	}
	input, err := m.prompt("Enter number of shares: ")
	if err != nil {
		return err
	}
	shares, err := ParseShares(input)
	if err != nil {
		return err
	}
	if err := m.store.Add(symbol, shares); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Added %s shares of %s.\n", shares, strings.ToUpper(symbol))
	return nil
}

func (m *Menu) remove() error {
	symbol, err := m.prompt("Enter stock symbol: ")
	if err != nil {
		return err
	}
	symbol = strings.ToUpper(symbol)
	removed, err := m.store.Remove(symbol)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Fprintf(m.out, "Stock %s not found in portfolio.\n", symbol)
		return nil
	}
	fmt.Fprintf(m.out, "Removed %s from portfolio.\n", symbol)
	return nil
}

func (m *Menu) view() error {
	v, err := m.store.Valuation()
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, m.Render(renderer.ValuationMarkdown(v)))
	return nil
}

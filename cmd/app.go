// Package cmd implements the CLI application to manage a holdings ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/holdings"
	"github.com/etnz/holdings/eodhd"
	"github.com/etnz/holdings/logger"
	"github.com/etnz/holdings/yahoo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "")

	c.Register(&addCmd{}, "holdings")
	c.Register(&removeCmd{}, "holdings")
	c.Register(&viewCmd{}, "holdings")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.csv", "Path to the portfolio file (CSV format)")
var logFile = flag.String("log-file", filepath.Join(os.TempDir(), "hld.log"), "Path to the log file, empty to disable file logging")
var Verbose = flag.Bool("v", false, "log market data queries and portfolio changes to stderr")

var marketFlag = flag.String("market", "yahoo", "market data source: yahoo or eodhd")
var eodhdAPIKey = flag.String("eodhd-api-key", "", "EODHD API key for -market=eodhd.\n If missing it will read the environment variable \""+eodhd.APIKeyEnv+"\". You can get one at https://eodhd.com/")

// newMarket returns the market data source used by the commands.
var newMarket = func() holdings.MarketData {
	if *marketFlag == "eodhd" {
		return eodhd.New(*eodhdAPIKey)
	}
	return yahoo.New()
}

// checkMarket validates the -market flag.
func checkMarket() error {
	switch *marketFlag {
	case "yahoo", "eodhd":
		return nil
	}
	return fmt.Errorf("unknown market data source %q, want yahoo or eodhd", *marketFlag)
}

// OpenStore opens the app portfolio file.
func OpenStore() (*holdings.Store, error) {
	if err := checkMarket(); err != nil {
		return nil, err
	}
	return holdings.Open(*portfolioFile, newMarket())
}

// SetupLogging installs the app logger. The returned function flushes it.
func SetupLogging() (func(), error) {
	l, err := logger.New(logger.Config{File: *logFile, Verbose: *Verbose})
	if err != nil {
		return nil, err
	}
	return logger.Install(l), nil
}

// renderMarkdown renders md for the terminal, falling back to md itself.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// printMarkdown prints md rendered for the terminal.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/holdings/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	// exits when invoked by the shell completion.
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if flag.NArg() == 0 {
		// the interactive menu is the default command.
		_ = flag.CommandLine.Parse(append(os.Args[1:], "menu"))
	}

	flush, err := cmd.SetupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	status := commander.Execute(context.Background())
	flush()
	os.Exit(int(status))
}

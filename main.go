package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/readables/internal/cli"
	"github.com/mrlokans/readables/internal/config"
	"github.com/mrlokans/readables/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	cfg := config.NewConfig()
	entrypoint.SetupLogging(cfg)

	// Without a command, behave like the classic demo: search the audiobook
	if len(os.Args) < 2 {
		if err := entrypoint.Run(cfg, Version, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "search":
		cmd = cli.NewSearchCommand()
	case "walkthrough":
		cmd = cli.NewWalkthroughCommand()
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [command] [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  search        Search a searchable book (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  walkthrough   Open, read, bookmark and close a book\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  FORMAT        Book searched when no command is given (default %q)\n", config.DefaultFormat)
	fmt.Fprintf(os.Stderr, "  VERBOSE       Log to stderr\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/readables/internal/config"
	"github.com/mrlokans/readables/internal/readables"
)

type SearchCommand struct {
	Format readables.Format
	Out    io.Writer
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{
		Format: readables.Format(config.DefaultFormat),
		Out:    os.Stdout,
	}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)

	format := fs.String("format", string(cmd.Format), "Book format to search (audiobook)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Open a searchable book and search it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s search\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search -format audiobook\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := readables.ParseFormat(*format)
	if err != nil {
		fs.Usage()
		return err
	}
	cmd.Format = f

	return nil
}

func (cmd *SearchCommand) Run() error {
	book, err := readables.New(cmd.Format, cmd.Out)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	searchable, ok := book.(readables.Searchable)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotSearchable, cmd.Format)
	}

	searchable.Search()
	return nil
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mrlokans/readables/internal/readables"
)

type WalkthroughCommand struct {
	Format readables.Format
	Search bool
	Out    io.Writer
}

func NewWalkthroughCommand() *WalkthroughCommand {
	return &WalkthroughCommand{
		Format: readables.FormatPaperback,
		Search: true,
		Out:    os.Stdout,
	}
}

func (cmd *WalkthroughCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("walkthrough", flag.ContinueOnError)

	format := fs.String("format", string(cmd.Format), "Book format to walk through (paperback, audiobook)")
	fs.BoolVar(&cmd.Search, "search", cmd.Search, "Also search the book when it supports search")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s walkthrough [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Open, read, bookmark and close a book.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s walkthrough -format paperback\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s walkthrough -format audiobook -search=false\n", os.Args[0])
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

func (cmd *WalkthroughCommand) Run() error {
	book, err := readables.New(cmd.Format, cmd.Out)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	book.Open()
	book.Read()
	book.Bookmark()

	if cmd.Search {
		if searchable, ok := book.(readables.Searchable); ok {
			searchable.Search()
		} else {
			log.Printf("Skipping search: %s does not support it", cmd.Format)
		}
	}

	book.Close()
	return nil
}

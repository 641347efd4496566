package entrypoint

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mrlokans/readables/internal/cli"
	"github.com/mrlokans/readables/internal/config"
	"github.com/mrlokans/readables/internal/readables"
)

// SetupLogging keeps standard output free of log lines. Logs go to stderr
// only when verbose is enabled.
func SetupLogging(cfg *config.Config) {
	if !cfg.Global.Verbose {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// Run searches the configured book, which is the audiobook unless FORMAT
// says otherwise.
func Run(cfg *config.Config, version string, out io.Writer) error {
	log.Printf("Starting Readables v%s", version)

	format, err := readables.ParseFormat(cfg.Reader.Format)
	if err != nil {
		return fmt.Errorf("invalid FORMAT: %w", err)
	}

	cmd := cli.NewSearchCommand()
	cmd.Format = format
	cmd.Out = out

	log.Printf("Searching the %s", format)
	return cmd.Run()
}

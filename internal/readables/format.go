package readables

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format identifies a kind of book.
type Format string

const (
	FormatPaperback Format = "paperback"
	FormatAudiobook Format = "audiobook"
)

// Formats lists every known format in display order.
var Formats = []Format{FormatPaperback, FormatAudiobook}

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// New builds the book for the given format. A nil writer means standard output.
func New(f Format, out io.Writer) (Readable, error) {
	switch f {
	case FormatPaperback:
		return NewPaperback(out), nil
	case FormatAudiobook:
		return NewAudiobook(out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// say writes a single line like "Opening the paperback".
func say(out io.Writer, verb string, f Format) {
	fmt.Fprintf(out, "%s the %s\n", verb, f)
}

func orStdout(out io.Writer) io.Writer {
	if out == nil {
		return os.Stdout
	}
	return out
}

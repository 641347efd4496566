package readables

import "io"

// Paperback can be read and bookmarked but has no search.
type Paperback struct {
	out io.Writer
}

func NewPaperback(out io.Writer) *Paperback {
	return &Paperback{out: orStdout(out)}
}

func (p *Paperback) Open()     { say(p.out, "Opening", FormatPaperback) }
func (p *Paperback) Close()    { say(p.out, "Closing", FormatPaperback) }
func (p *Paperback) Read()     { say(p.out, "Reading", FormatPaperback) }
func (p *Paperback) Bookmark() { say(p.out, "Bookmarking", FormatPaperback) }

package readables

import "io"

// Audiobook supports everything a Paperback does plus search.
type Audiobook struct {
	out io.Writer
}

func NewAudiobook(out io.Writer) *Audiobook {
	return &Audiobook{out: orStdout(out)}
}

func (a *Audiobook) Open()     { say(a.out, "Opening", FormatAudiobook) }
func (a *Audiobook) Close()    { say(a.out, "Closing", FormatAudiobook) }
func (a *Audiobook) Read()     { say(a.out, "Reading", FormatAudiobook) }
func (a *Audiobook) Bookmark() { say(a.out, "Bookmarking", FormatAudiobook) }
func (a *Audiobook) Search()   { say(a.out, "Searching", FormatAudiobook) }

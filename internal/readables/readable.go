// Package readables models the things a person can read.
//
// Capabilities are split into small interfaces so that a client only depends
// on the operations it actually calls. Every book can be opened, closed, read
// and bookmarked (Readable); only some can also be searched (Searchable).
package readables

// Readable is the capability set shared by every kind of book.
// Use this interface when you do not need to search.
type Readable interface {
	Open()
	Close()
	Read()
	Bookmark()
}

// Searchable extends Readable with search. Any Searchable value is also a
// Readable, so it can be handed to code that only reads.
type Searchable interface {
	Readable
	Search()
}

// Package interfaces documents the capability sets books can implement and
// holds the compile-time checks that tie each book type to them.
//
// # Capability Sets
//
//   - Readable: Open, Close, Read, Bookmark (internal/readables/readable.go)
//   - Searchable: Readable plus Search (internal/readables/readable.go)
//
// Code that only reads should accept a Readable. Accept a Searchable only
// when the caller really needs Search; a Readable reference never exposes it.
//
// # Adding a New Book Type
//
// To add, say, an e-book that can be searched:
//
//  1. Create the type in internal/readables/
//
//     type Ebook struct {
//         out io.Writer
//     }
//
//     func (e *Ebook) Open()     { say(e.out, "Opening", FormatEbook) }
//     func (e *Ebook) Close()    { say(e.out, "Closing", FormatEbook) }
//     func (e *Ebook) Read()     { say(e.out, "Reading", FormatEbook) }
//     func (e *Ebook) Bookmark() { say(e.out, "Bookmarking", FormatEbook) }
//     func (e *Ebook) Search()   { say(e.out, "Searching", FormatEbook) }
//
//  2. Register the format in format.go (Formats and New)
//
//  3. Add the check to checks.go:
//
//     var _ readables.Searchable = (*readables.Ebook)(nil)
//
// # Compile-Time Interface Checks
//
// Every book type must have a check so that a missing method fails the build
// instead of surfacing at call time:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces

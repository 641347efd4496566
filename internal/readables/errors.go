package readables

import "errors"

// ErrUnknownFormat indicates a format name that no book type implements
var ErrUnknownFormat = errors.New("unknown format")

package cli

import "errors"

// ErrNotSearchable indicates the chosen book has no Search capability
var ErrNotSearchable = errors.New("book does not support search")

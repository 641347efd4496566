package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that every book type satisfies the capability sets it claims,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/readables/internal/readables"
)

// =============================================================================
// Base capability set
// =============================================================================

// Readable implementations
var _ readables.Readable = (*readables.Paperback)(nil)
var _ readables.Readable = (*readables.Audiobook)(nil)

// =============================================================================
// Extended capability set
// =============================================================================

// Searchable implementations
var _ readables.Searchable = (*readables.Audiobook)(nil)

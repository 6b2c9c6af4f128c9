package namegen

import "errors"

// Package-specific errors
var (
	// ErrEmptyBank is returned by New when a word bank has no usable entries
	// after trimming. Sampling needs a valid index range, so construction is
	// the only place this can be caught.
	ErrEmptyBank = errors.New("name bank must not be empty")
)

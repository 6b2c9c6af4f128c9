package wordlist

import "errors"

// Package-specific errors
var (
	// ErrReadFile is returned when the word-list file cannot be read.
	ErrReadFile = errors.New("failed to read word list file")

	// ErrParseFile is returned when the file contents are not valid YAML.
	ErrParseFile = errors.New("failed to parse word list file")

	// ErrEmptyList is returned when a category has no usable entries after
	// trimming.
	ErrEmptyList = errors.New("word list category must not be empty")
)

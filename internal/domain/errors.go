package domain

import "errors"

var (
	// ErrEmptyCorpus is returned when an index is built from no entries.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrDuplicateKey is returned when a section identifier repeats in a corpus.
	ErrDuplicateKey = errors.New("duplicate section id")
	// ErrInvalidArgument marks malformed parameters or input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrGeneration wraps failures of the text generation service.
	ErrGeneration = errors.New("generation failed")
)

package core

import "errors"

var (
	// ErrLoad means the question bank could not be read or parsed. It is fatal.
	ErrLoad = errors.New("question bank unavailable")
	// ErrCorruptData means the persisted memories could not be decoded; the log falls back to empty.
	ErrCorruptData = errors.New("persisted memories are corrupt")
	// ErrValidation rejects an answer without changing any state.
	ErrValidation = errors.New("invalid answer")
)

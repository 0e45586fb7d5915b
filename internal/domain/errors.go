package domain

import "errors"

var (
	ErrMissingConfiguration = errors.New("missing manager configuration")
	ErrMissingConfigParam   = errors.New("missing config parameter")
	ErrMissingField         = errors.New("missing required field")
	ErrInvalidParams        = errors.New("invalid manager params")
	ErrLengthMismatch       = errors.New("length mismatch")
	ErrNoPersistedState     = errors.New("no persisted state")
)

package ports

import "errors"

// ErrLineTooLong is returned by a RequestSource for a single request above its
// size limit. The oversized request is discarded and reading can continue.
var ErrLineTooLong = errors.New("request line exceeds size limit")

type RequestSource interface {
	// Next returns the next non-blank request line, or io.EOF at end of input.
	Next() (string, error)
}

type ResponseSink interface {
	Write(response any) error
}

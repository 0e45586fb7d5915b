package application

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	MalformedPayload ErrorKind = iota + 1
	MissingConfiguration
	ManagerInitialization
	UnsupportedCommand
	CommandExecution
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedPayload:
		return "malformed_payload"
	case MissingConfiguration:
		return "missing_configuration"
	case ManagerInitialization:
		return "manager_initialization"
	case UnsupportedCommand:
		return "unsupported_command"
	case CommandExecution:
		return "command_execution"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// RequestError is a per-request failure. It is always reported to the caller
// as an error response; it never stops the loop.
type RequestError struct {
	Kind ErrorKind
	Err  error
}

func (e *RequestError) Error() string {
	return e.Message()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Message renders the text of the response's error field.
func (e *RequestError) Message() string {
	switch e.Kind {
	case MalformedPayload:
		return "Invalid JSON payload: " + e.detail()
	case MissingConfiguration:
		return "Missing manager configuration"
	case ManagerInitialization:
		return "Failed to initialize manager: " + e.detail()
	case UnsupportedCommand:
		return "Unsupported command: " + e.detail()
	default:
		return "Void manager error: " + e.detail()
	}
}

func (e *RequestError) detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newRequestError(kind ErrorKind, err error) *RequestError {
	return &RequestError{Kind: kind, Err: err}
}

// asRequestError classifies err, treating anything unclassified as a command
// execution failure.
func asRequestError(err error) *RequestError {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}
	return newRequestError(CommandExecution, err)
}

// recovered runs fn, converting a panic into an error.
func recovered(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return fn()
}

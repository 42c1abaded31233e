package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrMalformedBody    = errors.New("malformed response body")
	ErrNoConversation   = errors.New("no champion select conversation")
)

// TransportError means the LCU could not be reached at all. Unlike a bad
// status or body it is not recoverable for the session.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsFatal(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

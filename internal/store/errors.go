package store

import (
	"errors"
	"fmt"
)

// ErrCorruptBackend marks a backend whose own storage no longer parses, as
// opposed to a single stored value that does not decode.
var ErrCorruptBackend = errors.New("corrupt store")

// DecodeError reports stored state that is not a valid serialized résumé.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("corrupt stored resume: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// BackendError reports a failure of the underlying key-value backend.
type BackendError struct {
	Op    string
	Key   string
	Cause error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

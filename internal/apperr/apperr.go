// Package apperr defines the error taxonomy shared by all scholar packages
package apperr

import "fmt"

// Kind classifies an error so that callers can choose a recovery policy
// without matching on message text.
type Kind string

const (
	// InvalidState marks an operation attempted in a state that forbids it.
	// These are usage errors and must never be retried.
	InvalidState Kind = "invalid_state"
	// InvalidReference marks an operation referencing a subject or topic id
	// that does not resolve.
	InvalidReference Kind = "invalid_reference"
	// Persistence marks a failed write to the data store. Local state is not
	// rolled back; the caller may retry the specific write.
	Persistence Kind = "persistence"
	// Validation marks malformed input rejected before any state mutation.
	Validation Kind = "validation"
)

// Error is the base error type. Sentinel values are declared per package and
// formatted at the call site with Fmt.
type Error struct {
	base    *Error
	wrapped error
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Fmt returns a copy of e with its message interpolated. The copy remains
// matchable against the original sentinel with errors.Is.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		base:    e.root(),
		Kind:    e.Kind,
		Message: fmt.Sprintf(e.Message, args...),
	}
}

// Wrap returns a copy of e carrying an underlying cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		base:    e.root(),
		wrapped: err,
		Kind:    e.Kind,
		Message: e.Message + ": " + err.Error(),
	}
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

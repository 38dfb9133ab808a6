package apperr

import (
	"errors"
	"fmt"
	"testing"
)

var errNotFound = &Error{
	Kind:    InvalidReference,
	Message: "'%s' does not exist",
}

func TestFmtKeepsSentinelIdentity(t *testing.T) {
	err := errNotFound.Fmt("algebra")

	if err.Error() != "'algebra' does not exist" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	if !errors.Is(err, errNotFound) {
		t.Error("formatted copy must match its sentinel")
	}

	if err.Kind != InvalidReference {
		t.Errorf("kind not preserved: %q", err.Kind)
	}

	// a second-generation copy still matches the root sentinel
	if !errors.Is(err.Fmt(), errNotFound) {
		t.Error("re-derived copy must match the root sentinel")
	}
}

func TestWrapExposesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")

	base := &Error{Kind: Persistence, Message: "datastore write failed"}
	err := base.Wrap(cause)

	if !errors.Is(err, base) {
		t.Error("wrapped copy must match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("wrapped copy must expose its cause")
	}
}

func TestDistinctSentinelsDoNotMatch(t *testing.T) {
	other := &Error{Kind: InvalidReference, Message: "'%s' does not exist"}

	if errors.Is(errNotFound.Fmt("x"), other) {
		t.Error("sentinels with identical text must remain distinct")
	}
}

package timer

import "github.com/ayoisaiah/scholar/internal/apperr"

var (
	errSessionInProgress = &apperr.Error{
		Kind:    apperr.InvalidState,
		Message: "a session is already in progress: stop it before starting another",
	}

	errNoSession = &apperr.Error{
		Kind:    apperr.InvalidState,
		Message: "no session is in progress",
	}

	errNotRunning = &apperr.Error{
		Kind:    apperr.InvalidState,
		Message: "the session is not running",
	}

	errNotPaused = &apperr.Error{
		Kind:    apperr.InvalidState,
		Message: "the session is not paused",
	}

	errInvalidSessionType = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "'%s' is not a valid session type: try focus, break, manual, or wasted",
	}

	errEndBeforeStart = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "the session end time cannot precede its start time",
	}
)

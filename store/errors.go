package store

import "github.com/ayoisaiah/scholar/internal/apperr"

var (
	errScholarRunning = &apperr.Error{
		Kind:    apperr.Persistence,
		Message: "is scholar already running? Only one instance can be active at a time",
	}

	// ErrSubjectNotFound is returned when a subject id or name does not
	// resolve to a stored record.
	ErrSubjectNotFound = &apperr.Error{
		Kind:    apperr.InvalidReference,
		Message: "subject '%s' does not exist",
	}

	// ErrTopicNotFound is returned when a topic id does not resolve within
	// its subject.
	ErrTopicNotFound = &apperr.Error{
		Kind:    apperr.InvalidReference,
		Message: "topic '%s' does not exist",
	}

	// ErrGoalNotFound is returned when a goal id does not resolve.
	ErrGoalNotFound = &apperr.Error{
		Kind:    apperr.InvalidReference,
		Message: "goal '%s' does not exist",
	}

	errWriteFailed = &apperr.Error{
		Kind:    apperr.Persistence,
		Message: "datastore write failed",
	}
)

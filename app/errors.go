package app

import (
	"github.com/ayoisaiah/scholar/internal/apperr"
)

var (
	errSubjectRequired = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "a subject name is required",
	}

	errSubjectExists = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "a subject named '%s' already exists",
	}

	errTopicArgs = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "a subject name and a topic name are required",
	}

	errTopicExists = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "topic '%s' already exists in '%s'",
	}

	errInvalidDuration = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "'%s' is not a valid duration: try values like '45m' or '1h30m'",
	}

	errInvalidProgress = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "'%d' is not a valid mastery value: use 0 to 100",
	}

	errInvalidGoalNumber = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "'%s' does not match a goal: run 'scholar goal list' for numbers",
	}

	errImportFileRequired = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "the path to a snapshot file is required",
	}
)

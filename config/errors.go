package config

import "github.com/ayoisaiah/scholar/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "config option error",
	}

	errInvalidTarget = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "invalid focus target: %s (expected a duration such as 25m or 1h30m)",
	}

	errTargetOutOfRange = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "focus target must be between %v and %v",
	}

	errInvalidPeriod = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "please provide a valid time period",
	}

	errInvalidStartDate = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "please provide a valid start date",
	}

	errInvalidDateRange = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "the start time must be earlier than the end time",
	}

	errUnparseableDate = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "unable to interpret '%s' as a date",
	}
)

package goal

import (
	"github.com/ayoisaiah/scholar/internal/apperr"
)

var (
	errInvalidGoalType = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "'%s' is not a valid goal type: try daily, weekly, or monthly",
	}

	errInvalidGoalTarget = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "the goal target must be greater than zero",
	}
)

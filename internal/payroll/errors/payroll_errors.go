package payrollerrors

import (
	"net/http"

	"hr-ops/internal/shared/apperror"
)

var (
	ErrInvalidHoursWorked = apperror.New(
		apperror.CodeInvalidInput,
		"Hours worked must be a number",
		http.StatusBadRequest,
	)
	ErrRateUnavailable = apperror.New(
		apperror.CodeInternalError,
		"Hourly rate could not be determined",
		http.StatusInternalServerError,
	)
)

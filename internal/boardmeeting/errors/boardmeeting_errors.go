package boardmeetingerrors

import (
	"net/http"

	"hr-ops/internal/shared/apperror"
)

var (
	ErrMeetingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Board meeting not found",
		http.StatusNotFound,
	)
	ErrInvalidMeetingID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid meeting ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD HH:MM:SS",
		http.StatusBadRequest,
	)
)

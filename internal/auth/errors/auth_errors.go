package autherrors

import (
	"net/http"

	"hr-ops/internal/shared/apperror"
)

var (
	// One generic failure for unknown user and wrong password alike,
	// so a login attempt cannot probe which accounts exist.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrSessionIssueFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not establish a session",
		http.StatusInternalServerError,
	)
)

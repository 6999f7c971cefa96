package employeeerrors

import (
	"net/http"

	"hr-ops/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeNumberTaken = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists",
		http.StatusConflict,
	)
	ErrEmployeeNumberExhausted = apperror.New(
		apperror.CodeConflict,
		"Could not allocate a unique employee number",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid time format, expected YYYY-MM-DD HH:MM:SS",
		http.StatusBadRequest,
	)
)

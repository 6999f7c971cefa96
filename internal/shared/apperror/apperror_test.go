package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hr-ops/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error passes through", func(t *testing.T) {
		err := apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Equal(t, "Employee not found", httpErr.Message)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		appErr := apperror.Wrap(errors.New("pq: relation missing"),
			apperror.CodeInternalError, "Could not load data", http.StatusInternalServerError)
		err := fmt.Errorf("loading dashboard: %w", appErr)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Could not load data", httpErr.Message)
	})

	t.Run("unknown errors collapse to a generic 500", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("dial tcp 10.0.0.5:5432: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "10.0.0.5")
	})
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type form struct {
		StartTime string `form:"start_time" binding:"required"`
		EndTime   string `form:"end_time" binding:"required"`
	}

	t.Run("required field", func(t *testing.T) {
		err := v.Struct(form{EndTime: "2026-08-03 17:00:00"})
		require.Error(t, err)

		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		require.ErrorAs(t, mapped, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, "Start Time is required", appErr.Message)
	})

	t.Run("non-validator error", func(t *testing.T) {
		mapped := apperror.MapValidationError(errors.New("unexpected EOF"))

		var appErr *apperror.AppError
		require.ErrorAs(t, mapped, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})
}

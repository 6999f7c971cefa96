package payroll

import (
	"net/http"

	"hr-ops/internal/middleware"
	"hr-ops/internal/shared/apperror"
	"hr-ops/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	flash   *flash.Store
	logger  *zap.Logger
}

func NewHandler(service Service, flashStore *flash.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, flash: flashStore, logger: l}
}

// Process handles POST /payroll/process.
func (h *Handler) Process(c *gin.Context) {
	var req ProcessPayrollRequest
	if err := c.ShouldBind(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		h.flash.Push(c.Request.Context(), middleware.GetFlashID(c), httpErr.Message)
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	if _, err := h.service.Process(c.Request.Context(), req); err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("process payroll failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		h.flash.Push(c.Request.Context(), middleware.GetFlashID(c), httpErr.Message)
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

package employee

import (
	"context"
	"net/http"

	"hr-ops/internal/middleware"
	"hr-ops/internal/shared/apperror"
	"hr-ops/internal/shared/flash"
	"hr-ops/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PayrollHistorySource supplies past payroll runs for the employee
// page; satisfied by the payroll module's history adapter.
type PayrollHistorySource interface {
	HistoryFor(ctx context.Context, employeeID string) ([]PayrollRecord, error)
}

type Handler struct {
	service Service
	history PayrollHistorySource
	flash   *flash.Store
	logger  *zap.Logger
}

func NewHandler(service Service, flashStore *flash.Store, history PayrollHistorySource, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, history: history, flash: flashStore, logger: l}
}

// flashAndRedirect surfaces a failure as a one-shot message on the
// page the user came from. No mutation has happened by this point.
func (h *Handler) flashAndRedirect(c *gin.Context, err error, backTo string) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	h.flash.Push(c.Request.Context(), middleware.GetFlashID(c), httpErr.Message)
	c.Redirect(http.StatusSeeOther, backTo)
}

// Create handles POST /employee/create.
func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.flashAndRedirect(c, apperror.MapValidationError(err), "/dashboard")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		h.flashAndRedirect(c, err, "/dashboard")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// View handles GET /employee/:id.
func (h *Handler) View(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	view := ViewResponse{EmployeeResponse: resp}
	if h.history != nil {
		records, err := h.history.HistoryFor(c.Request.Context(), resp.ID)
		if err != nil {
			// The page still renders without its payroll section.
			h.logger.Warn("payroll history load failed",
				zap.String("employee_id", resp.ID),
				zap.Error(err),
			)
		} else {
			view.PayrollHistory = records
		}
	}

	msgs := h.flash.Pop(c.Request.Context(), middleware.GetFlashID(c))
	response.Render(c, http.StatusOK, view, msgs)
}

// LogTime handles POST /employee/:id/log_time.
func (h *Handler) LogTime(c *gin.Context) {
	id := c.Param("id")
	backTo := "/employee/" + id

	var req LogTimeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.flashAndRedirect(c, apperror.MapValidationError(err), backTo)
		return
	}

	if _, err := h.service.LogTime(c.Request.Context(), id, req); err != nil {
		h.flashAndRedirect(c, err, backTo)
		return
	}

	c.Redirect(http.StatusSeeOther, backTo)
}

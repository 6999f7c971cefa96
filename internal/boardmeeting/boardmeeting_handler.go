package boardmeeting

import (
	"net/http"

	"hr-ops/internal/middleware"
	"hr-ops/internal/shared/apperror"
	"hr-ops/internal/shared/flash"
	"hr-ops/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	flash   *flash.Store
	logger  *zap.Logger
}

func NewHandler(service Service, flashStore *flash.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("boardmeeting.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("boardmeeting.handler")
	}
	return &Handler{service: service, flash: flashStore, logger: l}
}

func (h *Handler) flashAndRedirect(c *gin.Context, err error, backTo string) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("board meeting request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	h.flash.Push(c.Request.Context(), middleware.GetFlashID(c), httpErr.Message)
	c.Redirect(http.StatusSeeOther, backTo)
}

// Create handles POST /board/meeting/create.
func (h *Handler) Create(c *gin.Context) {
	var req CreateMeetingRequest
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

// View handles GET /board/meeting/:id.
func (h *Handler) View(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	msgs := h.flash.Pop(c.Request.Context(), middleware.GetFlashID(c))
	response.Render(c, http.StatusOK, resp, msgs)
}

// RecordMinutes handles POST /board/meeting/:id/record_minutes.
func (h *Handler) RecordMinutes(c *gin.Context) {
	id := c.Param("id")
	backTo := "/board/meeting/" + id

	var req RecordMinutesRequest
	if err := c.ShouldBind(&req); err != nil {
		h.flashAndRedirect(c, apperror.MapValidationError(err), backTo)
		return
	}

	if _, err := h.service.RecordMinutes(c.Request.Context(), id, req); err != nil {
		h.flashAndRedirect(c, err, backTo)
		return
	}

	c.Redirect(http.StatusSeeOther, backTo)
}

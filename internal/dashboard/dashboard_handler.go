package dashboard

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
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, flash: flashStore, logger: l}
}

// Show handles GET /dashboard.
func (h *Handler) Show(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Error("dashboard summary failed", zap.String("code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	msgs := h.flash.Pop(c.Request.Context(), middleware.GetFlashID(c))
	response.Render(c, http.StatusOK, summary, msgs)
}

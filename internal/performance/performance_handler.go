package performance

import (
	"net/http"
	"strconv"
	"strings"

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
	l := zap.L().Named("performance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("performance.handler")
	}
	return &Handler{service: service, flash: flashStore, logger: l}
}

// Create handles POST /performance/create. Rating fields arrive as
// form keys prefixed "rating_", e.g. rating_quality=4.5.
func (h *Handler) Create(c *gin.Context) {
	var req CreatePerformanceRequest
	if err := c.ShouldBind(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		h.flash.Push(c.Request.Context(), middleware.GetFlashID(c), httpErr.Message)
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	req.Ratings = parseRatings(c)

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("create performance failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		h.flash.Push(c.Request.Context(), middleware.GetFlashID(c), httpErr.Message)
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func parseRatings(c *gin.Context) map[string]float64 {
	_ = c.Request.ParseForm()
	var ratings map[string]float64
	for key, vals := range c.Request.PostForm {
		name, ok := strings.CutPrefix(key, "rating_")
		if !ok || name == "" || len(vals) == 0 {
			continue
		}
		score, err := strconv.ParseFloat(vals[0], 64)
		if err != nil {
			continue
		}
		if ratings == nil {
			ratings = make(map[string]float64)
		}
		ratings[name] = score
	}
	return ratings
}

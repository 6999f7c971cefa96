package dashboard

import (
	"hr-ops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/dashboard", middleware.SessionRequired(), h.Show)
}

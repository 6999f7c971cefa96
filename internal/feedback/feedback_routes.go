package feedback

import (
	"hr-ops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	fbs := r.Group("/feedback")
	fbs.Use(middleware.SessionRequired())
	{
		fbs.POST("/create", h.Create)
	}
}

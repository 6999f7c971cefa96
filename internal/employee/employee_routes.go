package employee

import (
	"hr-ops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	employees := r.Group("/employee")
	employees.Use(middleware.SessionRequired())
	{
		employees.POST("/create", h.Create)
		employees.GET("/:id", h.View)
		employees.POST("/:id/log_time", h.LogTime)
	}
}

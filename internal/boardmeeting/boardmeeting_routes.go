package boardmeeting

import (
	"hr-ops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	meetings := r.Group("/board/meeting")
	meetings.Use(middleware.SessionRequired())
	{
		meetings.POST("/create", h.Create)
		meetings.GET("/:id", h.View)
		meetings.POST("/:id/record_minutes", h.RecordMinutes)
	}
}

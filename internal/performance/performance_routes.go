package performance

import (
	"hr-ops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	perfs := r.Group("/performance")
	perfs.Use(middleware.SessionRequired())
	{
		perfs.POST("/create", h.Create)
	}
}

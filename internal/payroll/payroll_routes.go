package payroll

import (
	"hr-ops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	payrolls := r.Group("/payroll")
	payrolls.Use(middleware.SessionRequired())
	{
		payrolls.POST("/process", h.Process)
	}
}

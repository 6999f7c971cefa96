package auth

import (
	"hr-ops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/login", handler.LoginPage)
	r.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
	r.GET("/logout", middleware.SessionRequired(), handler.Logout)
}

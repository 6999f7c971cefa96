package auth

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
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, flash: flashStore, logger: l}
}

// Login handles POST /login. Success binds a session cookie and
// redirects to the dashboard; any failure flashes one generic message
// and redirects back to the login page.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		appErr := apperror.ToHTTP(apperror.MapValidationError(err))
		h.flash.Push(c.Request.Context(), middleware.GetFlashID(c), appErr.Message)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.flash.Push(c.Request.Context(), middleware.GetFlashID(c), httpErr.Message)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// LoginPage handles GET /login: the data a login template would need,
// plus any pending flash.
func (h *Handler) LoginPage(c *gin.Context) {
	msgs := h.flash.Pop(c.Request.Context(), middleware.GetFlashID(c))
	response.Render(c, http.StatusOK, gin.H{"page": "login"}, msgs)
}

// Logout clears the session cookie and returns to the login page.
func (h *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusSeeOther, "/login")
}

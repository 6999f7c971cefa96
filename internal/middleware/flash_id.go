package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const FlashCookieName = "flash_id"

// FlashID guarantees every visitor carries a flash cookie, so even a
// failed login (no session yet) can queue a flash for the next page.
func FlashID() gin.HandlerFunc {
	return func(c *gin.Context) {
		fid, err := c.Cookie(FlashCookieName)
		if err != nil || fid == "" {
			fid = uuid.New().String()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     FlashCookieName,
				Value:    fid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(FlashCookieName, fid)
		c.Next()
	}
}

// GetFlashID reads the flash cookie id resolved by FlashID.
func GetFlashID(c *gin.Context) string {
	return c.GetString(FlashCookieName)
}

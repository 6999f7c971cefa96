package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-ops/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFlashID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(got *string) *gin.Engine {
		r := gin.New()
		r.GET("/", middleware.FlashID(), func(c *gin.Context) {
			*got = middleware.GetFlashID(c)
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("issues a cookie to new visitors", func(t *testing.T) {
		var got string
		r := newRouter(&got)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, got)
		res := w.Result()
		defer res.Body.Close()

		var issued string
		for _, ck := range res.Cookies() {
			if ck.Name == middleware.FlashCookieName {
				issued = ck.Value
			}
		}
		assert.Equal(t, got, issued)
	})

	t.Run("reuses an existing cookie", func(t *testing.T) {
		fid := uuid.NewString()
		var got string
		r := newRouter(&got)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.FlashCookieName, Value: fid})
		r.ServeHTTP(w, req)

		assert.Equal(t, fid, got)
	})
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/login", middleware.RateLimitByIP(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}

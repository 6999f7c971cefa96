package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-ops/internal/auth"
	autherrors "hr-ops/internal/auth/errors"
	"hr-ops/internal/middleware"
	"hr-ops/internal/shared/flash"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	LoginFn     func(ctx context.Context, username, password string) (string, error)
	SeedAdminFn func(ctx context.Context, username, password string) error
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return f.LoginFn(ctx, username, password)
}
func (f *fakeAuthService) SeedAdmin(ctx context.Context, username, password string) error {
	return f.SeedAdminFn(ctx, username, password)
}

func newLoginContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c, w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer res.Body.Close()
	for _, ck := range res.Cookies() {
		if ck.Name == middleware.SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success sets session cookie and redirects to dashboard", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, username, password string) (string, error) {
				assert.Equal(t, "admin", username)
				assert.Equal(t, "s3cret", password)
				return "signed-token", nil
			},
		}
		h := auth.NewHandler(svc, flash.NewStore(nil))

		c, w := newLoginContext(t, "username=admin&password=s3cret")
		h.Login(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))

		ck := sessionCookie(t, w)
		require.NotNil(t, ck)
		assert.Equal(t, "signed-token", ck.Value)
		assert.True(t, ck.HttpOnly)
	})

	t.Run("bad credentials redirect back to login", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, username, password string) (string, error) {
				return "", autherrors.ErrInvalidCredentials
			},
		}
		h := auth.NewHandler(svc, flash.NewStore(nil))

		c, w := newLoginContext(t, "username=admin&password=wrong")
		h.Login(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Nil(t, sessionCookie(t, w))
	})

	t.Run("missing fields redirect back to login", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, username, password string) (string, error) {
				t.Fatal("service must not be called on binding failure")
				return "", nil
			},
		}
		h := auth.NewHandler(svc, flash.NewStore(nil))

		c, w := newLoginContext(t, "username=admin")
		h.Login(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	h := auth.NewHandler(&fakeAuthService{}, flash.NewStore(nil))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/logout", nil)

	h.Logout(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	ck := sessionCookie(t, w)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Equal(t, -1, ck.MaxAge)
}

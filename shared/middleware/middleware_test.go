package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"story-server/shared/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fakeVerifier(ctx context.Context, token string) (*models.Claims, error) {
	switch token {
	case "alice-token":
		return &models.Claims{Username: "alice", Roles: []string{"user"}}, nil
	case "expired":
		return nil, models.ErrTokenExpired
	default:
		return nil, models.ErrTokenInvalid
	}
}

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/who", mw, func(c *gin.Context) {
		ctxUser, _ := models.GetUsernameFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"actor": ActorFromGin(c), "ctx": ctxUser})
	})
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := newRouter(RequireAuth(fakeVerifier, zap.NewNop()))

	w := do(r, "Bearer alice-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"actor":"alice","ctx":"alice"}`, w.Body.String())

	w = do(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")

	w = do(r, "Token alice-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestOptionalAuth(t *testing.T) {
	r := newRouter(OptionalAuth(fakeVerifier, zap.NewNop()))

	w := do(r, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"actor":"","ctx":""}`, w.Body.String())

	w = do(r, "bearer alice-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"actor":"alice","ctx":"alice"}`, w.Body.String())

	w = do(r, "Bearer forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestZapLoggingMiddlewareForGin(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(ZapLoggingMiddlewareForGin(zap.New(core)))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, 0, logs.Len())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/missing?x=1", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Client error", entry.Message)
	assert.Equal(t, "/missing?x=1", entry.ContextMap()["path"])
	assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"story-server/shared/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier checks a bearer token and returns its claims.
// Errors are models.ErrTokenInvalid, models.ErrTokenExpired or models.ErrTokenMalformed.
type TokenVerifier func(ctx context.Context, tokenString string) (*models.Claims, error)

// ActorKey is the gin context key holding the verified username.
const ActorKey = "username"

// RequireAuth rejects requests without a valid bearer token with 401.
// On success the username is stored in the gin context and in the request context.
func RequireAuth(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("AuthMiddleware")
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			log.Warn("Authorization header missing or malformed", zap.String("path", c.Request.URL.Path))
			abortUnauthenticated(c, models.ErrUnauthenticated)
			return
		}
		claims, err := verifier(c.Request.Context(), tokenString)
		if err != nil {
			log.Warn("Token verification failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			abortUnauthenticated(c, err)
			return
		}
		setActor(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the actor when a valid token is present and otherwise
// lets the request through as anonymous. A malformed or expired token is still 401.
func OptionalAuth(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("AuthMiddleware")
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthenticated(c, models.ErrTokenMalformed)
			return
		}
		claims, err := verifier(c.Request.Context(), tokenString)
		if err != nil {
			log.Warn("Optional token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			abortUnauthenticated(c, err)
			return
		}
		setActor(c, claims)
		c.Next()
	}
}

// ActorFromGin returns the verified username, or "" for anonymous requests.
func ActorFromGin(c *gin.Context) string {
	return c.GetString(ActorKey)
}

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func setActor(c *gin.Context, claims *models.Claims) {
	actor := claims.Actor()
	c.Set(ActorKey, actor)
	ctx := models.WithUsername(c.Request.Context(), actor)
	ctx = context.WithValue(ctx, models.RolesContextKey, claims.Roles)
	c.Request = c.Request.WithContext(ctx)
}

func abortUnauthenticated(c *gin.Context, err error) {
	resp := models.ErrorResponse{Code: models.ErrCodeTokenInvalid, Message: "Invalid token"}
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		resp = models.ErrorResponse{Code: models.ErrCodeUnauthenticated, Message: "Authentication required"}
	case errors.Is(err, models.ErrTokenExpired):
		resp = models.ErrorResponse{Code: models.ErrCodeTokenExpired, Message: "Token expired"}
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}

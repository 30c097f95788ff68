package handler

import (
	"fmt"
	"net/http"
	"time"

	"story-server/shared/middleware"
	"story-server/shared/models"

	rateli "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewSocialRateLimiter limits like, favorite and comment writes to perMinute per actor.
// A nil client keeps the counters in process memory.
func NewSocialRateLimiter(client *redis.Client, perMinute uint, logger *zap.Logger) gin.HandlerFunc {
	var store rateli.Store
	if client != nil {
		store = rateli.RedisStore(&rateli.RedisOptions{
			RedisClient: client,
			Rate:        time.Minute,
			Limit:       perMinute,
		})
	} else {
		store = rateli.InMemoryStore(&rateli.InMemoryOptions{
			Rate:  time.Minute,
			Limit: perMinute,
		})
	}

	log := logger.Named("RateLimiter")
	return rateli.RateLimiter(store, &rateli.Options{
		ErrorHandler: func(c *gin.Context, info rateli.Info) {
			log.Warn("Rate limit exceeded",
				zap.String("actor", middleware.ActorFromGin(c)),
				zap.String("clientIP", c.ClientIP()),
				zap.Time("resetTime", info.ResetTime),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Code:    models.ErrCodeTooManyRequests,
				Message: fmt.Sprintf("Too many requests. Try again in %s", time.Until(info.ResetTime).Round(time.Second)),
			})
		},
		KeyFunc: socialRateKey,
	})
}

// socialRateKey prefers the verified actor and falls back to the client IP.
func socialRateKey(c *gin.Context) string {
	if actor := middleware.ActorFromGin(c); actor != "" {
		return "user:" + actor
	}
	return "ip:" + c.ClientIP()
}

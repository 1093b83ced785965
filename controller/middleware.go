package controller

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error)
}

// RateLimit allows limit requests per client IP in every window.
// Requests pass when the limiter itself fails.
func RateLimit(rl RateLimiter, prefix string, limit int, window time.Duration) gin.HandlerFunc {
	if rl == nil || limit <= 0 {
		return func(ctx *gin.Context) {
			ctx.Next()
		}
	}

	return func(ctx *gin.Context) {
		allowed, count, err := rl.Allow(ctx.Request.Context(), prefix+":"+ctx.ClientIP(), limit, window)
		if err != nil {
			log.Warn().Err(err).Msg("Rate limit check failed")
			ctx.Next()
			return
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		ctx.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		ctx.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		ctx.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(window).Unix(), 10))

		if !allowed {
			ctx.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			respondTooManyRequests(ctx, "Rate limit exceeded")
			return
		}

		ctx.Next()
	}
}

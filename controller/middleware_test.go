package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLimiter struct {
	counts map[string]int
	err    error
}

func (l *fakeLimiter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, int, error) {
	if l.err != nil {
		return false, 0, l.err
	}
	l.counts[key]++
	return l.counts[key] <= limit, l.counts[key], nil
}

func rateLimitedRouter(rl RateLimiter, limit int) *gin.Engine {
	r := gin.New()
	r.GET("/", RateLimit(rl, "test", limit, time.Minute), func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	return r
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:4321"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	limiter := &fakeLimiter{counts: map[string]int{}}
	r := rateLimitedRouter(limiter, 2)

	w := serve(r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = serve(r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = serve(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "TOO_MANY_REQUESTS", string(decode(t, w).Error.Code))

	assert.Equal(t, 3, limiter.counts["test:192.0.2.1"])
}

func TestRateLimit_LimiterFailurePasses(t *testing.T) {
	r := rateLimitedRouter(&fakeLimiter{err: errors.New("connection refused")}, 1)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, serve(r).Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	for _, r := range []*gin.Engine{
		rateLimitedRouter(nil, 1),
		rateLimitedRouter(&fakeLimiter{counts: map[string]int{}}, 0),
	} {
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusNoContent, serve(r).Code)
		}
	}
}

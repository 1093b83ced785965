package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowKey(t *testing.T) {
	start := time.Unix(1_700_000_080, 0)

	assert.Equal(t, "api:1.2.3.4:28333334", WindowKey("api:1.2.3.4", start, time.Minute))
	assert.Equal(t, WindowKey("k", start, time.Minute), WindowKey("k", start.Add(19*time.Second), time.Minute))
	assert.NotEqual(t, WindowKey("k", start, time.Minute), WindowKey("k", start.Add(20*time.Second), time.Minute))
	assert.Equal(t, "k:1700000080", WindowKey("k", start, 0))
}

func TestNewRateLimiterRejectsBadURL(t *testing.T) {
	_, err := NewRateLimiter(context.Background(), "not-a-url")
	assert.Error(t, err)
}

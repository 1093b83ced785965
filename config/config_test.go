package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "scala", c.MongoDBName)
	assert.Equal(t, 120, c.RateLimitPerMinute)
	assert.Equal(t, time.Minute, c.RateLimitWindow)
	assert.Empty(t, c.RedisURL)
	assert.True(t, c.IsDevelopment())
}

func TestLoadRequiresSecrets(t *testing.T) {
	// Setenv registers the restore.
	t.Setenv("MONGODB_URI", "")
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("MONGODB_URI"))
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load()
	assert.Error(t, err)
}

package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Port     string `envconfig:"PORT" default:"8080"`

	MongoDBURI  string `envconfig:"MONGODB_URI" required:"true"`
	MongoDBName string `envconfig:"MONGODB_NAME" default:"scala"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// RedisURL enables API rate limiting when set.
	RedisURL           string        `envconfig:"REDIS_URL"`
	RateLimitPerMinute int           `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	RateLimitWindow    time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	AppName    string `envconfig:"APP_NAME" default:"Scala"`
	WebsiteURL string `envconfig:"WEBSITE_URL" default:"http://localhost:8080"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

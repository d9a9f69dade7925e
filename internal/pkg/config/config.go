package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIURL is the base URL of the POS backend API every action is
	// proxied to. The localhost fallback mirrors a developer setup where
	// the backend runs beside the gateway.
	APIURL string `env:"API_URL, default=http://localhost:8000"`

	Session SessionConfig
	Redis   RedisConfig
	Mongo   MongoConfig
	Audit   AuditConfig
	Login   LoginRateConfig
}

type SessionConfig struct {
	// Secret signs the stateless session cookie. Required outside
	// development.
	Secret string `env:"SESSION_SECRET, default=dev-insecure-secret"`
	Cookie string `env:"SESSION_COOKIE, default=pos_session"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pos_gateway"`
}

type AuditConfig struct {
	Enabled bool `env:"AUDIT_ENABLED, default=true"`
	Workers int  `env:"AUDIT_WORKERS, default=4"`
}

type LoginRateConfig struct {
	// Limit is the number of login attempts allowed per client IP within
	// Window seconds.
	Limit  int `env:"LOGIN_RATE_LIMIT,  default=10"`
	Window int `env:"LOGIN_RATE_WINDOW, default=60"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsProduction reports whether the gateway runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

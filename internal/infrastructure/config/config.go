package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	LoginRoute string `env:"LOGIN_ROUTE, default=/login"`

	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
}

// BackendConfig selects and configures the clinic backend implementation.
// Mode is decided here, at startup; the gateway never falls back to the mock
// at runtime.
type BackendConfig struct {
	Mode    string `env:"BACKEND_MODE,     default=http"` // http | mock
	BaseURL string `env:"BACKEND_BASE_URL, default=http://localhost:8000/api/v1"`

	MockSecret   string        `env:"MOCK_JWT_SECRET, default=vetgate-dev-secret"`
	MockTokenTTL time.Duration `env:"MOCK_TOKEN_TTL,  default=24h"`
}

type SessionConfig struct {
	Store string        `env:"SESSION_STORE, default=redis"` // redis | memory
	TTL   time.Duration `env:"SESSION_TTL,   default=720h"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Production reports whether the gateway runs in a production environment.
func (c *Config) Production() bool {
	return c.Env == "production"
}

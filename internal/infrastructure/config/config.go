package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret falls back to a well-known development value; the fallback
	// must never be used outside development and test contexts. main logs
	// a warning when it is.
	JWTSecret string        `env:"JWT_SECRET, default=fallback-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=168h"`

	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@selvanails.com"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=changeme"`

	PushWorkers int `env:"PUSH_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=selva_nails"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DefaultJWTSecret is the development fallback baked into the JWT_SECRET
// default above.
const DefaultJWTSecret = "fallback-secret"

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the process runs in a development
// environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

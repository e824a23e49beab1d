package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// CouponSweepSpec is a cron spec for the coupon expiry sweep.
	CouponSweepSpec string `env:"COUPON_SWEEP_SPEC, default=@every 10m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront_admin"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// SessionTTLMinutes bounds how long a synced identity survives without
	// a refresh.
	SessionTTLMinutes int `env:"SESSION_TTL_MINUTES, default=1440"`
	// ListCacheTTLSeconds bounds staleness of shared derived-list pages.
	ListCacheTTLSeconds int `env:"LIST_CACHE_TTL_SECONDS, default=30"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

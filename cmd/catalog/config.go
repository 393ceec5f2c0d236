package main

import (
	"time"

	"github.com/cristalhq/aconfig"
)

// Config is loaded from environment variables and flags. An empty
// DatabaseURL is valid: the service then serves the sample catalog and
// rejects seeding.
type Config struct {
	Port        string `default:"8080" usage:"HTTP listen port"`
	DatabaseURL string `env:"DATABASE_URL" flag:"database-url" usage:"PostgreSQL connection URL; empty runs without a store"`

	MetricsEnabled bool   `default:"false" usage:"expose /metrics"`
	MetricsToken   string `usage:"bearer token guarding /metrics"`

	SeedLimit       int           `default:"5"  usage:"max seed requests per client IP per window"`
	SeedLimitWindow time.Duration `default:"1m" usage:"seed rate limit window"`
}

func loadConfig() (Config, error) {
	var cfg Config

	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFiles: true,
	})
	if err := loader.Load(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

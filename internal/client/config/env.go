package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvServer       = "GOPHFOOD_SERVER"
	EnvDatabase     = "GOPHFOOD_DB"
	EnvPollInterval = "GOPHFOOD_POLL_INTERVAL"
	EnvLogLevel     = "GOPHFOOD_LOG_LEVEL"
)

// parseEnv overlays cfg with GOPHFOOD_* variables. A .env file in the
// working directory is loaded first; variables already set take precedence
// over it. lookup is os.LookupEnv outside tests.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := lookup(EnvServer); ok && v != "" {
		cfg.ServerBaseURL = v
	}
	if v, ok := lookup(EnvDatabase); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(EnvPollInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.OrderPollInterval = d
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}

package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the gophfood client.
type Config struct {
	ServerBaseURL      string
	DatabasePath       string
	OrderPollInterval  time.Duration
	RequestsPerSecond  float64
	RequestBurst       int
	PrewarmConcurrency int
	DefaultLat         float64
	DefaultLng         float64
	LogLevel           string
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://develop.ewlab.di.unimi.it/mc/2425"
	c.DatabasePath = "gophfood.db"
	c.OrderPollInterval = 5 * time.Second
	c.RequestsPerSecond = 10
	c.RequestBurst = 5
	c.PrewarmConcurrency = 4
	c.DefaultLat = 45.4642
	c.DefaultLng = 9.19
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the config file, then the
// environment, then command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, os.Args[1:])
	parseEnv(cfg, os.LookupEnv)
	parseFlags(cfg, os.Args[1:])
	return cfg
}

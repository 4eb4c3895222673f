package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophfood/internal/flagx"
	"github.com/dmitrijs2005/gophfood/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config.
type FileConfig struct {
	ServerBaseURL      string         `json:"server_base_url" yaml:"server_base_url"`
	DatabasePath       string         `json:"database_path" yaml:"database_path"`
	OrderPollInterval  timex.Duration `json:"order_poll_interval" yaml:"order_poll_interval"`
	RequestsPerSecond  float64        `json:"requests_per_second" yaml:"requests_per_second"`
	RequestBurst       int            `json:"request_burst" yaml:"request_burst"`
	PrewarmConcurrency int            `json:"prewarm_concurrency" yaml:"prewarm_concurrency"`
	DefaultLat         float64        `json:"default_lat" yaml:"default_lat"`
	DefaultLng         float64        `json:"default_lng" yaml:"default_lng"`
	LogLevel           string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// It panics on read or decode errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	// start from the current values so absent keys are left alone
	fc := FileConfig{
		ServerBaseURL:      cfg.ServerBaseURL,
		DatabasePath:       cfg.DatabasePath,
		OrderPollInterval:  timex.Duration{Duration: cfg.OrderPollInterval},
		RequestsPerSecond:  cfg.RequestsPerSecond,
		RequestBurst:       cfg.RequestBurst,
		PrewarmConcurrency: cfg.PrewarmConcurrency,
		DefaultLat:         cfg.DefaultLat,
		DefaultLng:         cfg.DefaultLng,
		LogLevel:           cfg.LogLevel,
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = fc.ServerBaseURL
	cfg.DatabasePath = fc.DatabasePath
	cfg.OrderPollInterval = time.Duration(fc.OrderPollInterval.Duration)
	cfg.RequestsPerSecond = fc.RequestsPerSecond
	cfg.RequestBurst = fc.RequestBurst
	cfg.PrewarmConcurrency = fc.PrewarmConcurrency
	cfg.DefaultLat = fc.DefaultLat
	cfg.DefaultLng = fc.DefaultLng
	cfg.LogLevel = fc.LogLevel
}

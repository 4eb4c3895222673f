package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophfood/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-s string   backend base URL
//	-d string   database path
//	-i int      order poll interval in seconds
//	-l string   log level
//
// Only these flags are picked out of args (see flagx.FilterArgs).
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-s", "-d", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "s", cfg.ServerBaseURL, "backend base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	pollInterval := fs.Int("i", int(cfg.OrderPollInterval.Seconds()), "order poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OrderPollInterval = time.Duration(*pollInterval) * time.Second
		}
	})
}

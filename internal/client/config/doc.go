// Package config loads runtime configuration for the gophfood client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment variables, optionally seeded from a .env file in the
//     working directory.
//  4. Command-line flags.
//
// Supported flags
//
//	-s string   backend base URL
//	-d string   SQLite database path
//	-i int      order poll interval (seconds)
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	GOPHFOOD_SERVER          backend base URL
//	GOPHFOOD_DB              SQLite database path
//	GOPHFOOD_POLL_INTERVAL   order poll interval ("5s")
//	GOPHFOOD_LOG_LEVEL       log level
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds. Keys missing from the file keep their previous value:
//
//	{
//	  "server_base_url": "https://develop.ewlab.di.unimi.it/mc/2425",
//	  "database_path": "gophfood.db",
//	  "order_poll_interval": "5s",
//	  "requests_per_second": 10,
//	  "request_burst": 5,
//	  "prewarm_concurrency": 4,
//	  "default_lat": 45.4642,
//	  "default_lng": 9.19,
//	  "log_level": "info"
//	}
package config

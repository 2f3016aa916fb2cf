package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-api-url raindrop.io API base URL
//	-token API access token (overrides the stored token file)
//	-request-timeout API request timeout (e.g., "30s", "1m")
//	-data-dir local data directory for the cache database and token file
//	-check-interval server freshness check interval (e.g., "5m"; 0 disables)
//	-log-level log level name ("debug", "info", "warn", ...)
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var apiURL string
	var token string
	var requestTimeout time.Duration
	var dataDir string
	var checkInterval time.Duration
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&apiURL, "api-url", "", "raindrop.io API base URL")
	flag.StringVar(&token, "token", "", "API access token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 30s, 1m)")
	flag.StringVar(&dataDir, "data-dir", "", "Local data directory")
	flag.DurationVar(&checkInterval, "check-interval", 0, "Server freshness check interval (e.g., 5m)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		API: API{
			BaseURL:        apiURL,
			Token:          token,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DataDir: dataDir,
		},
		Workers: Workers{
			AutoCheckInterval: checkInterval,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}
}

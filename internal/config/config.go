package config

import (
	"time"
)

// Config is the top-level configuration container for braindrop. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file, with built-in defaults filling any
// field left unset.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
//
// All environment lookups additionally carry the application-wide
// "BRAINDROP_" prefix, so API.BaseURL for example is read from
// BRAINDROP_API_BASE_URL.
type Config struct {
	// API holds settings for the raindrop.io REST API connection.
	API API `envPrefix:"API_"`

	// Storage holds local persistence settings: where the cache database
	// and the API token file live.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings such as the server freshness
	// check interval.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via BRAINDROP_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds connection settings for the raindrop.io REST API.
type API struct {
	// BaseURL is the root of the raindrop.io REST API
	// (e.g. "https://api.raindrop.io/rest/v1").
	// Env: BRAINDROP_API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is an API access token. When set it takes priority over the
	// token stored on disk, which is handy for scripting and testing.
	// Env: BRAINDROP_API_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the maximum duration allowed for a single API
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: BRAINDROP_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DataDir is the directory holding the local cache database and the
	// API token file. Empty means the XDG data directory for braindrop.
	// Env: BRAINDROP_STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Workers holds background job settings.
type Workers struct {
	// AutoCheckInterval defines how often the client compares the local
	// cache against the server's last-update stamp while idle. Zero
	// disables the periodic check.
	// Env: BRAINDROP_WORKERS_AUTO_CHECK_INTERVAL
	AutoCheckInterval time.Duration `env:"AUTO_CHECK_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Level is the zerolog level name ("debug", "info", "warn", ...).
	// Env: BRAINDROP_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetConfig loads, merges, and validates the application configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

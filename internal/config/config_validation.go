package config

import (
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}
	if parsed, err := url.Parse(cfg.API.BaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ErrInvalidAPIConfigs
	}

	if cfg.Workers.AutoCheckInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}

// LogLevel returns the parsed zerolog level for cfg.Log.Level. It assumes
// the config has already passed validate.
func (cfg *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

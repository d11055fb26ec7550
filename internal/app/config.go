package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BuildPath       string // hcl build file or directory
	RootPath        string // overrides the build file's root_path
	CredentialsPath string // overrides the build file's credentials

	LogFormat string
	LogLevel  string
	// DryRun prints artifacts instead of handing them to the configured sink.
	DryRun bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BuildPath == "" {
		return nil, errors.New("BuildPath is a required configuration field and cannot be empty")
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format '%s': must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level '%s': must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Environment variables read by FromEnv
const (
	// EnvLogLevel sets the minimum log level (debug, info, warn, error)
	EnvLogLevel = "NEXTGREATER_LOG_LEVEL"

	// EnvLogFormat selects the log handler (text or json)
	EnvLogFormat = "NEXTGREATER_LOG_FORMAT"

	// EnvCases points to a YAML case file and switches the program into judge mode
	EnvCases = "NEXTGREATER_CASES"
)

// Supported log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the program configuration
type Config struct {
	// LogLevel is the minimum level written to stderr
	LogLevel string `json:"logLevel" yaml:"logLevel"`

	// LogFormat is either "text" (colored terminal output) or "json"
	LogFormat string `json:"logFormat" yaml:"logFormat"`

	// CasesFile, when set, runs the judge against the cases in this file instead of reading stdin
	CasesFile string `json:"casesFile" yaml:"casesFile"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: LogFormatText,
		CasesFile: "", // Empty means read the sequence from stdin
	}
}

// FromEnv returns the default configuration overridden by any environment variables that are set
func FromEnv(getenv func(key string) string) *Config {
	cfg := DefaultConfig()

	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := getenv(EnvCases); v != "" {
		cfg.CasesFile = v
	}

	return cfg
}

// Validate checks that the configured log level and format are supported
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q (want %q or %q)", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	return nil
}

// Level parses LogLevel into a slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

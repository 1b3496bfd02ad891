package config

import (
	"errors"
	"fmt"
	"strings"
)

// Default config values.
const (
	DefaultConfigFile         = "config/config.yml"
	DefaultLoggerLevel        = LogLevelError
	DefaultLoggerFormat       = LogFormatText
	DefaultDialTimeoutSeconds = 0
)

// LogLevel defines the type for logger levels.
type LogLevel string

// LogFormat defines the type for logger output formats.
type LogFormat string

// Defines the supported logger levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Defines the supported logger output formats.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Config holds all configuration for the application.
type Config struct {
	Notifier NotifierConfig `yaml:"notifier"`
	Logger   LoggerConfig   `yaml:"logger"`
}

// NotifierConfig holds all configuration related to notification delivery.
type NotifierConfig struct {
	// DialTimeoutSeconds bounds the TCP connect; 0 means no timeout,
	// matching the classic blocknotify behavior.
	DialTimeoutSeconds int `yaml:"dial_timeout_seconds"`

	// EscapeParams enables JSON escaping of the coin and block hash values.
	// Off by default: the listening service expects the raw byte format.
	EscapeParams bool `yaml:"escape_params"`
}

// LoggerConfig holds all configuration related to logging.
type LoggerConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(string(c.Logger.Level))] {
		return fmt.Errorf(
			"invalid logger level (config key: logger.level): '%s', must be one of: debug, info, warn, error",
			c.Logger.Level,
		)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(string(c.Logger.Format))] {
		return fmt.Errorf(
			"invalid logger format (config key: logger.format): '%s', must be one of: json, text",
			c.Logger.Format,
		)
	}

	if c.Notifier.DialTimeoutSeconds < 0 {
		return errors.New("dial timeout seconds (config key: notifier.dial_timeout_seconds) cannot be negative")
	}

	return nil
}

// Package config implements application configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration from a YAML file.
//
// An empty filePath falls back to DefaultConfigFile; if that default file does
// not exist the built-in defaults are used silently, so the binary works with
// no configuration at all. An explicitly named file must exist and parse.
func LoadConfig(filePath string) (*Config, error) {
	cfg := &Config{
		Notifier: NotifierConfig{
			DialTimeoutSeconds: DefaultDialTimeoutSeconds,
		},
		Logger: LoggerConfig{
			Level:  DefaultLoggerLevel,
			Format: DefaultLoggerFormat,
		},
	}

	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFile
	}

	fileBytes, err := os.ReadFile(loadPath)
	if err != nil {
		if os.IsNotExist(err) && (filePath == "" || filePath == DefaultConfigFile) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	type partialConfig struct {
		Notifier *NotifierConfig `yaml:"notifier"`
		Logger   *LoggerConfig   `yaml:"logger"`
	}
	var pCfg partialConfig

	if err := yaml.Unmarshal(fileBytes, &pCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
	}

	if pCfg.Notifier != nil {
		cfg.Notifier.DialTimeoutSeconds = pCfg.Notifier.DialTimeoutSeconds
		cfg.Notifier.EscapeParams = pCfg.Notifier.EscapeParams
	}
	if pCfg.Logger != nil {
		if pCfg.Logger.Level != "" {
			cfg.Logger.Level = pCfg.Logger.Level
		}
		if pCfg.Logger.Format != "" {
			cfg.Logger.Format = pCfg.Logger.Format
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in '%s': %w", loadPath, err)
	}

	return cfg, nil
}

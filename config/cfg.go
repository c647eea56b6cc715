// Package config holds the tool configuration: logging destinations and
// the style sources to load before processing a document.
package config

import (
	"bytes"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type (
	// StylesConfig selects what gets loaded into the style registry.
	StylesConfig struct {
		// Definition documents to parse, in order.
		Definitions []string `yaml:"definitions,omitempty"`
		// Built-in categories to load: headings, body, technical, lists, tables.
		// Empty means all.
		BuiltIn []string `yaml:"built_in,omitempty"`
	}

	Config struct {
		Version int           `yaml:"version"`
		Styles  StylesConfig  `yaml:"styles"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func defaults() *Config {
	return &Config{
		Version: 1,
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none", Mode: "overwrite"},
		},
	}
}

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given
// path, superimposing its values on top of the defaults. An empty path
// returns the defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg := defaults()
	if len(path) == 0 {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to process config file %s: %w", path, err)
	}
	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported configuration version %d", cfg.Version)
	}
	if err := cfg.Logging.validate(); err != nil {
		return nil, fmt.Errorf("bad logging configuration: %w", err)
	}
	return cfg, nil
}

// Dump serializes the effective configuration back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize configuration: %w", err)
	}
	return data, nil
}

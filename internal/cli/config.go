package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds defaults read from a YAML file. Command-line flags take
// precedence over every field.
//
//	format: json
//	count: "5"
//	limit: 10
//	verbose: true
//	metrics: false
type Config struct {
	Format  string `yaml:"format"`
	Count   string `yaml:"count"`
	Limit   int    `yaml:"limit"`
	Verbose bool   `yaml:"verbose"`
	Metrics bool   `yaml:"metrics"`
}

// LoadConfig reads the config file at path. An empty path yields the
// zero Config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parsing config YAML")
	}
	if cfg.Format != "" && !isValidFormat(cfg.Format) {
		return nil, errors.Errorf("invalid format %q in config: must be one of %v", cfg.Format, ValidFormats)
	}
	if cfg.Limit < 0 {
		return nil, errors.Errorf("invalid limit %d in config: must not be negative", cfg.Limit)
	}
	return &cfg, nil
}

// SPDX-License-Identifier: MIT
// Package config holds the settings of the transit command: where the
// station file lives, which frontier strategy the path finder uses and how
// the root logger is set up.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/transit/dijkstra"
)

// Log formats accepted in LogFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds application settings. Files are YAML; field names follow the
// json tags.
type Config struct {
	DataFile  string `json:"data_file"`
	Frontier  string `json:"frontier"`   // scan | heap
	LogLevel  string `json:"log_level"`  // any logrus level name
	LogFormat string `json:"log_format"` // text | json
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DataFile:  "stations.txt",
		Frontier:  dijkstra.FrontierScan.String(),
		LogLevel:  logrus.WarnLevel.String(),
		LogFormat: FormatText,
	}
}

// Load reads a YAML file on top of Default. Keys absent from the file keep
// their default values. The result is validated.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %q: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error

	if strings.TrimSpace(c.DataFile) == "" {
		err = multierror.Append(err, fmt.Errorf("data file not provided"))
	}

	if _, ferr := dijkstra.ParseFrontier(c.Frontier); ferr != nil {
		err = multierror.Append(err, ferr)
	}

	if _, lerr := logrus.ParseLevel(c.LogLevel); lerr != nil {
		err = multierror.Append(err, fmt.Errorf("log level: %w", lerr))
	}

	switch strings.ToLower(c.LogFormat) {
	case FormatText, FormatJSON:
	default:
		err = multierror.Append(err, fmt.Errorf("log format %q is not %q or %q", c.LogFormat, FormatText, FormatJSON))
	}

	return err
}

// FrontierStrategy returns the parsed Frontier, FrontierScan if invalid.
func (c *Config) FrontierStrategy() dijkstra.Frontier {
	f, _ := dijkstra.ParseFrontier(c.Frontier)

	return f
}

// NewLogger builds the root logger described by the config.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	if strings.ToLower(c.LogFormat) == FormatJSON {
		logger.SetFormatter(new(logrus.JSONFormatter))
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return logger
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

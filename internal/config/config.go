// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads the user configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/janderssonse/appcatalog/internal/catalog"
	"github.com/janderssonse/appcatalog/internal/logging"
	"github.com/janderssonse/appcatalog/internal/platform"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig indicates a config file with unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the on-disk configuration.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Log     LogConfig     `toml:"log"`
}

// CatalogConfig selects the catalog source and role behaviour.
type CatalogConfig struct {
	File          string   `toml:"file"`
	TechnicalApps []string `toml:"technical_apps"`
	DefaultSort   string   `toml:"default_sort"`
}

// LogConfig selects where interactive sessions log.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{
			TechnicalApps: catalog.DefaultTechnicalApps(),
			DefaultSort:   string(catalog.SortPopularity),
		},
		Log: LogConfig{
			File:  platform.LogFile(),
			Level: logrus.InfoLevel.String(),
		},
	}
}

// Load reads path over the defaults. An empty path means the default
// location; a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = platform.ConfigFile()
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-configured path
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Catalog.File = platform.ExpandPath(cfg.Catalog.File)
	cfg.Log.File = platform.ExpandPath(cfg.Log.File)

	return cfg, cfg.Validate()
}

// Validate checks the sort key and log level.
func (c Config) Validate() error {
	var errs []error

	if _, err := catalog.ParseSortKey(c.Catalog.DefaultSort); err != nil {
		errs = append(errs, err)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	for _, name := range c.Catalog.TechnicalApps {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("technical_apps contains an empty name"))

			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// SortKey returns the configured default sort.
func (c Config) SortKey() catalog.SortKey {
	key, err := catalog.ParseSortKey(c.Catalog.DefaultSort)
	if err != nil {
		return catalog.SortPopularity
	}

	return key
}

// Logging returns the logger settings.
func (c Config) Logging() logging.Config {
	return logging.Config{File: c.Log.File, Level: c.Log.Level}
}

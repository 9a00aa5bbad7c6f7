// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles jenerator configuration files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/jenerator/internal/schemagen"
)

// Config represents a jenerator.yaml (or jenerator.json) configuration file.
type Config struct {
	DefaultTier     schemagen.Tier `yaml:"default_tier" json:"default_tier"`
	PrettyOutput    bool           `yaml:"pretty_output" json:"pretty_output"`
	ValidateSchema  bool           `yaml:"validate_schema" json:"validate_schema"`
	OutputDirectory string         `yaml:"output_directory,omitempty" json:"output_directory,omitempty"`
	FileExtensions  []string       `yaml:"file_extensions,omitempty" json:"file_extensions,omitempty"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		DefaultTier:    schemagen.Standard,
		FileExtensions: []string{"json"},
	}
}

// Load reads a Config from a file path. The format is determined from
// the file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch {
	case strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"):
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML config: %w", err)
		}
	case strings.HasSuffix(path, ".json"):
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	return cfg, nil
}

// Save writes the Config to a file path. The format is determined from
// the file extension; anything that isn't YAML is written as JSON.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		return enc.Encode(c)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	if !c.DefaultTier.Valid() {
		return errors.New("invalid default_tier")
	}
	for _, ext := range c.FileExtensions {
		if ext == "" {
			return errors.New("file_extensions entries must not be empty")
		}
	}
	return nil
}

// MergeFlags overlays command-line flags onto the configuration.
// The tier only overrides the configured default when the flag was
// actually set; pretty and validate can only be switched on.
func (c *Config) MergeFlags(tier schemagen.Tier, tierSet, pretty, validate bool) {
	if tierSet {
		c.DefaultTier = tier
	}
	if pretty {
		c.PrettyOutput = true
	}
	if validate {
		c.ValidateSchema = true
	}
}

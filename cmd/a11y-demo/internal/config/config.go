// Package config loads the optional a11y.yaml demo configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/a11y/pkg/announce"
)

// Config represents the optional a11y.yaml configuration.
type Config struct {
	Announce AnnounceConfig `yaml:"announce"`
	Dialog   DialogConfig   `yaml:"dialog"`
}

// AnnounceConfig contains announcement router settings.
type AnnounceConfig struct {
	// ExpiryMS is the announcement display duration in milliseconds.
	ExpiryMS int `yaml:"expiry_ms,omitempty"`
}

// DialogConfig contains dialog lifecycle settings.
type DialogConfig struct {
	Persistent       bool `yaml:"persistent,omitempty"`
	SkipInitialFocus bool `yaml:"skip_initial_focus,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Expiry           time.Duration
	Persistent       bool
	SkipInitialFocus bool
}

// LoadOptional reads a11y.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "a11y.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read a11y.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse a11y.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve applies defaults to the loaded configuration.
func (c *Config) Resolve() Resolved {
	r := Resolved{
		Expiry:           announce.DefaultExpiry,
		Persistent:       c.Dialog.Persistent,
		SkipInitialFocus: c.Dialog.SkipInitialFocus,
	}
	if c.Announce.ExpiryMS > 0 {
		r.Expiry = time.Duration(c.Announce.ExpiryMS) * time.Millisecond
	}
	return r
}

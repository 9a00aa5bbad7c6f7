// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session resolves the jenerator configuration for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/jenerator/internal/config"
)

var (
	// ErrConfigNotFound indicates an explicitly requested config file is missing.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the config file looked up in the working directory
// when no --config flag is given.
const ConfigFileName = "jenerator.yaml"

// contextKey is used to store Session in context.Context.
type contextKey struct{}

// Session holds the resolved configuration for a command invocation.
type Session struct {
	// Config is the loaded configuration, or defaults when no file exists.
	Config *config.Config

	// ConfigPath is the file the configuration came from; empty for defaults.
	ConfigPath string
}

// Load resolves the configuration and returns a new context.Context with
// the Session stored in it. An explicit path must exist; the implicit
// jenerator.yaml in the working directory is optional.
func Load(ctx context.Context, explicitPath string) (context.Context, error) {
	path := explicitPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		candidate := filepath.Join(cwd, ConfigFileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			path = candidate
		}
	} else if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if validateErr := loaded.Validate(); validateErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
		}
		cfg = loaded
	}

	sess := &Session{
		Config:     cfg,
		ConfigPath: path,
	}

	return context.WithValue(ctx, contextKey{}, sess), nil
}

// From extracts the Session from a context.Context.
// Returns nil if no Session is stored.
func From(ctx context.Context) *Session {
	if sess, ok := ctx.Value(contextKey{}).(*Session); ok {
		return sess
	}
	return nil
}

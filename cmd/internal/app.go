// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/dacolabs/jenerator/internal/commands"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	configureLogging(getenv("JENERATOR_LOG"))

	rootCmd := commands.NewRootCmd()
	return rootCmd.ExecuteContext(ctx)
}

// configureLogging installs a stderr text handler at the level named by
// the JENERATOR_LOG environment variable. Logging defaults to warnings
// so normal runs stay quiet.
func configureLogging(level string) {
	lvl := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

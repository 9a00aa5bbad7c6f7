// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// FromCommand extracts the Session from a cobra.Command's context.
// Returns nil if no Session is stored.
func FromCommand(cmd *cobra.Command) *Session {
	return From(cmd.Context())
}

// RequireFromCommand extracts the Session from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Session, error) {
	sess := FromCommand(cmd)
	if sess == nil {
		return nil, errors.New("configuration not loaded")
	}
	return sess, nil
}

// PreRunLoad returns a PreRunE function that resolves the configuration
// (from configPath, or the working directory when empty) and stores it
// in the command's context.
func PreRunLoad(configPath *string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx, err := Load(cmd.Context(), *configPath)
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}

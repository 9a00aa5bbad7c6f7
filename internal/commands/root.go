// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/jenerator/internal/schemagen"
	"github.com/dacolabs/jenerator/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	opts := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "jenerator [input]",
		Short: "Generate JSON Schema documents from JSON input",
		Long: fmt.Sprintf(`Generate a JSON Schema (draft 2020-12) document from a JSON file.

Available tiers: %s`, strings.Join(schemagen.Tiers(), ", ")),
		Example: `  # Interactive mode
  jenerator

  # Generate a standard-tier schema next to the input
  jenerator data.json

  # Expert tier, pretty-printed, checked against the meta-schema
  jenerator data.json --tier expert --pretty --validate

  # Batch mode over a glob pattern
  jenerator 'fixtures/*.json' --batch --tier comprehensive`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       session.PreRunLoad(&opts.config),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.input = args[0]
			}
			return runGenerate(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output schema file (default: <input-stem>.schema.json)")
	rootCmd.Flags().StringVarP(&opts.tier, "tier", "t", schemagen.Standard.String(),
		fmt.Sprintf("Schema tier (%s)", strings.Join(schemagen.Tiers(), ", ")))
	rootCmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Pretty print output with indentation")
	rootCmd.Flags().BoolVarP(&opts.validate, "validate", "V", false, "Validate the generated schema against the meta-schema")
	rootCmd.Flags().BoolVarP(&opts.batch, "batch", "b", false, "Treat input as a glob pattern and process all matches")
	rootCmd.Flags().StringVarP(&opts.config, "config", "c", "", "Config file (default: ./jenerator.yaml if present)")
	rootCmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires an input argument)")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/jenerator/internal/emit"
	"github.com/dacolabs/jenerator/internal/jsonval"
	"github.com/dacolabs/jenerator/internal/prompts"
	"github.com/dacolabs/jenerator/internal/schemagen"
	"github.com/dacolabs/jenerator/internal/session"
	"github.com/dacolabs/jenerator/internal/validation"
)

type generateOptions struct {
	input          string
	output         string
	tier           string
	pretty         bool
	validate       bool
	batch          bool
	config         string
	nonInteractive bool
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	cfg := sess.Config

	var tierFlag schemagen.Tier
	tierSet := cmd.Flags().Changed("tier")
	if tierSet {
		if tierFlag, err = schemagen.ParseTier(opts.tier); err != nil {
			return err
		}
	}
	cfg.MergeFlags(tierFlag, tierSet, opts.pretty, opts.validate)

	tier := cfg.DefaultTier
	pretty := cfg.PrettyOutput
	validate := cfg.ValidateSchema

	// Prompt for any missing values
	if opts.input == "" {
		if opts.nonInteractive {
			return errors.New("input file is required for schema generation")
		}
		tierName := tier.String()
		if err := prompts.RunGenerateForm(&opts.input, &tierName, &pretty, &validate, schemagen.Tiers()); err != nil {
			return err
		}
		if tier, err = schemagen.ParseTier(tierName); err != nil {
			return err
		}
	}

	if opts.batch {
		return runBatch(opts.input, cfg.OutputDirectory, tier, pretty, validate)
	}

	outPath, err := processFile(opts.input, opts.output, cfg.OutputDirectory, tier, pretty, validate)
	if err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Input", Value: opts.input},
		{Label: "Schema", Value: outPath},
		{Label: "Tier", Value: tier.String()},
	}, "Schema generated successfully")

	return nil
}

// processFile generates a schema for one input file and returns the
// path it was written to.
func processFile(input, explicitOut, outputDir string, tier schemagen.Tier, pretty, validate bool) (string, error) {
	slog.Debug("processing input file", "path", input, "tier", tier.String())

	if _, err := os.Stat(input); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", input)
	}

	data, err := os.ReadFile(input) //nolint:gosec // input is provided by the user
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", input, err)
	}

	value, err := jsonval.Decode(data)
	if err != nil {
		return "", fmt.Errorf("invalid JSON in %s: %v", input, err)
	}

	schema := schemagen.Generate(value, tier)

	if validate {
		if err := validation.ValidateSchema(schema); err != nil {
			return "", err
		}
		fmt.Println("Schema validation passed")
	}

	outPath := emit.OutputPath(input, explicitOut, outputDir)
	if err := emit.WriteSchema(outPath, schema, pretty); err != nil {
		return "", fmt.Errorf("failed to write schema to %s: %w", outPath, err)
	}
	return outPath, nil
}

// runBatch expands the input as a glob pattern and generates a schema
// for every match. Each output uses the default <stem>.schema.json
// naming so matches don't overwrite each other.
func runBatch(pattern, outputDir string, tier schemagen.Tier, pretty, validate bool) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	processed := 0
	var errs []string
	for _, path := range matches {
		slog.Debug("processing file", "path", path)
		if _, err := processFile(path, "", outputDir, tier, pretty, validate); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		processed++
	}

	fmt.Printf("Processed %d files successfully\n", processed)
	if len(errs) > 0 {
		fmt.Println("Errors encountered:")
		for _, e := range errs {
			fmt.Printf("  %s\n", e)
		}
		return fmt.Errorf("failed to process %d file(s)", len(errs))
	}
	return nil
}

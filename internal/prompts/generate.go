// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunGenerateForm runs the interactive form for schema generation.
// It fills the provided pointers with user input; tiers are the
// selectable tier names in ascending strictness order.
func RunGenerateForm(input, tier *string, pretty, validate *bool, tiers []string) error {
	options := make([]huh.Option[string], len(tiers))
	for i, t := range tiers {
		options[i] = huh.NewOption(t, t)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Input JSON file").
				Placeholder("data.json").
				Validate(requiredValidator("input file")).
				Value(input),
			huh.NewSelect[string]().
				Title("Schema tier").
				Options(options...).
				Value(tier),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Pretty-print the schema?").
				Value(pretty),
			huh.NewConfirm().
				Title("Validate against the meta-schema?").
				Value(validate),
		),
	).WithTheme(Theme()).Run()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package validation checks generated schema documents against the JSON
// Schema draft 2020-12 meta-schema.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dacolabs/jenerator/internal/schemagen"
)

const metaSchemaURL = "https://json-schema.org/draft/2020-12/schema"

// ValidateSchema validates a generated schema document against the draft
// 2020-12 meta-schema.
func ValidateSchema(doc *schemagen.Doc) error {
	compiled, err := compile(fmt.Sprintf(`{"$schema": %q}`, metaSchemaURL))
	if err != nil {
		return fmt.Errorf("failed to compile meta-schema: %w", err)
	}

	instance, err := toInstance(doc)
	if err != nil {
		return err
	}
	if err := compiled.Validate(instance); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// ValidateInstance validates a parsed JSON instance against a generated
// schema document.
func ValidateInstance(instance any, doc *schemagen.Doc) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize schema: %w", err)
	}
	compiled, err := compile(string(raw))
	if err != nil {
		return fmt.Errorf("failed to compile schema for validation: %w", err)
	}
	if err := compiled.Validate(instance); err != nil {
		return fmt.Errorf("JSON validation failed: %w", err)
	}
	return nil
}

func compile(schema string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", strings.NewReader(schema)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

// toInstance converts a schema document to the decoded-any form the
// validator expects.
func toInstance(doc *schemagen.Doc) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema: %w", err)
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	return instance, nil
}

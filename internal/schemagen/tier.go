// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schemagen infers JSON Schema documents from parsed JSON values
// at one of four verbosity tiers.
package schemagen

import "fmt"

// Tier selects how strict and metadata-rich generated schemas are.
// Tiers are ordered: each one emits a superset of the fields of the
// tier below it for the same input.
type Tier int

const (
	Basic Tier = iota
	Standard
	Comprehensive
	Expert
)

var tierNames = [...]string{
	Basic:         "basic",
	Standard:      "standard",
	Comprehensive: "comprehensive",
	Expert:        "expert",
}

// String returns the user-facing tier name.
func (t Tier) String() string {
	if t < Basic || t > Expert {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// Valid reports whether t is one of the defined tiers.
func (t Tier) Valid() bool {
	return t >= Basic && t <= Expert
}

// ParseTier maps a user-facing name to a Tier.
func ParseTier(s string) (Tier, error) {
	for t, name := range tierNames {
		if s == name {
			return Tier(t), nil
		}
	}
	return Basic, fmt.Errorf("unknown tier %q (expected one of basic, standard, comprehensive, expert)", s)
}

// Tiers returns all tier names in ascending strictness order.
func Tiers() []string {
	return append([]string(nil), tierNames[:]...)
}

// MarshalText implements encoding.TextMarshaler so a Tier round-trips
// through YAML and JSON config files.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// tierPolicy captures the per-tier strictness rules as data so the
// generators never branch on Tier directly.
type tierPolicy struct {
	draftURI       bool // add $schema draft URI to object schemas
	requireAll     bool // every object key is required
	requireNonNull bool // keys with non-null values are required
	openObjects    bool // additionalProperties = true
	boundedObjects bool // additionalProperties = false, minProperties = 1
	annotate       bool // title/description metadata
	scalarExamples bool // examples on scalar schemas
	minItemsZero   bool // minItems = 0 on non-empty arrays
	itemBounds     bool // minItems = 1, maxItems = 2*len on non-empty arrays
	uniqueItems    bool // uniqueItems = true regardless of element distinctness
	minLength      bool // minLength = 0 on strings
	lengthBounds   bool // maxLength = 2 * byte length
	sniffFormats   bool // format/pattern detection on strings
	literalMinimum bool // minimum = the literal numeric value
	numericBounds  bool // minimum/maximum = value ∓ 1000
	multipleOfOne  bool // multipleOf = 1 on integers
}

var policies = [...]tierPolicy{
	Basic: {},
	Standard: {
		requireNonNull: true,
		openObjects:    true,
		minItemsZero:   true,
		minLength:      true,
		literalMinimum: true,
	},
	Comprehensive: {
		draftURI:       true,
		requireAll:     true,
		boundedObjects: true,
		scalarExamples: true,
		itemBounds:     true,
		minLength:      true,
		lengthBounds:   true,
		numericBounds:  true,
	},
	Expert: {
		draftURI:       true,
		requireAll:     true,
		boundedObjects: true,
		annotate:       true,
		scalarExamples: true,
		itemBounds:     true,
		uniqueItems:    true,
		minLength:      true,
		lengthBounds:   true,
		sniffFormats:   true,
		numericBounds:  true,
		multipleOfOne:  true,
	},
}

func (t Tier) policy() tierPolicy {
	if !t.Valid() {
		return policies[Basic]
	}
	return policies[t]
}

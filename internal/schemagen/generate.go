// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemagen

import "github.com/dacolabs/jenerator/internal/jsonval"

// DraftURI is the JSON Schema draft the generated documents target.
const DraftURI = "https://json-schema.org/draft/2020-12/schema"

// Generate infers a schema document for a parsed JSON value at the given
// tier. It is a pure structural recursion: the input is never mutated,
// every call returns a fresh document, and recursion depth equals the
// JSON nesting depth (deeply nested input can exhaust the stack).
func Generate(v jsonval.Value, tier Tier) *Doc {
	switch v.Kind() {
	case jsonval.KindObject:
		return generateObject(v.Members(), tier)
	case jsonval.KindArray:
		return generateArray(v.Elems(), tier)
	case jsonval.KindString:
		return generateString(v.AsString(), tier)
	case jsonval.KindNumber:
		return generateNumber(v.AsNumber(), tier)
	case jsonval.KindBool:
		return generateBool(v.AsBool(), tier)
	default:
		return generateNull()
	}
}

func generateObject(members []jsonval.Member, tier Tier) *Doc {
	pol := tier.policy()

	schema := NewDoc()
	schema.Set("type", "object")
	schema.Set("properties", NewDoc())
	if pol.draftURI {
		schema.Set("$schema", DraftURI)
	}

	props := NewDoc()
	var required []string
	for _, m := range members {
		props.Set(m.Key, Generate(m.Value, tier))
		switch {
		case pol.requireAll:
			required = append(required, m.Key)
		case pol.requireNonNull && m.Value.Kind() != jsonval.KindNull:
			required = append(required, m.Key)
		}
	}
	schema.Set("properties", props)

	if len(required) > 0 {
		schema.Set("required", required)
	}

	if pol.openObjects {
		schema.Set("additionalProperties", true)
	}
	if pol.boundedObjects {
		schema.Set("additionalProperties", false)
		// minProperties is fixed at 1 even for an empty input object.
		schema.Set("minProperties", 1)
	}
	if pol.annotate {
		schema.Set("title", "Generated Object Schema")
		schema.Set("description", "Auto-generated schema from JSON data")
	}
	return schema
}

func generateArray(elems []jsonval.Value, tier Tier) *Doc {
	schema := NewDoc()
	schema.Set("type", "array")

	if len(elems) == 0 {
		schema.Set("items", NewDoc())
		return schema
	}

	if isHomogeneous(elems) {
		// The first element stands in for all of them.
		schema.Set("items", Generate(elems[0], tier))
	} else {
		oneOf := make([]*Doc, 0, len(elems))
		for _, e := range elems {
			oneOf = append(oneOf, Generate(e, tier))
		}
		schema.Set("items", NewDoc().Set("oneOf", oneOf))
	}

	pol := tier.policy()
	if pol.minItemsZero {
		schema.Set("minItems", 0)
	}
	if pol.itemBounds {
		schema.Set("minItems", 1)
		schema.Set("maxItems", 2*len(elems))
	}
	if pol.uniqueItems {
		// Set whether or not the elements are actually distinct.
		schema.Set("uniqueItems", true)
	}
	if pol.annotate {
		schema.Set("title", "Generated Array Schema")
		schema.Set("description", "Auto-generated array schema from JSON data")
	}
	return schema
}

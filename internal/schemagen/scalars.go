// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemagen

import (
	"encoding/json"
	"math"

	"github.com/dacolabs/jenerator/internal/jsonval"
)

func generateString(s string, tier Tier) *Doc {
	pol := tier.policy()

	schema := NewDoc().Set("type", "string")
	if pol.minLength {
		schema.Set("minLength", 0)
	}
	if pol.lengthBounds {
		schema.Set("maxLength", 2*len(s))
	}
	if pol.scalarExamples && s != "" {
		schema.Set("examples", []string{s})
	}
	if pol.sniffFormats && s != "" {
		// At most one of format/pattern is emitted; format wins.
		if format, ok := detectFormat(s); ok {
			schema.Set("format", format)
		} else if pattern, ok := detectPattern(s); ok {
			schema.Set("pattern", pattern)
		}
	}
	if pol.annotate {
		schema.Set("title", "Generated String Schema")
	}
	return schema
}

func generateNumber(n jsonval.Number, tier Tier) *Doc {
	schema := NewDoc()
	if n.IsInt() {
		schema.Set("type", "integer")
	} else {
		schema.Set("type", "number")
	}

	pol := tier.policy()
	if pol.literalMinimum {
		schema.Set("minimum", n.Literal())
	}
	if pol.numericBounds {
		if i, ok := n.Int64(); ok {
			schema.Set("examples", []json.Number{n.Literal()})
			schema.Set("minimum", saturatingAdd(i, -1000))
			schema.Set("maximum", saturatingAdd(i, 1000))
			if pol.multipleOfOne {
				schema.Set("multipleOf", 1)
			}
			if pol.annotate {
				schema.Set("title", "Generated Integer Schema")
			}
		} else {
			// Values outside int64 range (large uint64s, floats) take
			// the floating-point path.
			f := n.Float64()
			schema.Set("examples", []float64{f})
			schema.Set("minimum", f-1000)
			schema.Set("maximum", f+1000)
			if pol.annotate {
				schema.Set("title", "Generated Number Schema")
			}
		}
	}
	return schema
}

// saturatingAdd clamps at the int64 extremes instead of wrapping, so
// bounds near math.MaxInt64 stay ordered.
func saturatingAdd(v, d int64) int64 {
	s := v + d
	if d > 0 && s < v {
		return math.MaxInt64
	}
	if d < 0 && s > v {
		return math.MinInt64
	}
	return s
}

func generateBool(b bool, tier Tier) *Doc {
	pol := tier.policy()

	schema := NewDoc().Set("type", "boolean")
	if pol.scalarExamples {
		schema.Set("examples", []bool{b})
	}
	if pol.annotate {
		schema.Set("title", "Generated Boolean Schema")
		schema.Set("description", "Boolean value from JSON data")
	}
	return schema
}

func generateNull() *Doc {
	return NewDoc().Set("type", "null")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonval

import (
	"encoding/json"
	"strconv"
)

// Number holds a JSON number as its literal text. The literal form keeps
// enough precision to tell integers apart from floats, which decides
// whether a schema gets type "integer" or "number".
type Number struct {
	lit json.Number
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{kind: KindNumber, num: Number{lit: json.Number(strconv.FormatInt(i, 10))}}
}

// Uint returns an unsigned integer Value.
func Uint(u uint64) Value {
	return Value{kind: KindNumber, num: Number{lit: json.Number(strconv.FormatUint(u, 10))}}
}

// Float returns a floating-point Value.
func Float(f float64) Value {
	return Value{kind: KindNumber, num: Number{lit: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}}
}

// NumberFromLiteral returns a numeric Value from a raw JSON number literal.
func NumberFromLiteral(lit json.Number) Value {
	return Value{kind: KindNumber, num: Number{lit: lit}}
}

// Literal returns the raw JSON number literal.
func (n Number) Literal() json.Number {
	return n.lit
}

// Int64 reports the value as a signed 64-bit integer, if exactly representable.
func (n Number) Int64() (int64, bool) {
	i, err := strconv.ParseInt(n.lit.String(), 10, 64)
	return i, err == nil
}

// Uint64 reports the value as an unsigned 64-bit integer, if exactly representable.
func (n Number) Uint64() (uint64, bool) {
	u, err := strconv.ParseUint(n.lit.String(), 10, 64)
	return u, err == nil
}

// Float64 returns the closest float64 representation.
func (n Number) Float64() float64 {
	f, _ := n.lit.Float64()
	return f
}

// IsInt reports whether the value round-trips as a signed or unsigned
// 64-bit integer. Literals with a fraction or exponent ("42.0", "1e3")
// are treated as floats, matching how they were written.
func (n Number) IsInt() bool {
	if _, ok := n.Int64(); ok {
		return true
	}
	_, ok := n.Uint64()
	return ok
}

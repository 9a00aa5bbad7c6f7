// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsonval models parsed JSON values with object key order preserved.
package jsonval

// Kind identifies the JSON type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON Schema type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Member is a single key/value entry of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value. Object members keep their source order,
// which makes schema generation deterministic. A Value is never mutated
// after construction.
type Value struct {
	kind Kind
	b    bool
	num  Number
	str  string
	arr  []Value
	obj  []Member
}

// Null returns the JSON null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String returns a JSON string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array returns a JSON array value.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// Object returns a JSON object value with members in the given order.
func Object(members ...Member) Value {
	return Value{kind: KindObject, obj: members}
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// AsBool returns the boolean payload. Valid only for KindBool.
func (v Value) AsBool() bool {
	return v.b
}

// AsString returns the string payload. Valid only for KindString.
func (v Value) AsString() string {
	return v.str
}

// AsNumber returns the numeric payload. Valid only for KindNumber.
func (v Value) AsNumber() Number {
	return v.num
}

// Elems returns the array elements. Valid only for KindArray.
func (v Value) Elems() []Value {
	return v.arr
}

// Members returns the object members in source order. Valid only for KindObject.
func (v Value) Members() []Member {
	return v.obj
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemagen

import (
	"bytes"
	"encoding/json"
)

// Doc is a JSON Schema document under construction. Fields marshal in
// insertion order, so generated schemas serialize deterministically and
// `properties` keys mirror the input object's key order.
type Doc struct {
	fields []docField
}

type docField struct {
	key string
	val any
}

// NewDoc returns an empty document.
func NewDoc() *Doc {
	return &Doc{}
}

// Set stores a field. An existing key keeps its position; a new key is
// appended.
func (d *Doc) Set(key string, val any) *Doc {
	for i := range d.fields {
		if d.fields[i].key == key {
			d.fields[i].val = val
			return d
		}
	}
	d.fields = append(d.fields, docField{key: key, val: val})
	return d
}

// Get returns the value stored for key.
func (d *Doc) Get(key string) (any, bool) {
	for i := range d.fields {
		if d.fields[i].key == key {
			return d.fields[i].val, true
		}
	}
	return nil, false
}

// Has reports whether the document contains key.
func (d *Doc) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the field names in insertion order.
func (d *Doc) Keys() []string {
	keys := make([]string, len(d.fields))
	for i := range d.fields {
		keys[i] = d.fields[i].key
	}
	return keys
}

// Len returns the number of fields.
func (d *Doc) Len() int {
	return len(d.fields)
}

// MarshalJSON emits the fields in insertion order.
func (d *Doc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.val)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

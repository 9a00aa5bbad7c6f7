// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/jenerator/internal/jsonval"
)

func TestDecode_Kinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want jsonval.Kind
	}{
		{"null", `null`, jsonval.KindNull},
		{"true", `true`, jsonval.KindBool},
		{"number", `42`, jsonval.KindNumber},
		{"string", `"hi"`, jsonval.KindString},
		{"array", `[1,2]`, jsonval.KindArray},
		{"object", `{"a":1}`, jsonval.KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := jsonval.Decode([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Kind())
		})
	}
}

func TestDecode_PreservesKeyOrder(t *testing.T) {
	v, err := jsonval.Decode([]byte(`{"zulu":1,"alpha":2,"mike":3}`))
	require.NoError(t, err)

	members := v.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "zulu", members[0].Key)
	assert.Equal(t, "alpha", members[1].Key)
	assert.Equal(t, "mike", members[2].Key)
}

func TestDecode_Nested(t *testing.T) {
	v, err := jsonval.Decode([]byte(`{"user":{"name":"ada","tags":["x","y"]},"active":true}`))
	require.NoError(t, err)

	members := v.Members()
	require.Len(t, members, 2)

	user := members[0].Value
	require.Equal(t, jsonval.KindObject, user.Kind())
	assert.Equal(t, "name", user.Members()[0].Key)
	assert.Equal(t, "ada", user.Members()[0].Value.AsString())

	tags := user.Members()[1].Value
	require.Equal(t, jsonval.KindArray, tags.Kind())
	assert.Len(t, tags.Elems(), 2)

	assert.True(t, members[1].Value.AsBool())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty input", ``},
		{"unquoted key", `{invalid: json}`},
		{"truncated object", `{"a":`},
		{"truncated array", `[1,`},
		{"trailing data", `{"a":1} extra`},
		{"two values", `1 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jsonval.Decode([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestNumber_IntegerDetection(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantInt bool
	}{
		{"small int", `42`, true},
		{"negative int", `-7`, true},
		{"max int64", `9223372036854775807`, true},
		{"min int64", `-9223372036854775808`, true},
		{"max uint64", `18446744073709551615`, true},
		{"beyond uint64", `18446744073709551616`, false},
		{"float", `3.14`, false},
		{"integral float", `42.0`, false},
		{"exponent", `1e3`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := jsonval.Decode([]byte(tt.src))
			require.NoError(t, err)
			require.Equal(t, jsonval.KindNumber, v.Kind())
			assert.Equal(t, tt.wantInt, v.AsNumber().IsInt())
		})
	}
}

func TestNumber_Accessors(t *testing.T) {
	n := jsonval.Int(42).AsNumber()

	i, ok := n.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)

	u, ok := n.Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(42), u)

	assert.Equal(t, "42", n.Literal().String())

	f := jsonval.Float(2.5).AsNumber()
	_, ok = f.Int64()
	assert.False(t, ok)
	assert.InDelta(t, 2.5, f.Float64(), 0)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", jsonval.KindNull.String())
	assert.Equal(t, "boolean", jsonval.KindBool.String())
	assert.Equal(t, "number", jsonval.KindNumber.String())
	assert.Equal(t, "string", jsonval.KindString.String())
	assert.Equal(t, "array", jsonval.KindArray.String())
	assert.Equal(t, "object", jsonval.KindObject.String())
}

func TestConstructors(t *testing.T) {
	obj := jsonval.Object(
		jsonval.Member{Key: "a", Value: jsonval.Null()},
		jsonval.Member{Key: "b", Value: jsonval.String("x")},
	)
	require.Equal(t, jsonval.KindObject, obj.Kind())
	assert.Equal(t, "a", obj.Members()[0].Key)

	arr := jsonval.Array(jsonval.Bool(true), jsonval.Uint(1))
	require.Equal(t, jsonval.KindArray, arr.Kind())
	assert.Len(t, arr.Elems(), 2)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/jenerator/internal/commands"
)

func execute(args ...string) error {
	root := commands.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRoot_GeneratesSchema(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	input := writeFile(t, tmpDir, "simple.json", `{"name":"test","value":42}`)

	require.NoError(t, execute(input, "--non-interactive"))

	content, err := os.ReadFile(filepath.Join(tmpDir, "simple.schema.json")) //nolint:gosec // test file path
	require.NoError(t, err)

	// Default tier is standard.
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 0},
			"value": {"type": "integer", "minimum": 42}
		},
		"required": ["name", "value"],
		"additionalProperties": true
	}`, string(content))
}

func TestRoot_TierFlag(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	input := writeFile(t, tmpDir, "simple.json", `{"name":"test"}`)

	require.NoError(t, execute(input, "--tier", "comprehensive", "--non-interactive"))

	content, err := os.ReadFile(filepath.Join(tmpDir, "simple.schema.json")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(content), `"$schema":"https://json-schema.org/draft/2020-12/schema"`)
	assert.Contains(t, string(content), `"minProperties":1`)
}

func TestRoot_CustomOutput(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	input := writeFile(t, tmpDir, "input.json", `{"name":"test","value":42}`)
	output := filepath.Join(tmpDir, "custom_output.json")

	require.NoError(t, execute(input, "-o", output, "--non-interactive"))

	_, err := os.Stat(output)
	assert.NoError(t, err)
}

func TestRoot_PrettyFlag(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	input := writeFile(t, tmpDir, "data.json", `{"a":1}`)

	require.NoError(t, execute(input, "--pretty", "--non-interactive"))

	content, err := os.ReadFile(filepath.Join(tmpDir, "data.schema.json")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(content), "\n  \"type\": \"object\"")
}

func TestRoot_ValidateFlag(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	input := writeFile(t, tmpDir, "data.json", `{"user":{"email":"a@b.c","ids":[1,2]}}`)

	require.NoError(t, execute(input, "--tier", "expert", "--validate", "--non-interactive"))

	_, err := os.Stat(filepath.Join(tmpDir, "data.schema.json"))
	assert.NoError(t, err)
}

func TestRoot_FileNotFound(t *testing.T) {
	t.Chdir(t.TempDir())

	err := execute("nonexistent_file.json", "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestRoot_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	input := writeFile(t, tmpDir, "invalid.json", `{invalid: json}`)

	err := execute(input, "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestRoot_MissingInput_NonInteractive(t *testing.T) {
	t.Chdir(t.TempDir())

	err := execute("--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file is required")
}

func TestRoot_Batch(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	writeFile(t, tmpDir, "batch1.json", `{"name":"test1","id":1}`)
	writeFile(t, tmpDir, "batch2.json", `{"name":"test2","id":2,"active":true}`)
	writeFile(t, tmpDir, "batch3.json", `{"users":[{"name":"user1"},{"name":"user2"}]}`)

	pattern := filepath.Join(tmpDir, "*.json")
	require.NoError(t, execute(pattern, "--batch", "--tier", "comprehensive", "--non-interactive"))

	for _, name := range []string{"batch1.schema.json", "batch2.schema.json", "batch3.schema.json"} {
		_, err := os.Stat(filepath.Join(tmpDir, name))
		assert.NoError(t, err, "schema file should exist: %s", name)
	}
}

func TestRoot_Batch_ReportsFailures(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	writeFile(t, tmpDir, "good.json", `{"a":1}`)
	writeFile(t, tmpDir, "bad.json", `{broken`)

	pattern := filepath.Join(tmpDir, "*.json")
	err := execute(pattern, "--batch", "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process 1 file(s)")

	// The good file was still processed.
	_, statErr := os.Stat(filepath.Join(tmpDir, "good.schema.json"))
	assert.NoError(t, statErr)
}

func TestRoot_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "jenerator.yaml", "default_tier: expert\npretty_output: true\n")
	t.Chdir(tmpDir)
	input := writeFile(t, tmpDir, "data.json", `{"a":"hello"}`)

	require.NoError(t, execute(input, "--non-interactive"))

	content, err := os.ReadFile(filepath.Join(tmpDir, "data.schema.json")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(content), "Generated Object Schema")
	assert.Contains(t, string(content), "\n  ") // pretty_output from config
}

func TestRoot_TierFlagOverridesConfig(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "jenerator.yaml", "default_tier: expert\n")
	t.Chdir(tmpDir)
	input := writeFile(t, tmpDir, "data.json", `{"a":1}`)

	require.NoError(t, execute(input, "--tier", "basic", "--non-interactive"))

	content, err := os.ReadFile(filepath.Join(tmpDir, "data.schema.json")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object","properties":{"a":{"type":"integer"}}}`, string(content))
}

func TestRoot_InvalidTier(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	input := writeFile(t, tmpDir, "data.json", `{"a":1}`)

	err := execute(input, "--tier", "ultra", "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tier")
}

func TestVersionCmd(t *testing.T) {
	assert.NoError(t, execute("version"))
}

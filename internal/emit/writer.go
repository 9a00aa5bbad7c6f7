// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package emit serializes generated schema documents to disk.
package emit

import (
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/dacolabs/jenerator/internal/schemagen"
)

// OutputPath resolves where a generated schema should be written.
// An explicit path wins; otherwise the schema is named <input-stem>.schema.json
// and placed in outputDir, or next to the input when outputDir is empty.
func OutputPath(input, explicit, outputDir string) string {
	if explicit != "" {
		return explicit
	}
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := stem + ".schema.json"
	if outputDir != "" {
		return filepath.Join(outputDir, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}

// WriteSchema writes the schema document to path, compact or indented.
func WriteSchema(path string, doc *schemagen.Doc, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

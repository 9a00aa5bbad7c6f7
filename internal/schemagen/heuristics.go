// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemagen

import (
	"strings"

	"github.com/dacolabs/jenerator/internal/jsonval"
)

// detectFormat sniffs a JSON Schema format for a string. The email check
// takes priority over the uri check; both are deliberately loose.
func detectFormat(s string) (string, bool) {
	switch {
	case strings.Contains(s, "@") && strings.Contains(s, "."):
		return "email", true
	case strings.HasPrefix(s, "http"):
		return "uri", true
	}
	return "", false
}

// detectPattern returns a pattern for strings made only of ASCII digits,
// dashes, and spaces (phone numbers, dates, ids). Checked only after
// detectFormat found nothing.
func detectPattern(s string) (string, bool) {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '-' && r != ' ' {
			return "", false
		}
	}
	return `^[\d\-\s]+$`, true
}

// itemKinds collects the set of top-level JSON kinds in an array.
func itemKinds(elems []jsonval.Value) map[jsonval.Kind]struct{} {
	kinds := make(map[jsonval.Kind]struct{}, len(elems))
	for _, e := range elems {
		kinds[e.Kind()] = struct{}{}
	}
	return kinds
}

// isHomogeneous reports whether every element shares one top-level kind.
// Elements are not compared structurally: an array of objects with
// different key sets still counts as homogeneous.
func isHomogeneous(elems []jsonval.Value) bool {
	return len(itemKinds(elems)) <= 1
}

// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package format

import (
	"slices"
	"strings"
)

// PluralSeparator joins the plural forms of a value inside a single stored
// string. The two control bytes never occur in translatable text.
const PluralSeparator = "\x1e\x1e"

// SplitPlural splits a stored value into its plural forms.
//
// The result always has at least one element; a value without separators is
// returned as a single form.
func SplitPlural(value string) []string {
	return strings.Split(value, PluralSeparator)
}

// JoinPlural is the inverse of [SplitPlural].
func JoinPlural(forms []string) string {
	return strings.Join(forms, PluralSeparator)
}

// alignDiff stretches the plural forms of a diff reference to at least count
// elements by repeating the first form. The previous message did not have to
// be a plural. Extra forms are kept; the per-form loop ignores them.
func alignDiff(forms []string, count int) []string {
	out := slices.Clone(forms)
	for len(out) < count {
		out = append(out, out[0])
	}

	return out
}

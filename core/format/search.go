// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package format

import (
	"regexp"
	"strings"
)

// SearchMode selects how a search or replacement term is marked.
type SearchMode string

// Search modes. The replacement modes double as the marker CSS class.
const (
	MatchSearch      SearchMode = "search"
	MatchReplacement SearchMode = "replacement"
	MatchReplaced    SearchMode = "replaced"
)

// fmtSearch wraps occurrences of the search term in a marker. An empty term
// is a passthrough.
//
// Mode "search" marks every case-insensitive occurrence, since the search
// that produced the term ignored case as well. The replacement modes mark
// exact-case occurrences only, with the mode name as marker class. Unknown
// modes leave the value untouched.
func fmtSearch(value Escaped, term string, mode SearchMode) Escaped {
	if term == "" {
		return value
	}

	needle := string(Escape(term))

	switch mode {
	case MatchSearch:
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(needle))

		return Escaped(re.ReplaceAllStringFunc(string(value), func(match string) string {
			return `<span class="hlmatch">` + match + `</span>`
		}))
	case MatchReplacement, MatchReplaced:
		marked := `<span class="` + string(mode) + `">` + needle + `</span>`

		return Escaped(strings.ReplaceAll(string(value), needle, marked))
	}

	return value
}

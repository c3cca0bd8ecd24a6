// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package format

import (
	"fmt"
	"strings"

	"github.com/raymondelooff/weblate/core/unit"
)

// hlCheckFormat wraps a quality-check flagged snippet. The empty inner span
// is the anchor the frontend numbers highlights with.
const hlCheckFormat = `<span class="hlcheck"><span class="highlight-number"></span>%s</span>`

// Highlight is one snippet flagged by a quality check, as literal text taken
// from the raw value.
type Highlight struct {
	Check string `json:"check"`
	Text  string `json:"text"`
}

// HighlightLookup returns the snippets flagged by quality checks in raw,
// ordered by position. The order defines the scan order below.
type HighlightLookup func(raw string, u *unit.Unit) []Highlight

// fmtHighlights wraps flagged snippets in hlcheck markers.
//
// The scan keeps a cursor that only moves forward: each snippet is searched
// at or after the cursor, and a successful wrap advances the cursor past the
// inserted marker. Duplicate snippets therefore match successive
// occurrences, text inside an earlier marker is never re-matched, and a
// snippet that cannot be found from the cursor on is dropped silently. This
// single forward pass deliberately under-matches overlapping snippets
// instead of risking nested or double-wrapped markers.
func fmtHighlights(value Escaped, raw string, u *unit.Unit, lookup HighlightLookup) Escaped {
	if u == nil || lookup == nil {
		return value
	}

	s := string(value)
	cursor := 0

	for _, h := range lookup(raw, u) {
		// The snippet is literal raw text; escape it the same way the whole
		// value was escaped so it can be found in the escaped string.
		needle := string(Escape(h.Text))
		if needle == "" {
			continue
		}

		idx := strings.Index(s[cursor:], needle)
		if idx < 0 {
			continue
		}

		at := cursor + idx
		marked := fmt.Sprintf(hlCheckFormat, needle)
		s = s[:at] + marked + s[at+len(needle):]
		cursor = at + len(marked)
	}

	return Escaped(s)
}

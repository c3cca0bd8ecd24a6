// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package checks

import (
	"sort"

	"github.com/raymondelooff/weblate/core/format"
	"github.com/raymondelooff/weblate/core/unit"
)

// span is a candidate highlight with its byte offsets in the raw value.
type span struct {
	start, end int
	check      string
}

// HighlightString returns the snippets flagged by the quality checks the
// unit's flags enable, ordered by position in raw. Overlapping spans are
// resolved in favor of the earliest start (ties go to the longer span); the
// rest are dropped.
//
// HighlightString satisfies [format.HighlightLookup].
func HighlightString(raw string, u *unit.Unit) []format.Highlight {
	if u == nil || raw == "" {
		return nil
	}

	var spans []span

	for _, c := range registry {
		if c.highlight == nil {
			continue
		}

		if c.flag != "" && !u.HasFlag(c.flag) {
			continue
		}

		for _, loc := range c.highlight.FindAllStringIndex(raw, -1) {
			spans = append(spans, span{start: loc[0], end: loc[1], check: c.ID})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}

		return spans[i].end > spans[j].end
	})

	out := make([]format.Highlight, 0, len(spans))
	end := 0

	for _, sp := range spans {
		if sp.start < end {
			continue
		}

		out = append(out, format.Highlight{Check: sp.check, Text: raw[sp.start:sp.end]})
		end = sp.end
	}

	return out
}

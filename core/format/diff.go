// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package format

import (
	"github.com/raymondelooff/weblate/core/simplediff"
)

// fmtDiff overlays <del>/<ins> markup for the plural form idx of the aligned
// diff reference. A nil reference is a passthrough.
//
// This stage must run before highlight stages: they search the rendered text
// literally, so they have to see the same text the user will, diff markup
// included.
func fmtDiff(value Escaped, diff []Escaped, idx int) Escaped {
	if diff == nil {
		return value
	}

	return Escaped(simplediff.HTML(string(diff[idx]), string(value)))
}

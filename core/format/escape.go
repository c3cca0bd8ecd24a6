// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package format

import "html"

// Escaped is HTML-safe text. It is produced from raw text by [Escape] and,
// past that point, only ever extended with markup the pipeline itself
// generates. Stages must not escape it again.
type Escaped string

func (e Escaped) String() string {
	return string(e)
}

// Escape converts raw text into [Escaped] text by escaping the five
// HTML-sensitive characters (&, <, >, " and ').
func Escape(raw string) Escaped {
	return Escaped(html.EscapeString(raw))
}

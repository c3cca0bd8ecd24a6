// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package simplediff renders an inline HTML diff between two versions of a
translation string.

The diff is computed at character level, so a one-word edit inside a long
sentence marks only the changed characters. Both inputs must already be
HTML-escaped; the output embeds <del> and <ins> tags around the escaped text
and is safe to hand to a template as-is.
*/
package simplediff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// HTML diffs old against new and returns new with inline <del>/<ins> markup.
//
// Deleted runs from old appear wrapped in <del>, inserted runs from new in
// <ins>, and a replacement produces the deletion followed by the insertion.
// Equal runs are passed through untouched. Diffing two equal strings returns
// new unchanged.
func HTML(oldText, newText string) string {
	if oldText == newText {
		return newText
	}

	a := explode(oldText)
	b := explode(newText)

	var out strings.Builder

	out.Grow(len(newText))

	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'e': // equal
			writeAll(&out, b[op.J1:op.J2])
		case 'd': // delete
			out.WriteString("<del>")
			writeAll(&out, a[op.I1:op.I2])
			out.WriteString("</del>")
		case 'i': // insert
			out.WriteString("<ins>")
			writeAll(&out, b[op.J1:op.J2])
			out.WriteString("</ins>")
		case 'r': // replace
			out.WriteString("<del>")
			writeAll(&out, a[op.I1:op.I2])
			out.WriteString("</del><ins>")
			writeAll(&out, b[op.J1:op.J2])
			out.WriteString("</ins>")
		}
	}

	return out.String()
}

// explode splits s into one element per rune so the SequenceMatcher compares
// characters rather than lines.
func explode(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

func writeAll(out *strings.Builder, parts []string) {
	for _, part := range parts {
		out.WriteString(part)
	}
}

// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package format

import (
	"context"
	"regexp"
	"strings"

	"github.com/raymondelooff/weblate/i18n"
)

// whitespaceRe flags space runs that are invisible in rendered HTML: two or
// more consecutive spaces, a single trailing space, or a single leading
// space. Single interior spaces are left alone.
var whitespaceRe = regexp.MustCompile(`(  +| $|^ )`)

// newlinesReplacer normalizes all line-ending variants to a plain newline.
var newlinesReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// spaceSpace renders one space of a flagged run: the space stays readable
// for screen readers while the span makes it visible.
const spaceSpace = `<span class="space-space"><span class="sr-only"> </span></span>`

// fmtWhitespace makes otherwise-invisible whitespace in one paragraph
// visible: every space of a flagged run becomes a space marker (the run
// wrapped in hlspace), then every tab becomes a tab marker.
func fmtWhitespace(ctx context.Context, paragraph Escaped) Escaped {
	value := whitespaceRe.ReplaceAllStringFunc(string(paragraph), func(match string) string {
		return `<span class="hlspace">` + strings.ReplaceAll(match, " ", spaceSpace) + `</span>`
	})

	value = strings.ReplaceAll(value, "\t", tabMarker(ctx))

	return Escaped(value)
}

// tabMarker renders a tab as a visible marker while keeping the tab itself
// available to screen readers and clipboard selection.
func tabMarker(ctx context.Context) string {
	label := string(Escape(i18n.Tr(ctx, "Tab character")))

	return `<span class="hlspace"><span class="space-tab" title="` + label + `">` +
		`<span class="sr-only">` + "\t" + `</span></span></span>`
}

// newlineMarker renders a plural-form line break: an accessible label for
// screen readers followed by an actual line break.
func newlineMarker(ctx context.Context) string {
	label := string(Escape(i18n.Tr(ctx, "New line")))

	return `<span class="hlspace"><span class="space-nl">` +
		`<span class="sr-only">` + label + `</span></span></span><br />`
}

// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package format

import (
	"context"
	"strings"
	"testing"
)

func TestFmtWhitespace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tab := tabMarker(ctx)

	tests := []struct {
		name      string
		paragraph string
		want      string
	}{
		{
			name:      "single interior space untouched",
			paragraph: "a b",
			want:      "a b",
		},
		{
			name:      "double space marks every space of the run",
			paragraph: "a  b",
			want:      `a<span class="hlspace">` + spaceSpace + spaceSpace + `</span>b`,
		},
		{
			name:      "trailing space",
			paragraph: "a ",
			want:      `a<span class="hlspace">` + spaceSpace + `</span>`,
		},
		{
			name:      "leading space",
			paragraph: " a",
			want:      `<span class="hlspace">` + spaceSpace + `</span>a`,
		},
		{
			name:      "tab becomes a tab marker",
			paragraph: "a\tb",
			want:      "a" + tab + "b",
		},
		{
			name:      "empty paragraph",
			paragraph: "",
			want:      "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fmtWhitespace(ctx, Escaped(tt.paragraph)); string(got) != tt.want {
				t.Errorf("fmtWhitespace(%q) = %q, want %q", tt.paragraph, got, tt.want)
			}
		})
	}
}

func TestTabMarker_KeepsTabAccessible(t *testing.T) {
	t.Parallel()

	got := tabMarker(context.Background())

	if !strings.Contains(got, `<span class="sr-only">`+"\t"+`</span>`) {
		t.Errorf("tab marker lost the literal tab: %q", got)
	}

	if !strings.Contains(got, `title="Tab character"`) {
		t.Errorf("tab marker lost its label: %q", got)
	}
}

func TestNewlineMarker(t *testing.T) {
	t.Parallel()

	got := newlineMarker(context.Background())

	if !strings.HasSuffix(got, "<br />") {
		t.Errorf("newline marker must end in a line break: %q", got)
	}

	if !strings.Contains(got, `<span class="sr-only">New line</span>`) {
		t.Errorf("newline marker lost its label: %q", got)
	}
}

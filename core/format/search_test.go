// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package format

import "testing"

func TestFmtSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		term  string
		mode  SearchMode
		want  string
	}{
		{
			name:  "search matches case-insensitively",
			value: "Foo and foo",
			term:  "foo",
			mode:  MatchSearch,
			want:  `<span class="hlmatch">Foo</span> and <span class="hlmatch">foo</span>`,
		},
		{
			name:  "search term is treated literally",
			value: "axb a.b",
			term:  "a.b",
			mode:  MatchSearch,
			want:  `axb <span class="hlmatch">a.b</span>`,
		},
		{
			name:  "replacement matches exact case only",
			value: "Foo and foo",
			term:  "Foo",
			mode:  MatchReplacement,
			want:  `<span class="replacement">Foo</span> and foo`,
		},
		{
			name:  "replaced uses its mode as marker class",
			value: "done",
			term:  "done",
			mode:  MatchReplaced,
			want:  `<span class="replaced">done</span>`,
		},
		{
			name:  "empty term is a passthrough",
			value: "anything",
			term:  "",
			mode:  MatchSearch,
			want:  "anything",
		},
		{
			name:  "unknown mode is a passthrough",
			value: "anything",
			term:  "any",
			mode:  SearchMode("bogus"),
			want:  "anything",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fmtSearch(Escaped(tt.value), tt.term, tt.mode); string(got) != tt.want {
				t.Errorf("fmtSearch(%q, %q, %q) = %q, want %q", tt.value, tt.term, tt.mode, got, tt.want)
			}
		})
	}
}

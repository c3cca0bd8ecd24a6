// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package format

import "testing"

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want Escaped
	}{
		{
			name: "plain text untouched",
			raw:  "hello world",
			want: "hello world",
		},
		{
			name: "all five sensitive characters",
			raw:  `<b>"a" & 'b'</b>`,
			want: `&lt;b&gt;&#34;a&#34; &amp; &#39;b&#39;&lt;/b&gt;`,
		},
		{
			name: "already escaped text is escaped again",
			raw:  "&amp;",
			want: "&amp;amp;",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Escape(tt.raw); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

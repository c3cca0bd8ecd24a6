// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package unit

import (
	"context"
	"testing"
	"time"
)

func TestNaturaltime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value time.Time
		want  string
	}{
		{
			name:  "zero value",
			value: time.Time{},
			want:  "",
		},
		{
			name:  "same instant",
			value: now,
			want:  "now",
		},
		{
			name:  "one second ago",
			value: now.Add(-time.Second),
			want:  "a second ago",
		},
		{
			name:  "thirty seconds ago",
			value: now.Add(-30 * time.Second),
			want:  "30 seconds ago",
		},
		{
			name:  "one minute ago",
			value: now.Add(-time.Minute),
			want:  "a minute ago",
		},
		{
			name:  "five minutes ago",
			value: now.Add(-5 * time.Minute),
			want:  "5 minutes ago",
		},
		{
			name:  "one hour ago",
			value: now.Add(-time.Hour),
			want:  "an hour ago",
		},
		{
			name:  "three hours ago",
			value: now.Add(-3 * time.Hour),
			want:  "3 hours ago",
		},
		{
			name:  "yesterday",
			value: now.Add(-24 * time.Hour),
			want:  "yesterday",
		},
		{
			name:  "three days ago",
			value: now.Add(-3 * 24 * time.Hour),
			want:  "3 days ago",
		},
		{
			name:  "a week ago",
			value: now.Add(-7 * 24 * time.Hour),
			want:  "a week ago",
		},
		{
			name:  "three weeks ago",
			value: now.Add(-21 * 24 * time.Hour),
			want:  "3 weeks ago",
		},
		{
			name:  "a month ago",
			value: now.Add(-31 * 24 * time.Hour),
			want:  "a month ago",
		},
		{
			name:  "six months ago",
			value: now.Add(-6 * 30 * 24 * time.Hour),
			want:  "6 months ago",
		},
		{
			name:  "a year ago",
			value: now.Add(-365 * 24 * time.Hour),
			want:  "a year ago",
		},
		{
			name:  "two years ago",
			value: now.Add(-2 * 365 * 24 * time.Hour),
			want:  "2 years ago",
		},
		{
			name:  "tomorrow",
			value: now.Add(24 * time.Hour),
			want:  "tomorrow",
		},
		{
			name:  "a week from now",
			value: now.Add(7 * 24 * time.Hour),
			want:  "a week from now",
		},
		{
			name:  "two hours from now",
			value: now.Add(2 * time.Hour),
			want:  "2 hours from now",
		},
		{
			name:  "a year from now",
			value: now.Add(366 * 24 * time.Hour),
			want:  "a year from now",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Naturaltime(ctx, tt.value, now); got != tt.want {
				t.Errorf("Naturaltime(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package unit

import (
	"context"
	"time"

	"github.com/raymondelooff/weblate/i18n"
)

const (
	daysPerYear  = 365
	daysPerMonth = 30
	daysPerWeek  = 7
)

// Naturaltime renders the distance between value and now as localized text,
// e.g. "3 weeks ago" or "tomorrow".
//
// A zero value returns the empty string.
func Naturaltime(ctx context.Context, value, now time.Time) string {
	if value.IsZero() {
		return ""
	}

	if value.Before(now) {
		return naturaltimePast(ctx, now.Sub(value))
	}

	return naturaltimeFuture(ctx, value.Sub(now))
}

func naturaltimePast(ctx context.Context, delta time.Duration) string {
	days := int(delta.Hours() / 24)
	seconds := int(delta.Seconds()) % (24 * 60 * 60)

	switch {
	case days >= daysPerYear:
		count := days / daysPerYear
		if count == 1 {
			return i18n.Tr(ctx, "a year ago")
		}

		return i18n.TrN(ctx, "{{.Count}} year ago", "{{.Count}} years ago", count, "Count", count)
	case days >= daysPerMonth:
		count := days / daysPerMonth
		if count == 1 {
			return i18n.Tr(ctx, "a month ago")
		}

		return i18n.TrN(ctx, "{{.Count}} month ago", "{{.Count}} months ago", count, "Count", count)
	case days >= 2*daysPerWeek:
		count := days / daysPerWeek

		return i18n.TrN(ctx, "{{.Count}} week ago", "{{.Count}} weeks ago", count, "Count", count)
	case days > 0:
		if days == daysPerWeek {
			return i18n.Tr(ctx, "a week ago")
		}

		if days == 1 {
			return i18n.Tr(ctx, "yesterday")
		}

		return i18n.TrN(ctx, "{{.Count}} day ago", "{{.Count}} days ago", days, "Count", days)
	case seconds == 0:
		return i18n.Tr(ctx, "now")
	case seconds < 60:
		if seconds == 1 {
			return i18n.Tr(ctx, "a second ago")
		}

		return i18n.TrN(ctx, "{{.Count}} second ago", "{{.Count}} seconds ago", seconds, "Count", seconds)
	case seconds/60 < 60:
		count := seconds / 60
		if count == 1 {
			return i18n.Tr(ctx, "a minute ago")
		}

		return i18n.TrN(ctx, "{{.Count}} minute ago", "{{.Count}} minutes ago", count, "Count", count)
	default:
		count := seconds / 60 / 60
		if count == 1 {
			return i18n.Tr(ctx, "an hour ago")
		}

		return i18n.TrN(ctx, "{{.Count}} hour ago", "{{.Count}} hours ago", count, "Count", count)
	}
}

func naturaltimeFuture(ctx context.Context, delta time.Duration) string {
	days := int(delta.Hours() / 24)
	seconds := int(delta.Seconds()) % (24 * 60 * 60)

	switch {
	case days >= daysPerYear:
		count := days / daysPerYear
		if count == 1 {
			return i18n.Tr(ctx, "a year from now")
		}

		return i18n.TrN(ctx, "{{.Count}} year from now", "{{.Count}} years from now", count, "Count", count)
	case days >= daysPerMonth:
		count := days / daysPerMonth
		if count == 1 {
			return i18n.Tr(ctx, "a month from now")
		}

		return i18n.TrN(ctx, "{{.Count}} month from now", "{{.Count}} months from now", count, "Count", count)
	case days >= 2*daysPerWeek:
		count := days / daysPerWeek

		return i18n.TrN(ctx, "{{.Count}} week from now", "{{.Count}} weeks from now", count, "Count", count)
	case days > 0:
		if days == 1 {
			return i18n.Tr(ctx, "tomorrow")
		}

		if days == daysPerWeek {
			return i18n.Tr(ctx, "a week from now")
		}

		return i18n.TrN(ctx, "{{.Count}} day from now", "{{.Count}} days from now", days, "Count", days)
	case seconds == 0:
		return i18n.Tr(ctx, "now")
	case seconds < 60:
		if seconds == 1 {
			return i18n.Tr(ctx, "a second from now")
		}

		return i18n.TrN(ctx, "{{.Count}} second from now", "{{.Count}} seconds from now", seconds, "Count", seconds)
	case seconds/60 < 60:
		count := seconds / 60
		if count == 1 {
			return i18n.Tr(ctx, "a minute from now")
		}

		return i18n.TrN(ctx, "{{.Count}} minute from now", "{{.Count}} minutes from now", count, "Count", count)
	default:
		count := seconds / 60 / 60
		if count == 1 {
			return i18n.Tr(ctx, "an hour from now")
		}

		return i18n.TrN(ctx, "{{.Count}} hour from now", "{{.Count}} hours from now", count, "Count", count)
	}
}

// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

type contextKeyType struct{}

var tagKey = contextKeyType{}

// LangParam is the name of the URL query parameter used by HTTP helpers to read
// a preferred UI language as a BCP 47 tag.
const LangParam = "lang"

// WithTag stores t in ctx and returns a derived context that carries it.
//
// The returned context should be passed to downstream code that performs
// translations. Passing the zero value of [language.Tag] clears any existing value.
//
// The ctx must not be nil.
func WithTag(ctx context.Context, t language.Tag) context.Context {
	return context.WithValue(ctx, tagKey, t)
}

// TagFrom returns the language tag stored in ctx, or the tag for [BaseLocale]
// if none is present. It never returns the zero value of [language.Tag].
//
// TagFrom returns the base language tag when no tag is found in ctx or
// ctx is nil. Translation helpers fall back to the base locale until Setup
// has loaded the catalogs.
func TagFrom(ctx context.Context) language.Tag {
	if ctx != nil {
		if t, _ := ctx.Value(tagKey).(language.Tag); t != (language.Tag{}) {
			return t
		}
	}

	return baseTag
}

// FromRequest returns the best language tag for r by inspecting user preferences
// in priority order:
// 1) query parameter [LangParam]
// 2) Accept-Language header
//
// If r is nil, or if Setup has not been called, FromRequest returns the tag for [BaseLocale].
func FromRequest(r *http.Request) language.Tag {
	if r == nil || matcher == nil {
		return baseTag
	}

	preferred := make([]string, 0, 2)
	if q := r.URL.Query().Get(LangParam); q != "" {
		preferred = append(preferred, q)
	}

	if al := r.Header.Get("Accept-Language"); al != "" {
		preferred = append(preferred, al)
	}

	// Match the user's preferences.
	tag, _ := language.MatchStrings(matcher, preferred...)

	return tag
}

// WithRequest resolves the language from r using [FromRequest] and installs the
// matched tag in the returned context. It is equivalent to:
//
//	WithTag(ctx, FromRequest(r))
//
// If r is nil or Setup has not been called, the tag for [BaseLocale] is installed.
// The ctx must not be nil.
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	return WithTag(ctx, FromRequest(r))
}

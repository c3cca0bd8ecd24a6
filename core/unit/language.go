// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package unit

import (
	"context"

	"github.com/raymondelooff/weblate/i18n"
)

// Plural describes the plural-form layout of a language: how many
// grammatical forms it distinguishes and what each form is called.
type Plural struct {
	// Number is the count of plural forms the language uses.
	Number int `json:"number"`

	// Names holds the localizable category name for each form, in form order.
	Names []i18n.MsgKey `json:"names"`
}

// FormName returns the localized name of plural form idx.
//
// An index past the known names falls back to a generic numbered label
// rather than failing; callers never need to range-check.
func (p Plural) FormName(ctx context.Context, idx int) string {
	if idx >= 0 && idx < len(p.Names) {
		return p.Names[idx].Tr(ctx)
	}

	return i18n.Tr(ctx, "Plural form {{.Index}}", "Index", idx)
}

// Language identifies a target language and its plural behavior.
type Language struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Plural Plural `json:"plural"`
}

// Common plural layouts. The two-form layout is the fallback for languages
// we have no specific data for.
var (
	pluralTwoForms = Plural{
		Number: 2,
		Names:  []i18n.MsgKey{"Singular", "Plural"},
	}

	pluralOneFewOther = Plural{
		Number: 3,
		Names:  []i18n.MsgKey{"One", "Few", "Other"},
	}

	pluralSingleForm = Plural{
		Number: 1,
		Names:  []i18n.MsgKey{"Other"},
	}
)

// languages is the built-in language table. It intentionally covers only
// what the test-suite and demo deployments need; unknown codes degrade to a
// two-form language named after the code.
var languages = map[string]Language{
	"en": {Code: "en", Name: "English", Plural: pluralTwoForms},
	"de": {Code: "de", Name: "German", Plural: pluralTwoForms},
	"nl": {Code: "nl", Name: "Dutch", Plural: pluralTwoForms},
	"fr": {Code: "fr", Name: "French", Plural: pluralTwoForms},
	"cs": {Code: "cs", Name: "Czech", Plural: pluralOneFewOther},
	"sk": {Code: "sk", Name: "Slovak", Plural: pluralOneFewOther},
	"ja": {Code: "ja", Name: "Japanese", Plural: pluralSingleForm},
	"ko": {Code: "ko", Name: "Korean", Plural: pluralSingleForm},
	"zh": {Code: "zh", Name: "Chinese", Plural: pluralSingleForm},
}

// GetLanguage looks up a language by its code.
//
// Unknown codes never fail: the result echoes the code and assumes the
// common two-form plural layout.
func GetLanguage(code string) Language {
	if lang, ok := languages[code]; ok {
		return lang
	}

	return Language{Code: code, Name: code, Plural: pluralTwoForms}
}

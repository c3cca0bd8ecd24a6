// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package format

import (
	"context"
	"strings"

	"github.com/raymondelooff/weblate/core/unit"
)

// Request configures one rendering of a translatable value.
type Request struct {
	// Value is the raw text to render, possibly holding several plural
	// forms joined by [PluralSeparator].
	Value string

	Language unit.Language

	// Plural overrides the language's plural metadata when non-nil.
	Plural *unit.Plural

	// Diff is the previous raw value to diff against; nil disables the
	// diff stage.
	Diff *string

	// Search is the term to highlight; Match selects the marker style.
	Search string
	Match  SearchMode

	// Simple is passed through to the display layer untouched.
	Simple bool

	// NumPlurals is the number of plural forms the display context shows.
	// At most one means only the last form is rendered.
	NumPlurals int

	// Unit enables quality-check highlights via Highlights. Both may be
	// nil, which skips that stage.
	Unit       *unit.Unit
	Highlights HighlightLookup
}

// Part is one rendered plural form.
type Part struct {
	// Title is the localized plural-form name, set only when more than one
	// form is rendered.
	Title string `json:"title"`

	// Content is the annotated fragment to display.
	Content Escaped `json:"content"`

	// Copy is the escaped but unannotated text for copy-to-clipboard use.
	Copy Escaped `json:"copy"`
}

// Result is the render model handed to the display layer.
type Result struct {
	Simple   bool          `json:"simple"`
	Items    []Part        `json:"items"`
	Language unit.Language `json:"language"`
	Unit     *unit.Unit    `json:"unit,omitempty"`
}

// Format renders a translatable value, handling plurals, diffs, check and
// search highlights, and whitespace visualization.
//
// It never fails: highlights that cannot be placed are dropped, a diff
// reference with fewer plural forms is padded, and empty inputs produce one
// empty part.
func Format(ctx context.Context, req Request) Result {
	// Split plurals to separate strings.
	plurals := SplitPlural(req.Value)

	plural := req.Language.Plural
	if req.Plural != nil {
		plural = *req.Plural
	}

	// Singular-only display contexts show just the last form.
	if req.NumPlurals <= 1 {
		plurals = plurals[len(plurals)-1:]
	}

	newline := newlineMarker(ctx)

	// Split and align diff plurals.
	var diff []Escaped

	if req.Diff != nil {
		aligned := alignDiff(SplitPlural(*req.Diff), len(plurals))

		diff = make([]Escaped, len(aligned))
		for i, form := range aligned {
			diff[i] = Escape(form)
		}
	}

	parts := make([]Part, 0, len(plurals))

	for idx, raw := range plurals {
		value := Escape(raw)

		// Content of the copy-to-clipboard button, captured before any
		// annotation stage runs.
		copyText := value

		value = fmtDiff(value, diff, idx)
		value = fmtHighlights(value, raw, req.Unit, req.Highlights)
		value = fmtSearch(value, req.Search, req.Match)

		// Normalize newlines, then visualize whitespace per paragraph.
		paras := strings.Split(newlinesReplacer.Replace(string(value)), "\n")
		for i, para := range paras {
			paras[i] = string(fmtWhitespace(ctx, Escaped(para)))
		}

		// Label the plural form only when there are several.
		var title string
		if len(plurals) > 1 {
			title = plural.FormName(ctx, idx)
		}

		parts = append(parts, Part{
			Title:   title,
			Content: Escaped(strings.Join(paras, newline)),
			Copy:    copyText,
		})
	}

	return Result{
		Simple:   req.Simple,
		Items:    parts,
		Language: req.Language,
		Unit:     req.Unit,
	}
}

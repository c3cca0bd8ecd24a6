// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package unit

import (
	"context"
	"slices"
	"time"

	"github.com/raymondelooff/weblate/i18n"
)

// State is the workflow state of a unit. The numeric gaps match the
// conventional gettext-tool ordering so states compare with < and >=.
type State int

// Unit workflow states.
const (
	StateEmpty      State = 0
	StateFuzzy      State = 10
	StateTranslated State = 20
	StateApproved   State = 30
)

// Unit is one translatable string within a translation file.
type Unit struct {
	// Value is the current target text, possibly holding several plural
	// forms joined by the plural separator.
	Value string `json:"value"`

	// Previous is the previously seen source text, used to render diffs.
	// Empty means no previous value is known.
	Previous string `json:"previous,omitempty"`

	// Flags enables quality checks for this unit, e.g. "python-format".
	Flags []string `json:"flags,omitempty"`

	// Location points into the source files, e.g. "src/main.c:120".
	Location string `json:"location,omitempty"`

	State State `json:"state"`

	LastChanged time.Time `json:"lastChanged,omitzero"`
}

// Translated reports whether the unit has a usable translation.
func (u *Unit) Translated() bool {
	return u.State >= StateTranslated
}

// Fuzzy reports whether the unit needs editing.
func (u *Unit) Fuzzy() bool {
	return u.State == StateFuzzy
}

// Approved reports whether the unit passed review.
func (u *Unit) Approved() bool {
	return u.State == StateApproved
}

// HasFlag reports whether the unit carries the given quality-check flag.
func (u *Unit) HasFlag(name string) bool {
	return u != nil && slices.Contains(u.Flags, name)
}

// Badge is a short, styled state label for display next to a unit.
type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

// StateBadge returns the badge matching the unit state.
//
// The label is localized under the "String state" gettext context.
func (u *Unit) StateBadge(ctx context.Context) Badge {
	switch {
	case u.Fuzzy():
		return Badge{Label: i18n.TrC(ctx, "String state", "Needs editing"), Class: "text-danger"}
	case !u.Translated():
		return Badge{Label: i18n.TrC(ctx, "String state", "Not translated"), Class: "text-danger"}
	case u.Approved():
		return Badge{Label: i18n.TrC(ctx, "String state", "Approved"), Class: "text-success"}
	default:
		return Badge{Label: i18n.TrC(ctx, "String state", "Translated"), Class: "text-primary"}
	}
}

// StateCSS returns the CSS classes describing the unit state, in a stable order.
func (u *Unit) StateCSS() []string {
	var out []string

	if u.Fuzzy() {
		out = append(out, "state-needs-editing")
	}

	if u.Translated() {
		out = append(out, "state-translated")
	}

	if u.Approved() {
		out = append(out, "state-approved")
	}

	if len(out) == 0 {
		out = append(out, "state-empty")
	}

	return out
}

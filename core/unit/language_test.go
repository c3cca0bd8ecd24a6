// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package unit

import (
	"context"
	"testing"
)

func TestGetLanguage(t *testing.T) {
	t.Parallel()

	cs := GetLanguage("cs")
	if cs.Name != "Czech" || cs.Plural.Number != 3 {
		t.Errorf("unexpected language data: %+v", cs)
	}

	ja := GetLanguage("ja")
	if ja.Plural.Number != 1 {
		t.Errorf("expected single-form plural for ja, got %d", ja.Plural.Number)
	}

	// Unknown codes degrade to a two-form language named after the code.
	xx := GetLanguage("xx")
	if xx.Code != "xx" || xx.Name != "xx" || xx.Plural.Number != 2 {
		t.Errorf("unexpected fallback language: %+v", xx)
	}
}

func TestFormName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := GetLanguage("en").Plural

	if got := p.FormName(ctx, 0); got != "Singular" {
		t.Errorf("FormName(0) = %q", got)
	}

	if got := p.FormName(ctx, 1); got != "Plural" {
		t.Errorf("FormName(1) = %q", got)
	}

	// Indices past the known names degrade to a numbered label.
	if got := p.FormName(ctx, 5); got != "Plural form 5" {
		t.Errorf("FormName(5) = %q", got)
	}

	if got := p.FormName(ctx, -1); got != "Plural form -1" {
		t.Errorf("FormName(-1) = %q", got)
	}
}

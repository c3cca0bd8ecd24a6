// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package checks

import (
	"context"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	c, ok := Get("python_format")
	if !ok {
		t.Fatal("expected python_format to be registered")
	}

	if c.Severity != SeverityDanger {
		t.Errorf("unexpected severity: %q", c.Severity)
	}

	if _, ok := Get("no_such_check"); ok {
		t.Error("unknown check must not resolve")
	}
}

func TestSeverity_FallsBackToInfo(t *testing.T) {
	t.Parallel()

	if got := Severity("no_such_check"); got != SeverityInfo {
		t.Errorf("Severity() = %q, want %q", got, SeverityInfo)
	}

	if got := Severity("url"); got != SeverityWarning {
		t.Errorf("Severity() = %q, want %q", got, SeverityWarning)
	}
}

func TestName_FallsBackToID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	if got := Name(ctx, "xml_tags"); got != "XML markup" {
		t.Errorf("Name() = %q", got)
	}

	if got := Name(ctx, "no_such_check"); got != "no_such_check" {
		t.Errorf("Name() fallback = %q", got)
	}

	if got := Description(ctx, "no_such_check"); got != "no_such_check" {
		t.Errorf("Description() fallback = %q", got)
	}
}

func TestAll_ReturnsACopy(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) == 0 {
		t.Fatal("registry must not be empty")
	}

	all[0].ID = "mutated"

	if registry[0].ID == "mutated" {
		t.Error("All must not expose the registry backing array")
	}
}

// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package routes

import (
	"net/http"

	"github.com/raymondelooff/weblate/core/checks"
)

// ChecksRoute lists the check registry with names and descriptions
// localized for the request language.
//
// GET /api/v1/checks
func ChecksRoute(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	type checkInfo struct {
		ID          string `json:"id"`
		Severity    string `json:"severity"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	all := checks.All()

	out := make([]checkInfo, 0, len(all))
	for _, c := range all {
		out = append(out, checkInfo{
			ID:          c.ID,
			Severity:    checks.Severity(c.ID),
			Name:        checks.Name(ctx, c.ID),
			Description: checks.Description(ctx, c.ID),
		})
	}

	return writeJSON(w, http.StatusOK, map[string]any{"checks": out})
}

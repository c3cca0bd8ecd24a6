// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package checks

import (
	"context"
	"regexp"

	"github.com/raymondelooff/weblate/i18n"
)

// Severity levels, from least to most pressing. They double as the CSS
// class suffix used by the frontend.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

// Check describes one quality check.
type Check struct {
	ID          string      `json:"id"`
	Severity    string      `json:"severity"`
	Name        i18n.MsgKey `json:"name"`
	Description i18n.MsgKey `json:"description"`

	// flag is the unit flag that enables the check; empty means the check
	// applies to every unit.
	flag string

	// highlight matches the snippets this check wants pointed out in the
	// rendered text. Nil when the check has nothing to point at.
	highlight *regexp.Regexp
}

// registry lists all known checks. The slice order is the scan order for
// highlight extraction; the map indexes it by ID.
var (
	registry = []Check{
		{
			ID:          "python_format",
			Severity:    SeverityDanger,
			Name:        "Python format",
			Description: "Python format string does not match source",
			flag:        "python-format",
			highlight:   regexp.MustCompile(`%(\([^)]+\))?[-+ #0-9.]*[a-zA-Z%]`),
		},
		{
			ID:          "python_brace_format",
			Severity:    SeverityDanger,
			Name:        "Python brace format",
			Description: "Python brace format string does not match source",
			flag:        "python-brace-format",
			highlight:   regexp.MustCompile(`\{[^{}]*\}`),
		},
		{
			ID:          "c_format",
			Severity:    SeverityDanger,
			Name:        "C format",
			Description: "C format string does not match source",
			flag:        "c-format",
			highlight:   regexp.MustCompile(`%[-+ #0-9.*]*(?:hh?|ll?|[Lqjzt])?[a-zA-Z%]`),
		},
		{
			ID:          "xml_tags",
			Severity:    SeverityDanger,
			Name:        "XML markup",
			Description: "XML tags in translation do not match source",
			flag:        "xml-text",
			highlight:   regexp.MustCompile(`</?[^<>]+>`),
		},
		{
			ID:          "url",
			Severity:    SeverityWarning,
			Name:        "URL",
			Description: "The translation does not contain an URL",
			flag:        "url",
			highlight:   regexp.MustCompile(`https?://[^\s<>"']+`),
		},
		{
			ID:          "same",
			Severity:    SeverityWarning,
			Name:        "Unchanged translation",
			Description: "Source and translation are identical",
		},
		{
			ID:          "begin_newline",
			Severity:    SeverityWarning,
			Name:        "Starting newline",
			Description: "Source and translation do not both start with a newline",
		},
		{
			ID:          "end_newline",
			Severity:    SeverityWarning,
			Name:        "Trailing newline",
			Description: "Source and translation do not both end with a newline",
		},
		{
			ID:          "end_space",
			Severity:    SeverityWarning,
			Name:        "Trailing space",
			Description: "Source and translation do not both end with a space",
		},
		{
			ID:          "double_space",
			Severity:    SeverityWarning,
			Name:        "Double space",
			Description: "Translation contains double space",
		},
	}

	registryByID = func() map[string]Check {
		m := make(map[string]Check, len(registry))
		for _, c := range registry {
			m[c.ID] = c
		}

		return m
	}()
)

// Get returns the check with the given identifier.
func Get(id string) (Check, bool) {
	c, ok := registryByID[id]

	return c, ok
}

// All returns every known check in registration order. The returned slice
// is a copy and safe to retain.
func All() []Check {
	out := make([]Check, len(registry))
	copy(out, registry)

	return out
}

// Severity returns the severity of a check, or "info" if the check is not known.
func Severity(id string) string {
	if c, ok := registryByID[id]; ok {
		return c.Severity
	}

	return SeverityInfo
}

// Name returns the localized name of a check, or its id if the check is not known.
func Name(ctx context.Context, id string) string {
	if c, ok := registryByID[id]; ok {
		return c.Name.Tr(ctx)
	}

	return id
}

// Description returns the localized description of a check, or its id if the
// check is not known.
func Description(ctx context.Context, id string) string {
	if c, ok := registryByID[id]; ok {
		return c.Description.Tr(ctx)
	}

	return id
}

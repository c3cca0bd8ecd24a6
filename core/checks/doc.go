// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package checks holds the quality-check registry and the highlight extraction
that feeds the rendering pipeline.

The registry is an immutable, process-initialized mapping from check
identifier to severity, name and description. Lookups are total: an unknown
identifier yields a fallback instead of an error, because check identifiers
embedded in stored data can outlive the checks themselves.

Highlight extraction scans a raw unit value with the regexp of every check
the unit's flags enable and returns the flagged snippets ordered by
position, with overlapping spans dropped.
*/
package checks

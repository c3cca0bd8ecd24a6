// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package i18n provides internationalisation utilities backed by GNU gettext
.po catalogues. It translates source message IDs (msgids) across locales
and supports both context and plural forms.

# Quick start

Use the original English UI text as the msgid; do not invent keys.

Translate strings with calls such as:

	i18n.Tr(ctx, "Tab character")
	i18n.TrC(ctx, "String state", "Translated") // disambiguation via context
	i18n.TrN(ctx, "{{.Count}} week ago", "{{.Count}} weeks ago", n, "Count", n)

# Missing translations

By default, missing translations return the msgid unchanged. When
StrictMissingKeys is enabled, missing lookups are logged once
per locale+key and the returned text is visibly wrapped as "⟦...⟧".

# Formatting

Translations can include placeholders that are processed by Go's standard
text/template package. Provide substitutions as alternating key-value pairs
to any of the Tr functions:

	i18n.Tr(ctx, "string ID {{.ID}}", "ID", unit.Location)

Numbers are not localised automatically; convert values to strings
yourself if you need locale-specific presentation.
*/
package i18n

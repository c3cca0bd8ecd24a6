// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package format renders a translatable text value into a display-safe,
annotated HTML fragment.

A value is split into its plural forms and each form runs through a fixed
pipeline: HTML escaping, inline diff against the previous value,
quality-check highlights, search-term highlights, newline normalization and
whitespace visualization. The escaped-but-unannotated text is captured right
after escaping and returned alongside the annotated fragment for
copy-to-clipboard use.

Escaping happens exactly once, first. The [Escaped] string type keeps raw
user text out of the annotation stages: every stage after [Escape] accepts
and returns Escaped, and none of them introduces unescaped user content.

The pipeline is pure and reentrant; concurrent calls are safe.
*/
package format

// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package unit models the translatable unit handed to the rendering pipeline:
the string value itself, its previous source (for diffs), its quality-check
flags, its workflow state, and the language it belongs to, including the
language's plural-form metadata.

Nothing in this package is persisted; values are built per request from
caller-supplied data.
*/
package unit

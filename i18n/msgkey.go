// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"context"
)

// Translatable is a value that can translate itself using a context.
// Types such as [MsgKey] implement Translatable.
type Translatable interface {
	Tr(ctx context.Context) string
}

// MsgKey is a source message id (msgid) string.
//
// Construct with MsgKey("Tab character") and call Tr(ctx) to resolve
// using the current locale in ctx.
//
// MsgKey should be the original English UI text, not an invented key.
type MsgKey string

// Tr translates this msgid within the current locale chain.
// It is equivalent to calling [Tr] with the same msgid.
// The ctx may be nil, in which case the base locale is used.
func (s MsgKey) Tr(ctx context.Context) string {
	return Tr(ctx, string(s))
}

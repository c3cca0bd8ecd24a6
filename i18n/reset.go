// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build test

/*
This file is included only when built with '-tags test'.
It provides a reset hook for unit tests. It is not part of production builds.
*/

package i18n

import (
	"sync"

	"golang.org/x/text/language"
)

// ResetForTests clears global state so tests can exercise Setup multiple times.
//
// Usage:
//
//	go test -tags test ./...
//
// Concurrency: only call from tests before spinning up any goroutines that
// use this package. After resetting, call Setup again to initialize.
func ResetForTests() {
	// Clear missing translation dedupe state.
	missingKeyOnce = sync.Map{}

	// Clear loaded locales and matcher.
	localesByTag = nil
	supportedTags = nil
	matcher = nil

	// Ensure baseTag remains correct.
	baseTag = language.Make(BaseLocale)
}

// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Make makes a short request ID: a wall-clock prefix that is easy to eyeball
// in logs, plus 4 bytes of entropy.
func Make() string {
	var entropy [4]byte

	_, _ = rand.Read(entropy[:])

	return maketime(time.Now()) + "-" + hex.EncodeToString(entropy[:])
}

func maketime(t time.Time) string {
	return t.Format("150405")
}

// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package limiter applies a process-wide token bucket to incoming requests.

Rendering a unit is CPU-bound work (regexp scans, character-level diffs),
so the bucket protects the server as a whole rather than fairness between
clients.
*/
package limiter

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/raymondelooff/weblate/config"
)

var bucket *rate.Limiter

// Init builds the token bucket from the loaded configuration.
//
// Must be called before Evaluate is registered.
func Init() {
	bucket = rate.NewLimiter(
		rate.Limit(config.Global.Limiter.RequestsPerSecond),
		config.Global.Limiter.Burst,
	)
}

// Evaluate rejects the request with 429 Too Many Requests when the bucket
// is exhausted.
func Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if bucket != nil && !bucket.Allow() {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)

		_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))

		return
	}

	next.ServeHTTP(w, r)
}

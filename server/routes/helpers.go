// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// StatusError couples an error with the HTTP status code it should produce.
// Handlers return it to make middleware.CatchError answer with something
// other than 500.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string { return e.Err.Error() }

func (e *StatusError) Unwrap() error { return e.Err }

// BadRequest builds a StatusError carrying 400 Bad Request.
func BadRequest(format string, args ...any) error {
	return &StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf(format, args...)}
}

// writeJSON writes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	// Content fragments are pre-escaped markup; encoding < and > again
	// would corrupt them.
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}

// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"github.com/raymondelooff/weblate/core/audit"
	"github.com/raymondelooff/weblate/server/request_context"
	"github.com/raymondelooff/weblate/server/routes"
)

// CatchError wraps HTTP handlers that return an error, providing centralized
// error handling, response buffering, and request logging.
//
// It operates as follows:
//  1. It times the request for logging purposes.
//  2. It wraps the execution of the given handler, which has the signature
//     `func(w http.ResponseWriter, r *http.Request) error`. The handler's
//     output is buffered using an httptest.ResponseRecorder.
//  3. Any error returned by the handler is stored in the request context.
//
// After the handler runs, it decides on the final response:
//   - If the handler returned an error, the buffered response is discarded
//     and a JSON error body is written instead. A routes.StatusError picks
//     the status code; any other error produces a 500.
//   - Otherwise the buffered response is written to the client as-is.
//
// Finally, it logs the completed request details (status, duration, error,
// etc.) via the audit package.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		span := audit.Span{
			RequestID: ctx.RequestID,
			Method:    r.Method,
			URL:       r.URL.String(),
		}

		_ = span.Begin(r.Context())
		defer span.End()

		recorder := httptest.NewRecorder()

		// Execute the handler, capturing its output and any returned error.
		err := handler(recorder, r)

		ctx.RequestError = err

		switch {
		case err != nil:
			// Discard the recorder's contents and answer with a JSON error.
			status := http.StatusInternalServerError

			var statusErr *routes.StatusError
			if errors.As(err, &statusErr) {
				status = statusErr.Code
			}

			ctx.StatusCode = status

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)

			body, _ := json.Marshal(map[string]string{
				"error":      err.Error(),
				"request_id": ctx.RequestID,
			})

			if _, err := w.Write(body); err != nil {
				log.Err(err).Msg("Failed to write error response body")
			}

		default:
			// This is a successful response. We trust the recorder's output.
			if recorder.Code == 0 {
				recorder.Code = http.StatusOK
			}

			ctx.StatusCode = recorder.Code // Ensure ctx.StatusCode reflects the actual code for logging.
			maps.Copy(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).Msg("Failed to write response body")
			}
		}

		span.StatusCode = ctx.StatusCode
		span.Error = ctx.RequestError

		span.Log()
	}
}

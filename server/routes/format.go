// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package routes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/raymondelooff/weblate/config"
	"github.com/raymondelooff/weblate/core/checks"
	"github.com/raymondelooff/weblate/core/format"
	"github.com/raymondelooff/weblate/core/unit"
)

// formatResponse wraps the render model with display extras derived from
// the unit.
type formatResponse struct {
	format.Result

	Badge *unit.Badge `json:"badge,omitempty"`
	Age   string      `json:"age,omitempty"`
}

// FormatRoute renders a single translatable value.
//
// POST /api/v1/format
func FormatRoute(w http.ResponseWriter, r *http.Request) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}

	req, err := parseFormatRequest(gjson.ParseBytes(body))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, render(r.Context(), req))
}

// BatchFormatRoute renders several values in one request, bounded by the
// configured concurrency.
//
// POST /api/v1/format/batch
func BatchFormatRoute(w http.ResponseWriter, r *http.Request) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}

	items := gjson.ParseBytes(body).Get("requests")
	if !items.IsArray() {
		return BadRequest("requests must be an array")
	}

	var parsed []format.Request

	for i, item := range items.Array() {
		req, err := parseFormatRequest(item)
		if err != nil {
			return fmt.Errorf("requests[%d]: %w", i, err)
		}

		parsed = append(parsed, req)
	}

	results := make([]formatResponse, len(parsed))

	group, ctx := errgroup.WithContext(r.Context())
	group.SetLimit(config.Global.Render.BatchConcurrency)

	for i, req := range parsed {
		i, req := i, req
		group.Go(func() error {
			results[i] = render(ctx, req)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// readBody reads and validates the request body.
//
// The ceiling leaves room for JSON framing and a diff value on top of the
// configured per-value limit.
func readBody(r *http.Request) ([]byte, error) {
	limit := int64(config.Global.Render.MaxValueBytes) * 4

	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &StatusError{Code: http.StatusRequestEntityTooLarge, Err: err}
		}

		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, BadRequest("request body is not valid JSON")
	}

	return body, nil
}

// parseFormatRequest maps one JSON request object to a render request.
func parseFormatRequest(doc gjson.Result) (format.Request, error) {
	value := doc.Get("value")
	if !value.Exists() {
		return format.Request{}, BadRequest("value is required")
	}

	if len(value.String()) > config.Global.Render.MaxValueBytes {
		return format.Request{}, &StatusError{
			Code: http.StatusRequestEntityTooLarge,
			Err:  fmt.Errorf("value exceeds %d bytes", config.Global.Render.MaxValueBytes),
		}
	}

	req := format.Request{
		Value:      value.String(),
		Language:   unit.GetLanguage(doc.Get("language").String()),
		Search:     doc.Get("search").String(),
		Match:      format.MatchSearch,
		Simple:     doc.Get("simple").Bool(),
		NumPlurals: 2,
	}

	if match := doc.Get("match"); match.Exists() {
		req.Match = format.SearchMode(match.String())
	}

	if np := doc.Get("num_plurals"); np.Exists() {
		req.NumPlurals = int(np.Int())
	}

	if diff := doc.Get("diff"); diff.Exists() {
		previous := diff.String()
		req.Diff = &previous
	}

	if u := doc.Get("unit"); u.IsObject() {
		parsedUnit := unit.Unit{
			Value:    req.Value,
			Previous: u.Get("previous").String(),
			Location: u.Get("location").String(),
			State:    unit.State(u.Get("state").Int()),
		}

		for _, flag := range u.Get("flags").Array() {
			parsedUnit.Flags = append(parsedUnit.Flags, flag.String())
		}

		if changed := u.Get("lastChanged"); changed.Exists() {
			t, err := time.Parse(time.RFC3339, changed.String())
			if err != nil {
				return format.Request{}, BadRequest("unit.lastChanged: %v", err)
			}

			parsedUnit.LastChanged = t
		}

		req.Unit = &parsedUnit
		req.Highlights = checks.HighlightString

		// A unit with a known previous value renders as a diff unless the
		// caller provided one explicitly.
		if req.Diff == nil && parsedUnit.Previous != "" {
			req.Diff = &parsedUnit.Previous
		}
	}

	return req, nil
}

func render(ctx context.Context, req format.Request) formatResponse {
	resp := formatResponse{Result: format.Format(ctx, req)}

	if req.Unit != nil {
		badge := req.Unit.StateBadge(ctx)
		resp.Badge = &badge

		if !req.Unit.LastChanged.IsZero() {
			resp.Age = unit.Naturaltime(ctx, req.Unit.LastChanged, time.Now())
		}
	}

	return resp
}

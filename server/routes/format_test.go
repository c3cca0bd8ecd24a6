// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/raymondelooff/weblate/config"
	"github.com/raymondelooff/weblate/core/checks"
)

func TestMain(m *testing.M) {
	config.Global.SetDefaults()

	os.Exit(m.Run())
}

// post runs a handler directly against a JSON body, returning the response
// body and the handler error.
func post(t *testing.T, handler func(http.ResponseWriter, *http.Request) error, target, body string) (gjson.Result, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rr := httptest.NewRecorder()

	err := handler(rr, req)

	return gjson.Parse(rr.Body.String()), err
}

func TestFormatRoute(t *testing.T) {
	doc, err := post(t, FormatRoute, "/api/v1/format", `{"value": "apple\u001e\u001eapples", "language": "en"}`)
	require.NoError(t, err)

	items := doc.Get("items").Array()
	require.Len(t, items, 2)
	require.Equal(t, "Singular", items[0].Get("title").String())
	require.Equal(t, "apple", items[0].Get("content").String())
	require.Equal(t, "apple", items[0].Get("copy").String())
	require.Equal(t, "apples", items[1].Get("content").String())

	require.Equal(t, "en", doc.Get("language.code").String())
	require.False(t, doc.Get("simple").Bool())
}

func TestFormatRoute_Diff(t *testing.T) {
	doc, err := post(t, FormatRoute, "/api/v1/format", `{"value": "cas", "diff": "caj"}`)
	require.NoError(t, err)

	items := doc.Get("items").Array()
	require.Len(t, items, 1)
	require.Equal(t, "ca<del>j</del><ins>s</ins>", items[0].Get("content").String())
	require.Equal(t, "cas", items[0].Get("copy").String())
}

func TestFormatRoute_Search(t *testing.T) {
	doc, err := post(t, FormatRoute, "/api/v1/format", `{"value": "find me", "search": "me"}`)
	require.NoError(t, err)

	content := doc.Get("items.0.content").String()
	require.Contains(t, content, `<span class="hlmatch">me</span>`)
	require.Equal(t, "find me", doc.Get("items.0.copy").String())
}

func TestFormatRoute_UnitExtras(t *testing.T) {
	body := `{
		"value": "hello %s",
		"unit": {
			"flags": ["c-format"],
			"state": 10,
			"lastChanged": "2026-08-24T12:00:00Z"
		}
	}`

	doc, err := post(t, FormatRoute, "/api/v1/format", body)
	require.NoError(t, err)

	require.Contains(t, doc.Get("items.0.content").String(), `<span class="hlcheck">`)
	require.Equal(t, "Needs editing", doc.Get("badge.label").String())
	require.Equal(t, "text-danger", doc.Get("badge.class").String())
	require.NotEmpty(t, doc.Get("age").String())
}

func TestFormatRoute_UnitPreviousRendersDiff(t *testing.T) {
	doc, err := post(t, FormatRoute, "/api/v1/format", `{"value": "cas", "unit": {"previous": "caj", "state": 20}}`)
	require.NoError(t, err)

	require.Equal(t, "ca<del>j</del><ins>s</ins>", doc.Get("items.0.content").String())
}

func TestFormatRoute_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{
			name: "missing value",
			body: `{"language": "en"}`,
			code: http.StatusBadRequest,
		},
		{
			name: "invalid JSON",
			body: `{"value": `,
			code: http.StatusBadRequest,
		},
		{
			name: "bad lastChanged",
			body: `{"value": "x", "unit": {"lastChanged": "not-a-time"}}`,
			code: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := post(t, FormatRoute, "/api/v1/format", tt.body)
			require.Error(t, err)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			require.Equal(t, tt.code, statusErr.Code)
		})
	}
}

func TestFormatRoute_ValueTooLarge(t *testing.T) {
	prev := config.Global.Render.MaxValueBytes
	config.Global.Render.MaxValueBytes = 8

	t.Cleanup(func() { config.Global.Render.MaxValueBytes = prev })

	_, err := post(t, FormatRoute, "/api/v1/format", `{"value": "0123456789"}`)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusRequestEntityTooLarge, statusErr.Code)
}

func TestBatchFormatRoute(t *testing.T) {
	body := `{"requests": [
		{"value": "one"},
		{"value": "two"},
		{"value": "three"}
	]}`

	doc, err := post(t, BatchFormatRoute, "/api/v1/format/batch", body)
	require.NoError(t, err)

	results := doc.Get("results").Array()
	require.Len(t, results, 3)

	// Order must match the request order despite concurrent rendering.
	require.Equal(t, "one", results[0].Get("items.0.content").String())
	require.Equal(t, "two", results[1].Get("items.0.content").String())
	require.Equal(t, "three", results[2].Get("items.0.content").String())
}

func TestBatchFormatRoute_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "requests not an array",
			body: `{"requests": "nope"}`,
			want: "requests must be an array",
		},
		{
			name: "bad item names its index",
			body: `{"requests": [{"value": "ok"}, {"language": "en"}]}`,
			want: "requests[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := post(t, BatchFormatRoute, "/api/v1/format/batch", tt.body)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestChecksRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/checks", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, ChecksRoute(rr, req))

	doc := gjson.Parse(rr.Body.String())
	require.Len(t, doc.Get("checks").Array(), len(checks.All()))

	first := doc.Get("checks.0")
	require.Equal(t, "python_format", first.Get("id").String())
	require.Equal(t, "danger", first.Get("severity").String())
	require.Equal(t, "Python format", first.Get("name").String())
}

func TestHealthRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, HealthRoute(rr, req))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", gjson.Parse(rr.Body.String()).Get("status").String())
}

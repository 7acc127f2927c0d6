// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/lectern/internal/announcements"
	"github.com/tomtom215/lectern/internal/catalog"
	"github.com/tomtom215/lectern/internal/config"
	"github.com/tomtom215/lectern/internal/live"
	"github.com/tomtom215/lectern/internal/progress"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

// testNow is the fixed clock every test handler runs on.
var testNow = time.Date(2026, 1, 2, 3, 4, 5, 678_000_000, time.UTC)

const testNowISO = "2026-01-02T03:04:05.678Z"

func testClock() time.Time { return testNow }

// testConfig returns defaults suitable for handler tests.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.CORS.FrontendURL = "https://app.example.edu"
	return cfg
}

type testEnv struct {
	handler *Handler
	router  http.Handler
}

// newTestEnv builds a router over fresh seeded tables. mutate adjusts the
// config before the router is built.
func newTestEnv(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()
	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	h := NewHandler(
		cfg,
		catalog.New(),
		progress.NewStore(progress.WithClock(testClock)),
		live.NewRegistry(live.WithClock(testClock)),
		announcements.SeedFeed(testNow),
		WithClock(testClock),
	)
	return &testEnv{
		handler: h,
		router:  NewRouter(h, cfg).SetupChi(),
	}
}

// do sends a request with an optional JSON body.
func (e *testEnv) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = strings.NewReader(string(data))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doRaw sends body verbatim with the given content type.
func (e *testEnv) doRaw(t *testing.T, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doForm sends an url-encoded body.
func (e *testEnv) doForm(t *testing.T, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return e.doRaw(t, method, target, "application/x-www-form-urlencoded", form.Encode())
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}

func assertBody(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	if got := w.Body.String(); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"time"

	"github.com/tomtom215/lectern/internal/announcements"
	"github.com/tomtom215/lectern/internal/catalog"
	"github.com/tomtom215/lectern/internal/config"
	"github.com/tomtom215/lectern/internal/live"
	"github.com/tomtom215/lectern/internal/metrics"
	"github.com/tomtom215/lectern/internal/progress"
	ws "github.com/tomtom215/lectern/internal/websocket"
)

// Handler holds the in-memory tables every endpoint reads or mutates. Each
// table guards itself, so Handler methods are safe for concurrent use.
type Handler struct {
	config        *config.Config
	catalog       *catalog.Directory
	progress      *progress.Store
	live          *live.Registry
	announcements *announcements.Feed
	wsHub         *ws.Hub
	now           func() time.Time
}

// HandlerOption customises a Handler.
type HandlerOption func(*Handler)

// WithClock replaces time.Now for tokens, health timestamps and
// announcement ages.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.now = now
	}
}

// WithHub enables live-session event broadcasting and the /api/live/ws
// endpoint.
func WithHub(hub *ws.Hub) HandlerOption {
	return func(h *Handler) {
		h.wsHub = hub
	}
}

// NewHandler wires the handler to its tables.
//
// Example:
//
//	handler := api.NewHandler(cfg, catalog.New(), progress.NewStore(), live.NewRegistry(),
//	    announcements.SeedFeed(time.Now()), api.WithHub(hub))
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":5000", router.SetupChi())
func NewHandler(cfg *config.Config, dir *catalog.Directory, store *progress.Store, registry *live.Registry, feed *announcements.Feed, opts ...HandlerOption) *Handler {
	h := &Handler{
		config:        cfg,
		catalog:       dir,
		progress:      store,
		live:          registry,
		announcements: feed,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}

	metrics.UpdateCatalogGauges(dir.CourseCount(), store.Count())
	metrics.LiveSessionsActive.Set(float64(registry.ActiveCount()))
	return h
}

// refreshCatalogGauges publishes the current course and enrollment totals.
func (h *Handler) refreshCatalogGauges() {
	metrics.UpdateCatalogGauges(h.catalog.CourseCount(), h.progress.Count())
}

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/lectern/internal/config"
	"github.com/tomtom215/lectern/internal/middleware"
)

// Router binds handlers and middleware to routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	config        *config.Config
}

// NewRouter creates a router whose CORS and rate limit settings come from cfg.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler: handler,
		chiMiddleware: NewChiMiddleware(&ChiMiddlewareConfig{
			CORSPolicy:         CORSPolicyFromConfig(cfg),
			CORSAllowedMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
			CORSAllowedHeaders: []string{"*"},
			RateLimitRequests:  cfg.RateLimit.Requests,
			RateLimitWindow:    cfg.RateLimit.Window,
			RateLimitDisabled:  cfg.RateLimit.Disabled,
		}),
		config: cfg,
	}
}

// compressibleTypes are the response types gzipped for clients that accept
// it. Every API body is one of these.
var compressibleTypes = []string{"application/json", "text/plain"}

// notFound answers unknown routes and wrong methods alike.
func notFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, msgRouteNotFound)
}

// SetupChi builds the route tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Set before any sub-router is mounted so they inherit them.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(Recoverer(router.config.IsDevelopment()))
	r.Use(RequestLogger())
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.StripSlashes)
	r.Use(chimiddleware.GetHead)
	r.Use(SecurityHeaders())
	r.Use(chimiddleware.RequestSize(router.config.Server.MaxBodyBytes))
	r.Use(chimiddleware.Compress(5, compressibleTypes...))
	r.Use(router.chiMiddleware.CORS()) // global so preflights reach it

	r.Get("/", router.handler.Root)
	r.Get("/health", router.handler.Health)

	if router.config.Metrics.Enabled {
		r.Method(http.MethodGet, router.config.Metrics.Path, promhttp.Handler())
	}

	// ========================
	// API Endpoints
	// ========================
	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())

		r.Get("/tenants", router.handler.Tenants)
		r.Get("/tenant/{id}", router.handler.Tenant)
		r.Get("/tenant/{id}/courses", router.handler.TenantCourses)

		r.Post("/auth/login", router.handler.Login)

		r.Get("/announcements", router.handler.Announcements)
		r.Get("/stats", router.handler.Stats)

		r.Post("/courses/enroll", router.handler.Enroll)
		r.Get("/courses/{courseId}/progress", router.handler.GetProgress)
		r.Post("/courses/{courseId}/progress", router.handler.UpdateProgress)

		r.Route("/live", func(r chi.Router) {
			r.Post("/start", router.handler.StartSession)
			r.Post("/stop", router.handler.StopSession)
			r.Post("/join", router.handler.JoinSession)
			r.Post("/reminder", router.handler.SetReminder)
			r.Get("/sessions", router.handler.Sessions)
			if router.config.WebSocket.Enabled {
				r.Get("/ws", router.handler.LiveEvents)
			}
		})

		r.Route("/admin/courses", func(r chi.Router) {
			r.Post("/", router.handler.CreateCourse)
			r.Put("/{courseId}", router.handler.UpdateCourse)
			r.Delete("/{courseId}", router.handler.DeleteCourse)
		})
	})

	return r
}

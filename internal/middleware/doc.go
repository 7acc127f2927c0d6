// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

/*
Package middleware provides transport-level HTTP middleware that carries no
API policy: request IDs and Prometheus instrumentation.
Policy middleware (CORS, rate limiting, security headers, panic handling)
lives in package api next to the router that applies it.

All middleware here has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

/*
Package api exposes the platform over HTTP using the chi router.

Every request passes through the same chain before reaching a handler:

	RequestID -> Recoverer -> RequestLogger -> PrometheusMetrics ->
	StripSlashes -> GetHead -> SecurityHeaders -> RequestSize -> Compress -> CORS

Routes under /api additionally pass through a per-IP rate limiter.

Handler methods are split by area:

  - handlers.go: Handler struct and constructor
  - handlers_helpers.go: JSON responses and body decoding
  - handlers_health.go: greeting and health check
  - handlers_tenants.go: tenant directory and course catalog reads
  - handlers_admin.go: course create, update and delete
  - handlers_auth.go: mock login
  - handlers_courses.go: enrollment and progress
  - handlers_live.go: live session lifecycle and event stream
  - handlers_announcements.go: announcements and platform stats

Error bodies are always {"error": "..."} with the fixed message of the
failing check. Unknown routes and wrong methods on known paths both answer
404 {"error":"Route not found"}.
*/
package api

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

/*
Package metrics registers Lectern's Prometheus collectors with the default
registry and exposes small helpers for recording them.

# Metrics Endpoint

	curl http://localhost:5000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code} (counter)
  - api_request_duration_seconds{method, endpoint} (histogram)
  - api_active_requests (gauge)
  - api_rate_limit_hits_total{endpoint} (counter)
  - api_cors_rejections_total (counter)
  - api_panics_total (counter)

Domain:
  - lectern_courses (gauge): courses across all tenant lists
  - lectern_enrollments (gauge): (user, course) enrollments
  - lectern_live_sessions_active (gauge)
  - lectern_live_session_events_total{event} (counter): started, stopped, joined
  - lectern_logins_total{role} (counter)

WebSocket:
  - websocket_connections (gauge)
  - websocket_messages_sent_total (counter)
  - websocket_errors_total{error_type} (counter)

System:
  - app_info{version, go_version} (gauge, always 1)
  - app_uptime_seconds (gauge)

The endpoint label is the chi route pattern, e.g. /api/tenant/{id}, so
cardinality stays bounded regardless of ids in URLs.
*/
package metrics

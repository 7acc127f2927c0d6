// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var startTime = time.Now()

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	APICORSRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_cors_rejections_total",
			Help: "Total number of requests rejected by the CORS origin check",
		},
	)

	APIPanics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_panics_total",
			Help: "Total number of handler panics recovered",
		},
	)

	// Domain Metrics
	Courses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lectern_courses",
			Help: "Number of courses across all tenant course lists",
		},
	)

	Enrollments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lectern_enrollments",
			Help: "Number of user course enrollments",
		},
	)

	LiveSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lectern_live_sessions_active",
			Help: "Number of live sessions currently active",
		},
	)

	LiveSessionEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lectern_live_session_events_total",
			Help: "Total number of live session lifecycle events",
		},
		[]string{"event"},
	)

	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lectern_logins_total",
			Help: "Total number of mock logins by role",
		},
		[]string{"role"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
		func() float64 { return time.Since(startTime).Seconds() },
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a 429 response.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCORSRejection counts a request refused for its Origin.
func RecordCORSRejection() {
	APICORSRejections.Inc()
}

// RecordPanic counts a recovered handler panic.
func RecordPanic() {
	APIPanics.Inc()
}

// Live session event labels.
const (
	LiveEventStarted = "started"
	LiveEventStopped = "stopped"
	LiveEventJoined  = "joined"
)

// RecordLiveSessionEvent counts a lifecycle event and refreshes the active gauge.
func RecordLiveSessionEvent(event string, activeSessions int) {
	LiveSessionEvents.WithLabelValues(event).Inc()
	LiveSessionsActive.Set(float64(activeSessions))
}

// RecordLogin counts a successful mock login.
func RecordLogin(role string) {
	Logins.WithLabelValues(role).Inc()
}

// UpdateCatalogGauges sets the course and enrollment gauges.
func UpdateCatalogGauges(courses, enrollments int) {
	Courses.Set(float64(courses))
	Enrollments.Set(float64(enrollments))
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/lectern/internal/logging"
	"github.com/tomtom215/lectern/internal/metrics"
	"github.com/tomtom215/lectern/internal/middleware"
)

// Plain-text bodies of the middleware rejections.
const (
	CORSRejectionBody = "Not allowed by CORS"
	RateLimitBody     = "Too many requests from this IP, please try again later."
)

// ChiMiddlewareConfig holds configuration for the chi middleware factories.
type ChiMiddlewareConfig struct {
	CORSPolicy         *CORSPolicy
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSMaxAge         int // seconds

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
	RateLimitKeyFunc  httprate.KeyFunc
}

// DefaultChiMiddlewareConfig returns the defaults: the local development
// origins plus *.netlify.app, and 100 requests per 15 minutes.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSPolicy: NewCORSPolicy(
			[]string{"http://localhost:3000", "http://localhost:5173"},
			[]string{".netlify.app"},
			true,
		),
		CORSAllowedMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		CORSAllowedHeaders: []string{"*"},
		CORSMaxAge:         0,

		RateLimitRequests: 100,
		RateLimitWindow:   15 * time.Minute,
	}
}

// ChiMiddleware provides the chi-compatible CORS and rate limit middleware.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates the factories. A nil config uses the defaults.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}
	if config.RateLimitKeyFunc == nil {
		config.RateLimitKeyFunc = httprate.KeyByIP
	}

	policy := config.CORSPolicy
	corsHandler := cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return policy.Allowed(origin)
		},
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		AllowCredentials: true,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS rejects disallowed origins with 403 and no CORS headers, then hands
// allowed requests to go-chi/cors, which echoes the origin, sets
// credentials and answers preflights with 200.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	policy := m.config.CORSPolicy
	return func(next http.Handler) http.Handler {
		withHeaders := m.cors(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if !policy.Allowed(origin) {
				metrics.RecordCORSRejection()
				logging.Ctx(r.Context()).Warn().
					Str("origin", sanitizeLogValue(origin)).
					Msg("request rejected by CORS policy")
				respondText(w, http.StatusForbidden, CORSRejectionBody)
				return
			}
			withHeaders.ServeHTTP(w, r)
		})
	}
}

// RateLimit limits requests per client IP over a fixed window; counts reset
// when the window rolls over. Rejected requests get 429 with a plain-text
// body.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		m.config.RateLimitRequests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(m.config.RateLimitKeyFunc),
		httprate.WithLimitCounter(newFixedWindowCounter()),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit(r.URL.Path)
			respondText(w, http.StatusTooManyRequests, RateLimitBody)
		}),
	)
}

// SecurityHeaders sets the hardening headers on every response.
//
// Headers added:
//   - Content-Security-Policy: restrictive default, the API serves no HTML
//   - Strict-Transport-Security: one year with subdomains
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: SAMEORIGIN
//   - Referrer-Policy: no-referrer
//   - Cross-Origin-Opener-Policy / Cross-Origin-Resource-Policy: same-origin
func SecurityHeaders() func(http.Handler) http.Handler {
	const csp = "default-src 'self';base-uri 'self';font-src 'self' https: data:;" +
		"form-action 'self';frame-ancestors 'self';img-src 'self' data:;object-src 'none';" +
		"script-src 'self';script-src-attr 'none';style-src 'self' https: 'unsafe-inline';" +
		"upgrade-insecure-requests"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Content-Security-Policy", csp)
			h.Set("Cross-Origin-Opener-Policy", "same-origin")
			h.Set("Cross-Origin-Resource-Policy", "same-origin")
			h.Set("Origin-Agent-Cluster", "?1")
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-DNS-Prefetch-Control", "off")
			h.Set("X-Download-Options", "noopen")
			h.Set("X-Frame-Options", "SAMEORIGIN")
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
			h.Set("X-XSS-Protection", "0")
			next.ServeHTTP(w, r)
		})
	}
}

// Recoverer turns a handler panic into a 500 JSON response. The panic value
// is exposed in the message only when detailed is true.
func Recoverer(detailed bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				metrics.RecordPanic()
				logging.Ctx(r.Context()).Error().
					Str("panic", fmt.Sprint(rec)).
					Bytes("stack", debug.Stack()).
					Str("path", sanitizeLogValue(r.URL.Path)).
					Msg("recovered from handler panic")

				message := msgSomethingWrong
				if detailed {
					message = fmt.Sprint(rec)
				}
				respondJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error:   msgInternalError,
					Message: message,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs each request once it completes.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger := logging.Ctx(r.Context())
			event := logger.Info()
			if status >= http.StatusInternalServerError {
				event = logger.Error()
			}
			event.
				Str("method", r.Method).
				Str("path", sanitizeLogValue(r.URL.Path)).
				Str("route", middleware.RoutePattern(r)).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Msg("request completed")
		})
	}
}

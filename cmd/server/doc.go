// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

/*
Package main is the entry point for the Lectern API server.

Lectern serves a multi-tenant education catalog: institutions, their
courses, mock logins, enrollments with progress tracking, live class
sessions and an announcements feed. All state lives in memory and is
seeded at startup.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("lectern")
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocket Hub (live session events)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog with JSON/console output modes
 3. Tables: catalog, progress store, live registry, announcements feed
 4. WebSocket Hub: live session notifications
 5. HTTP Server: chi router with CORS, rate limiting and metrics
 6. Supervisor Tree: runs the hub and the server until a signal arrives

# Configuration

Selected environment variables:

	PORT=5000                      listen port
	NODE_ENV=development           development exposes panic messages
	FRONTEND_URL=https://app.x     extra exact CORS origin
	NETLIFY_URL=https://x.app      extra exact CORS origin
	RATE_LIMIT_REQUESTS=100        requests per window per IP on /api
	RATE_LIMIT_WINDOW=15m
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to 10 seconds and WebSocket clients receive a
close frame.
*/
package main

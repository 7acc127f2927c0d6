// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

/*
Package supervisor runs the server's long-lived goroutines under a suture v4
supervisor tree.

	lectern (root)
	├── messaging-layer
	│   └── websocket-hub
	└── api-layer
	    └── http-server

A crashed service is restarted with suture's backoff policy; a failure in the
messaging layer never takes the HTTP server down with it. Supervisor events
are logged through sutureslog using the zerolog slog adapter from
internal/logging.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor

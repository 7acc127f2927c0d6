// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

// Package services adapts the server's long-running components to
// suture.Service so they can be placed in the supervisor tree. The wrappers
// depend on small interfaces rather than concrete types, which keeps this
// package free of imports from internal/api and internal/websocket.
package services

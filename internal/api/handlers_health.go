// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"net/http"

	"github.com/tomtom215/lectern/internal/models"
)

// Root answers GET / with a greeting.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Hello EdTech Platform!"})
}

// Health answers GET /health for liveness probes. It has no dependencies to
// check, so it is healthy whenever the process is serving.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: models.NewTimestamp(h.now()),
	})
}

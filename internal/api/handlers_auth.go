// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"net/http"

	"github.com/tomtom215/lectern/internal/auth"
	"github.com/tomtom215/lectern/internal/metrics"
)

// Login issues a demo token. The password is required but never checked.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !parseBody(w, r, &req, "Email and password are required") {
		return
	}

	session := auth.Login(req.Email, h.now())
	metrics.RecordLogin(session.User.Role)

	respondJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		User:    session.User,
		Token:   session.Token,
	})
}

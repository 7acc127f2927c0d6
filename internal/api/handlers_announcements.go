// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"net/http"

	"github.com/tomtom215/lectern/internal/models"
)

// Announcements lists announcements with relative dates, optionally
// narrowed to a tenant.
func (h *Handler) Announcements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.announcements.List(r.URL.Query().Get("tenantId"), h.now()))
}

// Stats summarises the platform.
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.Stats{
		TotalTenants:       h.catalog.TenantCount(),
		TotalCourses:       h.catalog.CourseCount(),
		TotalStudents:      h.catalog.StudentCount(),
		ActiveLiveSessions: h.live.ActiveCount(),
	})
}

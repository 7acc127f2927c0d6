// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Tenants lists every tenant.
func (h *Handler) Tenants(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, TenantsResponse{Tenants: h.catalog.Tenants()})
}

// Tenant returns one tenant record.
func (h *Handler) Tenant(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.catalog.Tenant(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, tenant)
}

// TenantCourses lists a tenant's courses. An unknown tenant has an empty
// catalog rather than a 404.
func (h *Handler) TenantCourses(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "id")
	courses := h.catalog.Courses(tenantID)
	respondJSON(w, http.StatusOK, TenantCoursesResponse{
		TenantID: tenantID,
		Courses:  courses,
		Count:    len(courses),
	})
}

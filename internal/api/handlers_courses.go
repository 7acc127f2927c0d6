// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Enroll registers a user for a course. Enrolling twice keeps the existing
// progress.
func (h *Handler) Enroll(w http.ResponseWriter, r *http.Request) {
	var req EnrollRequest
	if !parseBody(w, r, &req, "Missing required fields") {
		return
	}

	course, err := h.catalog.Course(req.TenantID, req.CourseID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	enrollment, created := h.progress.Enroll(req.UserID, req.CourseID)
	if created {
		h.refreshCatalogGauges()
	}

	respondJSON(w, http.StatusOK, EnrollResponse{
		Message:  "Enrolled successfully",
		Course:   course,
		Progress: enrollment.Progress,
	})
}

// GetProgress reports a user's progress in a course.
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	enrollment, ok := h.progress.Get(userID, chi.URLParam(r, "courseId"))
	if !ok {
		respondJSON(w, http.StatusOK, ProgressResponse{Progress: 0, Enrolled: false})
		return
	}
	respondJSON(w, http.StatusOK, ProgressResponse{Progress: enrollment.Progress, Enrolled: true})
}

// UpdateProgress sets a user's progress, enrolling them first if needed.
// The course id is not checked against the catalog.
func (h *Handler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if !parseBody(w, r, &req, "userId and progress are required") {
		return
	}

	before := h.progress.Count()
	enrollment := h.progress.SetProgress(req.UserID, chi.URLParam(r, "courseId"), req.Progress.Float64())
	if h.progress.Count() != before {
		h.refreshCatalogGauges()
	}

	respondJSON(w, http.StatusOK, ProgressUpdateResponse{
		Message:  "Progress updated",
		Progress: enrollment.Progress,
	})
}

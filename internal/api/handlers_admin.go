// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/lectern/internal/catalog"
	"github.com/tomtom215/lectern/internal/logging"
	"github.com/tomtom215/lectern/internal/models"
)

// CreateCourse appends a course to a tenant's catalog.
func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest
	if !parseBody(w, r, &req, "Missing required fields: title, instructor, tenantId") {
		return
	}

	course := h.catalog.CreateCourse(req.TenantID, catalog.NewCourse{
		Title:       req.Title,
		Instructor:  req.Instructor,
		Duration:    req.Duration,
		Description: req.Description,
	})
	h.refreshCatalogGauges()

	logging.Ctx(r.Context()).Info().
		Str("tenant_id", sanitizeLogValue(req.TenantID)).
		Str("course_id", course.ID).
		Msg("course created")

	respondJSON(w, http.StatusCreated, CourseResponse{
		Message: "Course created successfully",
		Course:  course,
	})
}

// UpdateCourse edits a course in place.
func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var req UpdateCourseRequest
	if !parseBody(w, r, &req, msgTenantIDRequired) {
		return
	}

	course, err := h.catalog.UpdateCourse(req.TenantID, chi.URLParam(r, "courseId"), models.CourseUpdate{
		Title:       req.Title,
		Instructor:  req.Instructor,
		Duration:    req.Duration,
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, CourseResponse{
		Message: "Course updated successfully",
		Course:  course,
	})
}

// DeleteCourse removes a course. The tenant comes from the query string.
func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	tenantID := r.URL.Query().Get("tenantId")
	if tenantID == "" {
		respondError(w, http.StatusBadRequest, msgTenantIDRequired)
		return
	}

	courseID := chi.URLParam(r, "courseId")
	if err := h.catalog.DeleteCourse(tenantID, courseID); err != nil {
		respondDomainError(w, r, err)
		return
	}
	h.refreshCatalogGauges()

	logging.Ctx(r.Context()).Info().
		Str("tenant_id", sanitizeLogValue(tenantID)).
		Str("course_id", sanitizeLogValue(courseID)).
		Msg("course deleted")

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Course deleted successfully"})
}

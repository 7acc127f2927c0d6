// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import "github.com/tomtom215/lectern/internal/models"

// Response bodies. Field order is the wire order.

// ErrorResponse is every 4xx/5xx JSON body. Message is only set on 500s.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse carries a bare confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp models.Timestamp `json:"timestamp"`
}

// TenantsResponse is returned by GET /api/tenants.
type TenantsResponse struct {
	Tenants []models.Tenant `json:"tenants"`
}

// TenantCoursesResponse is returned by GET /api/tenant/{id}/courses.
type TenantCoursesResponse struct {
	TenantID string          `json:"tenantId"`
	Courses  []models.Course `json:"courses"`
	Count    int             `json:"count"`
}

// CourseResponse confirms a course create or update.
type CourseResponse struct {
	Message string        `json:"message"`
	Course  models.Course `json:"course"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
}

// EnrollResponse is returned by POST /api/courses/enroll.
type EnrollResponse struct {
	Message  string        `json:"message"`
	Course   models.Course `json:"course"`
	Progress float64       `json:"progress"`
}

// ProgressResponse is returned by GET /api/courses/{courseId}/progress.
type ProgressResponse struct {
	Progress float64 `json:"progress"`
	Enrolled bool    `json:"enrolled"`
}

// ProgressUpdateResponse is returned by POST /api/courses/{courseId}/progress.
type ProgressUpdateResponse struct {
	Message  string  `json:"message"`
	Progress float64 `json:"progress"`
}

// SessionResponse confirms a live session start, stop or join.
type SessionResponse struct {
	Message string             `json:"message"`
	Session models.LiveSession `json:"session"`
}

// ReminderResponse is returned by POST /api/live/reminder.
type ReminderResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// SessionsResponse is returned by GET /api/live/sessions.
type SessionsResponse struct {
	ActiveSessions []models.LiveSession `json:"activeSessions"`
	AllSessions    []models.LiveSession `json:"allSessions"`
}

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Request bodies decoded by decodeBody. A failed `required` tag is answered
// with the endpoint's fixed message rather than the validator's text.

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateCourseRequest is the body of POST /api/admin/courses.
type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Instructor  string `json:"instructor" validate:"required"`
	TenantID    string `json:"tenantId" validate:"required"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// UpdateCourseRequest is the body of PUT /api/admin/courses/{courseId}.
// Description is a pointer so an explicit "" can be told apart from absence.
type UpdateCourseRequest struct {
	TenantID    string  `json:"tenantId" validate:"required"`
	Title       string  `json:"title"`
	Instructor  string  `json:"instructor"`
	Duration    string  `json:"duration"`
	Description *string `json:"description"`
}

// EnrollRequest is the body of POST /api/courses/enroll.
type EnrollRequest struct {
	UserID   string `json:"userId" validate:"required"`
	CourseID string `json:"courseId" validate:"required"`
	TenantID string `json:"tenantId" validate:"required"`
}

// ProgressRequest is the body of POST /api/courses/{courseId}/progress.
// A nil Progress means the key was absent or null; zero is a real value.
type ProgressRequest struct {
	UserID   string    `json:"userId" validate:"required"`
	Progress *Progress `json:"progress" validate:"required"`
}

// StartSessionRequest is the body of POST /api/live/start.
type StartSessionRequest struct {
	SessionID  string `json:"sessionId" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Instructor string `json:"instructor" validate:"required"`
	TenantID   string `json:"tenantId" validate:"required"`
}

// StopSessionRequest is the body of POST /api/live/stop.
type StopSessionRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// AttendSessionRequest is the body of POST /api/live/join and
// POST /api/live/reminder.
type AttendSessionRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
}

// ErrInvalidProgress is returned for a progress value that is not numeric.
var ErrInvalidProgress = errors.New("progress must be a number")

// Progress is a percentage that accepts a JSON number or a numeric string,
// since url-encoded forms carry every value as a string. An empty string
// reads as zero.
type Progress float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Progress) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrInvalidProgress
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return ErrInvalidProgress
		}
		if math.IsNaN(f) {
			return ErrInvalidProgress
		}
		*p = Progress(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return ErrInvalidProgress
	}
	*p = Progress(f)
	return nil
}

// Float64 returns the raw value.
func (p Progress) Float64() float64 {
	return float64(p)
}

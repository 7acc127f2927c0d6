// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package models

// Progress bounds, in percent.
const (
	MinProgress = 0.0
	MaxProgress = 100.0
)

// Enrollment links one user to one course.
type Enrollment struct {
	Progress    float64    `json:"progress"`
	EnrolledAt  Timestamp  `json:"enrolledAt"`
	LastUpdated *Timestamp `json:"lastUpdated,omitempty"`
}

// ClampProgress limits p to [MinProgress, MaxProgress].
func ClampProgress(p float64) float64 {
	return max(MinProgress, min(MaxProgress, p))
}

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package models

// Stats is the platform-wide summary served by /api/stats.
type Stats struct {
	TotalTenants       int `json:"totalTenants"`
	TotalCourses       int `json:"totalCourses"`
	TotalStudents      int `json:"totalStudents"`
	ActiveLiveSessions int `json:"activeLiveSessions"`
}

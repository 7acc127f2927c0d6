// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package models

// Tenant is an institution using the platform. Tenant records are seed data
// and never change at runtime.
type Tenant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Students    int    `json:"students"`
	Courses     int    `json:"courses"`
	Instructors int    `json:"instructors"`
}

// Course belongs to exactly one tenant's course list.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Instructor  string `json:"instructor"`
	Students    int    `json:"students"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// CourseUpdate carries the optional fields of a course edit. Title,
// Instructor and Duration are applied only when non-empty. Description is
// applied whenever it is non-nil, so an explicit "" clears it.
type CourseUpdate struct {
	Title       string
	Instructor  string
	Duration    string
	Description *string
}

// Apply mutates c according to the update rules of CourseUpdate.
func (u CourseUpdate) Apply(c *Course) {
	if u.Title != "" {
		c.Title = u.Title
	}
	if u.Instructor != "" {
		c.Instructor = u.Instructor
	}
	if u.Duration != "" {
		c.Duration = u.Duration
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
}

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

// Package catalog holds the tenant directory and each tenant's course list.
//
// Tenant records are fixed at construction. Course lists are mutable and are
// keyed by tenant id independently of the tenant records, so a course can be
// created under an id that has no tenant record. All reads return copies.
package catalog

import (
	"errors"
	"strconv"
	"sync"

	"github.com/tomtom215/lectern/internal/models"
)

var (
	// ErrTenantNotFound is returned when no tenant record has the requested id.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrCourseNotFound is returned when the tenant's list has no course with
	// the requested id, including when the tenant has no list at all.
	ErrCourseNotFound = errors.New("course not found")
)

// Directory is the tenant and course catalog. Safe for concurrent use.
type Directory struct {
	tenants []models.Tenant

	mu      sync.RWMutex
	courses map[string][]models.Course
}

// New returns a Directory populated with the built-in seed data.
func New() *Directory {
	return NewDirectory(SeedTenants(), SeedCourses())
}

// NewDirectory returns a Directory over the given tenants and course lists.
// Both arguments are copied.
func NewDirectory(tenants []models.Tenant, courses map[string][]models.Course) *Directory {
	d := &Directory{
		tenants: append([]models.Tenant(nil), tenants...),
		courses: make(map[string][]models.Course, len(courses)),
	}
	for tenantID, list := range courses {
		d.courses[tenantID] = append([]models.Course(nil), list...)
	}
	return d
}

// Tenants returns every tenant record in seed order.
func (d *Directory) Tenants() []models.Tenant {
	return append([]models.Tenant(nil), d.tenants...)
}

// Tenant returns the tenant with the given id.
func (d *Directory) Tenant(id string) (models.Tenant, error) {
	for _, t := range d.tenants {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Tenant{}, ErrTenantNotFound
}

// Courses returns the tenant's course list in list order. An unknown tenant
// yields an empty, non-nil slice.
func (d *Directory) Courses(tenantID string) []models.Course {
	d.mu.RLock()
	defer d.mu.RUnlock()

	list := d.courses[tenantID]
	out := make([]models.Course, len(list))
	copy(out, list)
	return out
}

// Course returns one course of a tenant.
func (d *Directory) Course(tenantID, courseID string) (models.Course, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i := d.indexOf(tenantID, courseID)
	if i < 0 {
		return models.Course{}, ErrCourseNotFound
	}
	return d.courses[tenantID][i], nil
}

// NewCourse holds the fields of a course to create. Empty Duration defaults
// to "12 weeks"; empty Description stays empty.
type NewCourse struct {
	Title       string
	Instructor  string
	Duration    string
	Description string
}

// DefaultDuration is applied when a new course has no duration.
const DefaultDuration = "12 weeks"

// CreateCourse appends a course to the tenant's list, creating the list if
// needed. The id is the list length after the append, so ids can repeat
// after a delete; lookups then resolve to the first match.
func (d *Directory) CreateCourse(tenantID string, nc NewCourse) models.Course {
	d.mu.Lock()
	defer d.mu.Unlock()

	duration := nc.Duration
	if duration == "" {
		duration = DefaultDuration
	}
	list := d.courses[tenantID]
	course := models.Course{
		ID:          strconv.Itoa(len(list) + 1),
		Title:       nc.Title,
		Instructor:  nc.Instructor,
		Students:    0,
		Duration:    duration,
		Description: nc.Description,
	}
	d.courses[tenantID] = append(list, course)
	return course
}

// UpdateCourse applies u to the first course matching courseID in place and
// returns the updated record.
func (d *Directory) UpdateCourse(tenantID, courseID string, u models.CourseUpdate) (models.Course, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(tenantID, courseID)
	if i < 0 {
		return models.Course{}, ErrCourseNotFound
	}
	u.Apply(&d.courses[tenantID][i])
	return d.courses[tenantID][i], nil
}

// DeleteCourse removes the first course matching courseID. Later courses
// shift down one position and keep their ids.
func (d *Directory) DeleteCourse(tenantID, courseID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(tenantID, courseID)
	if i < 0 {
		return ErrCourseNotFound
	}
	list := d.courses[tenantID]
	d.courses[tenantID] = append(list[:i], list[i+1:]...)
	return nil
}

// TenantCount returns the number of tenant records.
func (d *Directory) TenantCount() int {
	return len(d.tenants)
}

// StudentCount sums the students field of every tenant record.
func (d *Directory) StudentCount() int {
	total := 0
	for _, t := range d.tenants {
		total += t.Students
	}
	return total
}

// CourseCount sums the lengths of all course lists, including lists of ids
// without a tenant record.
func (d *Directory) CourseCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	total := 0
	for _, list := range d.courses {
		total += len(list)
	}
	return total
}

// indexOf must be called with mu held.
func (d *Directory) indexOf(tenantID, courseID string) int {
	for i, c := range d.courses[tenantID] {
		if c.ID == courseID {
			return i
		}
	}
	return -1
}

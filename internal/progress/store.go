// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

// Package progress tracks per-user, per-course enrollment and completion.
//
// Enrollments are created implicitly: by Enroll, or by the first SetProgress
// for a (user, course) pair. They are never removed. The store does not
// check that the course exists; callers that need that check it first.
package progress

import (
	"sync"
	"time"

	"github.com/tomtom215/lectern/internal/models"
)

// Store is an in-memory enrollment table. Safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	enrollments map[string]map[string]*models.Enrollment
	now         func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		enrollments: make(map[string]map[string]*models.Enrollment),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enroll creates the enrollment at 0% if it does not exist and returns the
// current record. Repeated calls leave an existing record untouched. The
// bool is true when a new record was created.
func (s *Store) Enroll(userID, courseID string) (models.Enrollment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, created := s.getOrCreate(userID, courseID)
	return copyEnrollment(e), created
}

// Get returns the enrollment for the pair, if any.
func (s *Store) Get(userID, courseID string) (models.Enrollment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.enrollments[userID][courseID]
	if !ok {
		return models.Enrollment{}, false
	}
	return copyEnrollment(e), true
}

// SetProgress upserts the enrollment, stores progress clamped to [0, 100]
// and stamps lastUpdated.
func (s *Store) SetProgress(userID, courseID string, progress float64) models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, _ := s.getOrCreate(userID, courseID)
	e.Progress = models.ClampProgress(progress)
	e.LastUpdated = models.NewTimestamp(s.now()).Ptr()
	return copyEnrollment(e)
}

// Count returns the total number of enrollments across all users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, courses := range s.enrollments {
		n += len(courses)
	}
	return n
}

// getOrCreate must be called with mu held for writing.
func (s *Store) getOrCreate(userID, courseID string) (*models.Enrollment, bool) {
	courses, ok := s.enrollments[userID]
	if !ok {
		courses = make(map[string]*models.Enrollment)
		s.enrollments[userID] = courses
	}
	if e, ok := courses[courseID]; ok {
		return e, false
	}
	e := &models.Enrollment{
		Progress:   0,
		EnrolledAt: models.NewTimestamp(s.now()),
	}
	courses[courseID] = e
	return e, true
}

func copyEnrollment(e *models.Enrollment) models.Enrollment {
	c := *e
	if e.LastUpdated != nil {
		c.LastUpdated = e.LastUpdated.Ptr()
	}
	return c
}

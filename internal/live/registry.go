// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

// Package live implements the live session registry.
//
// A session moves between two states:
//
//	Start --> active --Stop--> stopped
//	            ^                 |
//	            +------Start------+
//
// Start always replaces any record under the same id, resetting attendees
// and clearing endTime. Join only succeeds on an active session. Stop is
// allowed on a stopped session and re-stamps endTime.
package live

import (
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/lectern/internal/models"
)

var (
	// ErrSessionNotFound is returned for an id that was never started.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionNotActive is returned when joining a stopped session.
	ErrSessionNotActive = errors.New("session is not active")
)

// StartParams describes a session to start.
type StartParams struct {
	SessionID  string
	Title      string
	Instructor string
	TenantID   string
}

// Registry holds live sessions keyed by id. Listing preserves first-insertion
// order: restarting an existing id keeps its position. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*models.LiveSession
	order    []string
	now      func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]*models.LiveSession),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start creates or replaces the session with the given id. The new record is
// active with zero attendees.
func (r *Registry) Start(p StartParams) models.LiveSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &models.LiveSession{
		SessionID:  p.SessionID,
		Title:      p.Title,
		Instructor: p.Instructor,
		TenantID:   p.TenantID,
		Status:     models.SessionActive,
		StartTime:  models.NewTimestamp(r.now()),
		Attendees:  0,
	}
	if _, exists := r.sessions[p.SessionID]; !exists {
		r.order = append(r.order, p.SessionID)
	}
	r.sessions[p.SessionID] = s
	return s.Clone()
}

// Stop marks the session stopped and stamps endTime with the current time.
func (r *Registry) Stop(sessionID string) (models.LiveSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return models.LiveSession{}, ErrSessionNotFound
	}
	s.Status = models.SessionStopped
	s.EndTime = models.NewTimestamp(r.now()).Ptr()
	return s.Clone(), nil
}

// Join increments the attendee count of an active session. The same user
// joining twice is counted twice.
func (r *Registry) Join(sessionID string) (models.LiveSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return models.LiveSession{}, ErrSessionNotFound
	}
	if !s.IsActive() {
		return models.LiveSession{}, ErrSessionNotActive
	}
	s.Attendees++
	return s.Clone(), nil
}

// Get returns one session.
func (r *Registry) Get(sessionID string) (models.LiveSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return models.LiveSession{}, ErrSessionNotFound
	}
	return s.Clone(), nil
}

// Sessions returns all sessions and the active subset, both in insertion
// order, from one consistent snapshot.
func (r *Registry) Sessions() (active, all []models.LiveSession) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all = make([]models.LiveSession, 0, len(r.order))
	active = make([]models.LiveSession, 0, len(r.order))
	for _, id := range r.order {
		s := r.sessions[id].Clone()
		all = append(all, s)
		if s.IsActive() {
			active = append(active, s)
		}
	}
	return active, all
}

// ActiveCount returns the number of active sessions.
func (r *Registry) ActiveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, s := range r.sessions {
		if s.IsActive() {
			n++
		}
	}
	return n
}

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package models

// SessionStatus is the lifecycle state of a live session.
type SessionStatus string

// Session states. A stopped session can only become active again by being
// started anew under the same id.
const (
	SessionActive  SessionStatus = "active"
	SessionStopped SessionStatus = "stopped"
)

// LiveSession is a real-time class event.
type LiveSession struct {
	SessionID  string        `json:"sessionId"`
	Title      string        `json:"title"`
	Instructor string        `json:"instructor"`
	TenantID   string        `json:"tenantId"`
	Status     SessionStatus `json:"status"`
	StartTime  Timestamp     `json:"startTime"`
	EndTime    *Timestamp    `json:"endTime,omitempty"`
	Attendees  int           `json:"attendees"`
}

// IsActive reports whether the session accepts joins.
func (s *LiveSession) IsActive() bool {
	return s.Status == SessionActive
}

// Clone returns a deep copy of s.
func (s *LiveSession) Clone() LiveSession {
	c := *s
	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}
	return c
}

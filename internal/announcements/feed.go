// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

// Package announcements serves the platform announcement feed.
package announcements

import (
	"fmt"
	"time"

	"github.com/tomtom215/lectern/internal/models"
)

// Priority levels.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Entry is a stored announcement with its absolute posting time.
type Entry struct {
	ID       string
	Title    string
	Content  string
	PostedAt time.Time
	Priority string
	TenantID string
}

// Feed is an immutable list of announcements. Safe for concurrent use.
type Feed struct {
	entries []Entry
}

// NewFeed returns a feed over entries, which are copied.
func NewFeed(entries []Entry) *Feed {
	return &Feed{entries: append([]Entry(nil), entries...)}
}

// SeedFeed returns the built-in announcements dated relative to anchor,
// normally the process start time.
func SeedFeed(anchor time.Time) *Feed {
	return NewFeed([]Entry{
		{
			ID:       "1",
			Title:    "Mid-term Exams Schedule Released",
			Content:  "Check your dashboard for exam dates and timings. All exams will be conducted online.",
			PostedAt: anchor.Add(-2 * time.Hour),
			Priority: PriorityHigh,
			TenantID: models.AllTenants,
		},
		{
			ID:       "2",
			Title:    "New Course Materials Available",
			Content:  "Week 5 materials for all courses are now accessible in your course dashboard.",
			PostedAt: anchor.Add(-5 * time.Hour),
			Priority: PriorityMedium,
			TenantID: models.AllTenants,
		},
		{
			ID:       "3",
			Title:    "Live Session Recording Available",
			Content:  "Recordings from last week's live sessions are now available for review.",
			PostedAt: anchor.Add(-24 * time.Hour),
			Priority: PriorityLow,
			TenantID: models.AllTenants,
		},
	})
}

// List returns the announcements visible to tenantID with dates rendered
// relative to now. An empty tenantID or "all" returns everything; any other
// value keeps entries addressed to that tenant or to "all".
func (f *Feed) List(tenantID string, now time.Time) []models.Announcement {
	filter := tenantID != "" && tenantID != models.AllTenants

	out := make([]models.Announcement, 0, len(f.entries))
	for _, e := range f.entries {
		if filter && e.TenantID != tenantID && e.TenantID != models.AllTenants {
			continue
		}
		out = append(out, models.Announcement{
			ID:       e.ID,
			Title:    e.Title,
			Content:  e.Content,
			Date:     FormatTimeAgo(now.Sub(e.PostedAt)),
			Priority: e.Priority,
			TenantID: e.TenantID,
		})
	}
	return out
}

// FormatTimeAgo renders an elapsed duration in the largest whole unit:
// under a minute in seconds, under an hour in minutes, under a day in
// hours, otherwise in days. Units are always plural and values are
// truncated, so 90 minutes is "1 hours ago". Negative durations render as
// "0 seconds ago".
func FormatTimeAgo(elapsed time.Duration) string {
	seconds := int64(elapsed / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d minutes ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}
	return fmt.Sprintf("%d days ago", hours/24)
}

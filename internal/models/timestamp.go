// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// ISOLayout is the timestamp layout used on the wire.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatISO renders t in UTC using ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// Timestamp is a time.Time that encodes as an ISO-8601 UTC string with
// millisecond precision.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Ptr returns a pointer to a copy of ts, for optional fields.
func (ts Timestamp) Ptr() *Timestamp {
	return &ts
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatISO(ts.Time))
}

// UnmarshalJSON accepts any RFC 3339 string.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	ts.Time = t
	return nil
}

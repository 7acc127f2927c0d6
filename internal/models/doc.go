// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

/*
Package models defines the JSON wire types served by the Lectern API.

The field names are fixed by the web client and must not change:

  - Tenant: {id, name, students, courses, instructors}
  - Course: {id, title, instructor, students, duration, description}
  - Enrollment: {progress, enrolledAt, lastUpdated?}
  - LiveSession: {sessionId, title, instructor, tenantId, status, startTime, endTime?, attendees}
  - Announcement: {id, title, content, date, priority, tenantId}
  - Stats: {totalTenants, totalCourses, totalStudents, activeLiveSessions}
  - User: {id, email, name, role, tenantId}

Timestamps are encoded as ISO-8601 UTC strings with millisecond precision,
for example "2026-03-01T09:30:00.000Z". See Timestamp.

Values in this package are plain data. The stores in catalog, progress and
live hand out copies, so encoding a model never races with a mutation.
*/
package models

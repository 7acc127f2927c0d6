// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package models

// AllTenants marks an announcement visible to every tenant. As a WebSocket
// subscription filter it selects every tenant.
const AllTenants = "all"

// Announcement is a feed entry as served to clients. Date holds the
// relative posting time, e.g. "2 hours ago".
type Announcement struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
	TenantID string `json:"tenantId"`
}

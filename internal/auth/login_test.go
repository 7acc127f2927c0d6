// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package auth

import (
	"testing"
	"time"

	"github.com/tomtom215/lectern/internal/models"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1700000000123)

	tests := []struct {
		name  string
		email string
		want  models.User
		token string
	}{
		{
			name:  "student with dotted local part",
			email: "john.doe@stanford.edu",
			want: models.User{
				ID: "johndoe", Email: "john.doe@stanford.edu", Name: "John Doe",
				Role: models.RoleStudent, TenantID: DefaultTenantID,
			},
			token: "token_johndoe_1700000000123",
		},
		{
			name:  "admin anywhere in email",
			email: "jane_admin@uni.edu",
			want: models.User{
				ID: "janeadmin", Email: "jane_admin@uni.edu", Name: "Jane Admin",
				Role: models.RoleAdmin, TenantID: DefaultTenantID,
			},
			token: "token_janeadmin_1700000000123",
		},
		{
			name:  "admin in domain",
			email: "bob@admin.example.com",
			want: models.User{
				ID: "bob", Email: "bob@admin.example.com", Name: "Bob",
				Role: models.RoleAdmin, TenantID: DefaultTenantID,
			},
			token: "token_bob_1700000000123",
		},
		{
			name:  "no at sign",
			email: "plainuser",
			want: models.User{
				ID: "plainuser", Email: "plainuser", Name: "Plainuser",
				Role: models.RoleStudent, TenantID: DefaultTenantID,
			},
			token: "token_plainuser_1700000000123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Login(tt.email, now)
			if got.User != tt.want {
				t.Errorf("Login(%q).User = %+v, want %+v", tt.email, got.User, tt.want)
			}
			if got.Token != tt.token {
				t.Errorf("Login(%q).Token = %q, want %q", tt.email, got.Token, tt.token)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		local string
		want  string
	}{
		{"mary-jane.watson", "Mary Jane Watson"},
		{"alice", "Alice"},
		{"x2y", "X2y"},
		{"42answer", "42answer"},
		{"a..b", "A  B"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.local); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.local, got, tt.want)
		}
	}
}

func TestUserID(t *testing.T) {
	t.Parallel()

	if got := UserID("J.o_h+n-99"); got != "John99" {
		t.Errorf("UserID() = %q, want %q", got, "John99")
	}
}

func TestLocalPart(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"a@b.c":   "a",
		"a@b@c":   "a",
		"@domain": "",
		"none":    "none",
	}
	for email, want := range tests {
		if got := LocalPart(email); got != want {
			t.Errorf("LocalPart(%q) = %q, want %q", email, got, want)
		}
	}
}

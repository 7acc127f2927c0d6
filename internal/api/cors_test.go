// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import "testing"

func TestCORSPolicy_Allowed(t *testing.T) {
	t.Parallel()

	policy := NewCORSPolicy(
		[]string{"http://localhost:3000", "https://app.example.edu", ""},
		[]string{".netlify.app", ""},
		true,
	)

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:3000", true},
		{"http://localhost:3001", false},
		{"https://app.example.edu", true},
		{"https://app.example.edu/", false},
		{"https://branch--lectern.netlify.app", true},
		{"https://netlify.app.attacker.io", false},
		{"https://evilnetlify.app", false},
		{"null", false},
	}

	for _, tt := range tests {
		if got := policy.Allowed(tt.origin); got != tt.want {
			t.Errorf("Allowed(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}

func TestCORSPolicy_NoOriginDenied(t *testing.T) {
	t.Parallel()

	policy := NewCORSPolicy([]string{"http://localhost:3000"}, nil, false)
	if policy.Allowed("") {
		t.Error("Allowed(\"\") = true, want false")
	}
	if !policy.Allowed("http://localhost:3000") {
		t.Error("Allowed(localhost) = false, want true")
	}
	if policy.Allowed("https://x.netlify.app") {
		t.Error("suffix match without suffixes configured")
	}
}

func TestCORSPolicyFromConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CORS.NetlifyURL = "https://lectern.netlify.app"
	policy := CORSPolicyFromConfig(cfg)

	for _, origin := range []string{"https://app.example.edu", "https://lectern.netlify.app", "http://localhost:5173"} {
		if !policy.Allowed(origin) {
			t.Errorf("Allowed(%q) = false, want true", origin)
		}
	}
}

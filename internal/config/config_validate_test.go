// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package config

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 65536 }, true},
		{"non-positive body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, true},
		{"frontend url with path", func(c *Config) { c.CORS.FrontendURL = "https://app.example.com/login" }, true},
		{"frontend url bad scheme", func(c *Config) { c.CORS.FrontendURL = "ftp://app.example.com" }, true},
		{"frontend url ok", func(c *Config) { c.CORS.FrontendURL = "https://app.example.com" }, false},
		{"wildcard origin", func(c *Config) { c.CORS.Origins = []string{"*"} }, true},
		{"suffix without dot", func(c *Config) { c.CORS.WildcardSuffixes = []string{"netlify.app"} }, true},
		{"bare dot suffix", func(c *Config) { c.CORS.WildcardSuffixes = []string{"."} }, true},
		{"no suffixes", func(c *Config) { c.CORS.WildcardSuffixes = nil }, false},
		{"rate limit zero requests", func(c *Config) { c.RateLimit.Requests = 0 }, true},
		{"rate limit tiny window", func(c *Config) { c.RateLimit.Window = time.Millisecond }, true},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.RateLimit.Disabled = true
			c.RateLimit.Requests = 0
		}, false},
		{"metrics path relative", func(c *Config) { c.Metrics.Path = "metrics" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env   string
		prod  bool
		devel bool
	}{
		{"development", false, true},
		{"dev", false, false},
		{"Development", false, false},
		{"", false, false},
		{"production", true, false},
		{"PRODUCTION", true, false},
		{"staging", false, false},
	}
	for _, tt := range tests {
		cfg := defaultConfig()
		cfg.Server.Environment = tt.env
		if got := cfg.IsProduction(); got != tt.prod {
			t.Errorf("IsProduction(%q) = %v, want %v", tt.env, got, tt.prod)
		}
		if got := cfg.IsDevelopment(); got != tt.devel {
			t.Errorf("IsDevelopment(%q) = %v, want %v", tt.env, got, tt.devel)
		}
	}
}

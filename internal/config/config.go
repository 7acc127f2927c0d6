// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

// Package config loads Lectern's runtime configuration.
//
// Sources are layered, later ones winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/lectern/config.yaml)
//  3. Environment variables, including any loaded from a .env file
//
// Example config.yaml:
//
//	server:
//	  port: 5000
//	  environment: production
//	cors:
//	  frontend_url: https://learn.example.edu
//	  wildcard_suffixes: [".netlify.app"]
//	rate_limit:
//	  requests: 100
//	  window: 15m
package config

import (
	"strings"
	"time"
)

// Config is the complete runtime configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logging   LoggingConfig   `koanf:"logging"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	WebSocket WebSocketConfig `koanf:"websocket"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port         int           `koanf:"port"`
	Host         string        `koanf:"host"`
	Environment  string        `koanf:"environment"` // development, staging, production
	Timeout      time.Duration `koanf:"timeout"`
	MaxBodyBytes int64         `koanf:"max_body_bytes"`
}

// CORSConfig describes which browser origins may call the API.
type CORSConfig struct {
	FrontendURL      string   `koanf:"frontend_url"`
	NetlifyURL       string   `koanf:"netlify_url"`
	Origins          []string `koanf:"origins"`
	WildcardSuffixes []string `koanf:"wildcard_suffixes"`
	AllowNoOrigin    bool     `koanf:"allow_no_origin"`
}

// RateLimitConfig bounds requests per client IP on /api routes.
type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Disabled bool          `koanf:"disabled"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// WebSocketConfig controls the live-session event stream.
type WebSocketConfig struct {
	Enabled bool `koanf:"enabled"`
}

// Load reads configuration from all sources and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Default returns the built-in defaults without reading any source.
func Default() *Config {
	return defaultConfig()
}

// ExactOrigins returns the exact-match CORS allow-list: the configured
// origins followed by FRONTEND_URL and NETLIFY_URL. Trailing slashes are
// removed because browsers never send one, and empty or duplicate entries
// are dropped.
func (c *Config) ExactOrigins() []string {
	candidates := make([]string, 0, len(c.CORS.Origins)+2)
	candidates = append(candidates, c.CORS.Origins...)
	candidates = append(candidates, c.CORS.FrontendURL, c.CORS.NetlifyURL)

	seen := make(map[string]bool, len(candidates))
	origins := make([]string, 0, len(candidates))
	for _, o := range candidates {
		o = strings.TrimSuffix(o, "/")
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		origins = append(origins, o)
	}
	return origins
}

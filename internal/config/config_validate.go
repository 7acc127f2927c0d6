// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCORS(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	if err := c.validateMetrics(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	return nil
}

// validateCORS checks origin URLs and suffixes. A suffix without a leading
// dot would let "evilnetlify.app" match "netlify.app".
func (c *Config) validateCORS() error {
	if c.CORS.FrontendURL != "" {
		if err := validateHTTPURL(c.CORS.FrontendURL, "FRONTEND_URL"); err != nil {
			return err
		}
	}
	if c.CORS.NetlifyURL != "" {
		if err := validateHTTPURL(c.CORS.NetlifyURL, "NETLIFY_URL"); err != nil {
			return err
		}
	}
	for _, origin := range c.CORS.Origins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must list explicit origins; credentials are always allowed so * is rejected")
		}
		if err := validateHTTPURL(origin, "CORS_ORIGINS"); err != nil {
			return err
		}
	}
	for _, suffix := range c.CORS.WildcardSuffixes {
		if !strings.HasPrefix(suffix, ".") || len(suffix) < 2 {
			return fmt.Errorf("CORS_WILDCARD_SUFFIXES entries must start with a dot, got %q", suffix)
		}
	}
	return nil
}

// Rate limit bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = 24 * time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.RateLimit.Disabled {
		return nil
	}
	if c.RateLimit.Requests < minRateLimitRequests || c.RateLimit.Requests > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.RateLimit.Window < minRateLimitWindow || c.RateLimit.Window > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateMetrics() error {
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("METRICS_PATH must start with /")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment reports whether internal error details may be exposed to
// clients. Only the exact value "development" qualifies; an unset
// environment is treated as non-development.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"strings"

	"github.com/tomtom215/lectern/internal/config"
)

// CORSPolicy decides which browser origins may call the API. An origin is
// allowed when it is absent (and AllowNoOrigin is set), exactly matches the
// allow-list, or ends with one of the trusted suffixes.
type CORSPolicy struct {
	exactOrigins     map[string]struct{}
	wildcardSuffixes []string
	allowNoOrigin    bool
}

// NewCORSPolicy builds a policy. With no suffixes only the exact list applies.
func NewCORSPolicy(exactOrigins, wildcardSuffixes []string, allowNoOrigin bool) *CORSPolicy {
	exact := make(map[string]struct{}, len(exactOrigins))
	for _, origin := range exactOrigins {
		if origin != "" {
			exact[origin] = struct{}{}
		}
	}
	suffixes := make([]string, 0, len(wildcardSuffixes))
	for _, suffix := range wildcardSuffixes {
		if suffix != "" {
			suffixes = append(suffixes, suffix)
		}
	}
	return &CORSPolicy{
		exactOrigins:     exact,
		wildcardSuffixes: suffixes,
		allowNoOrigin:    allowNoOrigin,
	}
}

// CORSPolicyFromConfig builds the policy from the cors config section.
func CORSPolicyFromConfig(cfg *config.Config) *CORSPolicy {
	return NewCORSPolicy(cfg.ExactOrigins(), cfg.CORS.WildcardSuffixes, cfg.CORS.AllowNoOrigin)
}

// Allowed reports whether origin may make credentialed requests.
func (p *CORSPolicy) Allowed(origin string) bool {
	if origin == "" {
		return p.allowNoOrigin
	}
	if _, ok := p.exactOrigins[origin]; ok {
		return true
	}
	for _, suffix := range p.wildcardSuffixes {
		if strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}

// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/lectern/config.yaml",
	"/etc/lectern/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPathEnvVar overrides the .env file path.
const DotEnvPathEnvVar = "DOTENV_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         5000,
			Host:         "0.0.0.0",
			Timeout:      30 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		CORS: CORSConfig{
			Origins:          []string{"http://localhost:3000", "http://localhost:5173"},
			WildcardSuffixes: []string{".netlify.app"},
			AllowNoOrigin:    true,
		},
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   15 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		WebSocket: WebSocketConfig{
			Enabled: true,
		},
	}
}

// LoadWithKoanf loads configuration in three layers: defaults, then an
// optional YAML file, then environment variables. A .env file, when present,
// is merged into the process environment first without overriding variables
// that are already set.
func LoadWithKoanf() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadDotEnv reads DOTENV_PATH or ./.env. A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv(DotEnvPathEnvVar)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"cors.origins",
	"cors.wildcard_suffixes",
}

// processSliceFields splits comma-separated strings for known slice paths.
// Values that arrive as YAML lists are left alone. An explicitly empty env
// value clears the slice, which turns wildcard suffix matching off.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// PORT and NODE_ENV are the names the platform's deployment tooling sets;
// HTTP_PORT and ENVIRONMENT are accepted as aliases.
var envMappings = map[string]string{
	"port":           "server.port",
	"http_port":      "server.port",
	"host":           "server.host",
	"node_env":       "server.environment",
	"environment":    "server.environment",
	"server_timeout": "server.timeout",
	"max_body_bytes": "server.max_body_bytes",

	"frontend_url":           "cors.frontend_url",
	"netlify_url":            "cors.netlify_url",
	"cors_origins":           "cors.origins",
	"cors_wildcard_suffixes": "cors.wildcard_suffixes",
	"cors_allow_no_origin":   "cors.allow_no_origin",

	"rate_limit_requests": "rate_limit.requests",
	"rate_limit_window":   "rate_limit.window",
	"disable_rate_limit":  "rate_limit.disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"metrics_enabled": "metrics.enabled",
	"metrics_path":    "metrics.path",

	"websocket_enabled": "websocket.enabled",
}

// envTransformFunc returns the koanf path for an environment variable, or ""
// to ignore variables Lectern does not know about.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

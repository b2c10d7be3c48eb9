// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/letterboxd-wrapped/config.yaml",
	"/etc/letterboxd-wrapped/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			Timeout:           30 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Upload: UploadConfig{
			MaxBytes: 5 << 20, // 5MiB covers multi-decade diaries with room to spare
		},
		Analytics: AnalyticsConfig{
			MinEntries:                5,
			HighRatingThreshold:       4.5,
			TopFilmsCap:               6,
			HoursPerFilm:              2,
			MinRatedForTaste:          5,
			VolatilityDivisor:         2.5,
			ContrarianMeanBelow:       3.5,
			ContrarianVolatilityAbove: 0.6,
			MarathonerMinFilms:        100,
			RewatchRatioThreshold:     0.3,
			ChaosVolatilityAbove:      0.5,
			PrestigeMinAvgRating:      4.0,
		},
		Enrich: EnrichConfig{
			Enabled:   false,
			BaseURL:   "https://api.themoviedb.org/3",
			APIKey:    "",
			BatchCap:  20,
			RateLimit: 4,
			CacheTTL:  24 * time.Hour,
			Timeout:   10 * time.Second,
		},
		Persona: PersonaConfig{
			Enabled:         false,
			APIURL:          "https://api.openai.com/v1/chat/completions",
			APIKey:          "",
			Model:           "gpt-4o-mini",
			MinReviewLength: 50,
			Timeout:         30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// Transform environment variable names to koanf paths:
	// HTTP_PORT -> server.port
	// TMDB_API_KEY -> enrich.api_key
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
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

// findConfigFile returns the config file to use, or "" when none exists.
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

// processSliceFields converts comma-separated env strings into slices for
// the fields that need it. Env providers deliver scalars only.
func processSliceFields(k *koanf.Koanf) error {
	if raw := k.String("server.cors_origins"); raw != "" && !strings.HasPrefix(raw, "[") {
		parts := strings.Split(raw, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		if err := k.Set("server.cors_origins", origins); err != nil {
			return fmt.Errorf("failed to set cors_origins: %w", err)
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config paths.
// Unmapped variables are dropped so random environment noise never lands
// in the config.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_host":           "server.host",
		"http_port":           "server.port",
		"http_timeout":        "server.timeout",
		"cors_origins":        "server.cors_origins",
		"rate_limit_requests": "server.rate_limit_reqs",
		"rate_limit_window":   "server.rate_limit_window",
		"disable_rate_limit":  "server.rate_limit_disabled",

		// Upload mappings
		"upload_max_bytes": "upload.max_bytes",

		// Analytics mappings
		"analytics_min_entries":           "analytics.min_entries",
		"analytics_high_rating":           "analytics.high_rating_threshold",
		"analytics_top_films_cap":         "analytics.top_films_cap",
		"analytics_hours_per_film":        "analytics.hours_per_film",
		"analytics_min_rated_for_taste":   "analytics.min_rated_for_taste",
		"analytics_volatility_divisor":    "analytics.volatility_divisor",
		"analytics_contrarian_mean":       "analytics.contrarian_mean_below",
		"analytics_contrarian_volatility": "analytics.contrarian_volatility_above",
		"analytics_marathoner_min":        "analytics.marathoner_min_films",
		"analytics_rewatch_ratio":         "analytics.rewatch_ratio_threshold",
		"analytics_chaos_volatility":      "analytics.chaos_volatility_above",
		"analytics_prestige_min_avg":      "analytics.prestige_min_avg_rating",

		// Enrichment mappings
		"enrich_enabled":    "enrich.enabled",
		"tmdb_base_url":     "enrich.base_url",
		"tmdb_api_key":      "enrich.api_key",
		"enrich_batch_cap":  "enrich.batch_cap",
		"enrich_rate_limit": "enrich.rate_limit",
		"enrich_cache_ttl":  "enrich.cache_ttl",
		"enrich_timeout":    "enrich.timeout",

		// Persona mappings
		"persona_enabled":           "persona.enabled",
		"persona_api_url":           "persona.api_url",
		"persona_api_key":           "persona.api_key",
		"persona_model":             "persona.model",
		"persona_min_review_length": "persona.min_review_length",
		"persona_timeout":           "persona.timeout",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// Unmapped keys are skipped.
	return ""
}

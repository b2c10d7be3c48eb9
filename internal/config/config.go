// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package config

import "time"

// Config holds all application configuration loaded from environment
// variables and an optional YAML config file.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in sensible defaults for every setting
//  2. Config File: optional YAML file (config.yaml) for persistent settings
//  3. Environment Variables: override any setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Upload    UploadConfig    `koanf:"upload"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Enrich    EnrichConfig    `koanf:"enrich"`
	Persona   PersonaConfig   `koanf:"persona"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8080)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: Requests allowed per window (default: 60)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: Disable API rate limiting (default: false)
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	Timeout           time.Duration `koanf:"timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// UploadConfig bounds diary file uploads.
//
// Environment Variables:
//   - UPLOAD_MAX_BYTES: Maximum accepted CSV size in bytes (default: 5MiB)
type UploadConfig struct {
	// MaxBytes is the largest diary CSV the API accepts. Requests beyond
	// this limit are rejected with FILE_TOO_LARGE.
	MaxBytes int64 `koanf:"max_bytes"`
}

// AnalyticsConfig holds the tuning constants of the analysis pipeline.
// Every threshold the pipeline applies lives here rather than in code so
// deployments can adjust them without a rebuild.
//
// Environment Variables:
//   - ANALYTICS_MIN_ENTRIES: Minimum diary entries for an analysis (default: 5)
//   - ANALYTICS_HIGH_RATING: Highly-rated threshold (default: 4.5)
//   - ANALYTICS_TOP_FILMS_CAP: Max films in the highly-rated list (default: 6)
//   - ANALYTICS_HOURS_PER_FILM: Estimated hours per diary entry (default: 2)
type AnalyticsConfig struct {
	// MinEntries is the minimum number of entries in the analysis year.
	// Below it the analysis is refused rather than producing noise.
	MinEntries int `koanf:"min_entries"`

	// HighRatingThreshold is the inclusive rating floor for the
	// highly-rated films list.
	HighRatingThreshold float64 `koanf:"high_rating_threshold"`

	// TopFilmsCap caps the highly-rated films list.
	TopFilmsCap int `koanf:"top_films_cap"`

	// HoursPerFilm is the fixed estimate used for total watch time.
	HoursPerFilm int `koanf:"hours_per_film"`

	// MinRatedForTaste is the minimum rated entries before a taste
	// profile is computed; below it the neutral profile is returned.
	MinRatedForTaste int `koanf:"min_rated_for_taste"`

	// VolatilityDivisor normalizes the rating standard deviation into
	// the [0, 1] volatility range.
	VolatilityDivisor float64 `koanf:"volatility_divisor"`

	// ContrarianMeanBelow marks a viewer contrarian when their mean
	// rating falls below it.
	ContrarianMeanBelow float64 `koanf:"contrarian_mean_below"`

	// ContrarianVolatilityAbove marks a viewer contrarian when their
	// volatility exceeds it.
	ContrarianVolatilityAbove float64 `koanf:"contrarian_volatility_above"`

	// Archetype rule thresholds, applied in fixed rule order.
	MarathonerMinFilms    int     `koanf:"marathoner_min_films"`
	RewatchRatioThreshold float64 `koanf:"rewatch_ratio_threshold"`
	ChaosVolatilityAbove  float64 `koanf:"chaos_volatility_above"`
	PrestigeMinAvgRating  float64 `koanf:"prestige_min_avg_rating"`
}

// EnrichConfig holds the film metadata provider settings.
// Enrichment is optional; when disabled the analysis runs without posters
// or genres.
//
// Environment Variables:
//   - ENRICH_ENABLED: Enable metadata enrichment (default: false)
//   - TMDB_BASE_URL: Metadata API base URL (default: https://api.themoviedb.org/3)
//   - TMDB_API_KEY: Metadata API key (required when enabled)
//   - ENRICH_BATCH_CAP: Max titles looked up per analysis (default: 20)
//   - ENRICH_RATE_LIMIT: Lookups per second (default: 4)
//   - ENRICH_CACHE_TTL: Metadata cache TTL (default: 24h)
//   - ENRICH_TIMEOUT: Per-lookup HTTP timeout (default: 10s)
type EnrichConfig struct {
	Enabled   bool          `koanf:"enabled"`
	BaseURL   string        `koanf:"base_url"`
	APIKey    string        `koanf:"api_key"`
	BatchCap  int           `koanf:"batch_cap"`
	RateLimit float64       `koanf:"rate_limit"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
	Timeout   time.Duration `koanf:"timeout"`
}

// PersonaConfig holds the AI persona generator settings.
// The generator is optional; when disabled or unreachable the analysis
// falls back to a fixed neutral persona.
//
// Environment Variables:
//   - PERSONA_ENABLED: Enable persona generation (default: false)
//   - PERSONA_API_URL: Chat completions endpoint (default: https://api.openai.com/v1/chat/completions)
//   - PERSONA_API_KEY: API key (required when enabled)
//   - PERSONA_MODEL: Model identifier (default: gpt-4o-mini)
//   - PERSONA_MIN_REVIEW_LENGTH: Minimum review length to include as a signal (default: 50)
//   - PERSONA_TIMEOUT: HTTP timeout for one generation (default: 30s)
type PersonaConfig struct {
	Enabled         bool          `koanf:"enabled"`
	APIURL          string        `koanf:"api_url"`
	APIKey          string        `koanf:"api_key"`
	Model           string        `koanf:"model"`
	MinReviewLength int           `koanf:"min_review_length"`
	Timeout         time.Duration `koanf:"timeout"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package config

import (
	"fmt"
	"net/url"
)

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

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateUpload(); err != nil {
		return err
	}

	if err := c.validateAnalytics(); err != nil {
		return err
	}

	if err := c.validateEnrich(); err != nil {
		return err
	}

	if err := c.validatePersona(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateUpload() error {
	if c.Upload.MaxBytes < 1 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be at least 1")
	}
	return nil
}

func (c *Config) validateAnalytics() error {
	a := c.Analytics
	if a.MinEntries < 1 {
		return fmt.Errorf("ANALYTICS_MIN_ENTRIES must be at least 1")
	}
	if a.HighRatingThreshold < 0.5 || a.HighRatingThreshold > 5.0 {
		return fmt.Errorf("ANALYTICS_HIGH_RATING must be between 0.5 and 5.0")
	}
	if a.TopFilmsCap < 1 {
		return fmt.Errorf("ANALYTICS_TOP_FILMS_CAP must be at least 1")
	}
	if a.HoursPerFilm < 1 {
		return fmt.Errorf("ANALYTICS_HOURS_PER_FILM must be at least 1")
	}
	if a.MinRatedForTaste < 1 {
		return fmt.Errorf("ANALYTICS_MIN_RATED_FOR_TASTE must be at least 1")
	}
	if a.VolatilityDivisor <= 0 {
		return fmt.Errorf("ANALYTICS_VOLATILITY_DIVISOR must be positive")
	}
	if a.MarathonerMinFilms < 1 {
		return fmt.Errorf("ANALYTICS_MARATHONER_MIN must be at least 1")
	}
	if a.RewatchRatioThreshold < 0 || a.RewatchRatioThreshold > 1 {
		return fmt.Errorf("ANALYTICS_REWATCH_RATIO must be between 0 and 1")
	}
	return nil
}

// validateEnrich validates metadata provider settings (only if enabled).
func (c *Config) validateEnrich() error {
	if !c.Enrich.Enabled {
		return nil
	}

	if c.Enrich.APIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required when ENRICH_ENABLED=true")
	}
	if err := validateHTTPURL(c.Enrich.BaseURL, "TMDB_BASE_URL"); err != nil {
		return fmt.Errorf("TMDB_BASE_URL is invalid: %w", err)
	}
	if c.Enrich.BatchCap < 1 {
		return fmt.Errorf("ENRICH_BATCH_CAP must be at least 1")
	}
	if c.Enrich.RateLimit <= 0 {
		return fmt.Errorf("ENRICH_RATE_LIMIT must be positive")
	}
	if c.Enrich.Timeout <= 0 {
		return fmt.Errorf("ENRICH_TIMEOUT must be positive")
	}
	return nil
}

// validatePersona validates persona generator settings (only if enabled).
func (c *Config) validatePersona() error {
	if !c.Persona.Enabled {
		return nil
	}

	if c.Persona.APIKey == "" {
		return fmt.Errorf("PERSONA_API_KEY is required when PERSONA_ENABLED=true")
	}
	if c.Persona.APIURL == "" {
		return fmt.Errorf("PERSONA_API_URL is required when PERSONA_ENABLED=true")
	}
	if c.Persona.Model == "" {
		return fmt.Errorf("PERSONA_MODEL is required when PERSONA_ENABLED=true")
	}
	if c.Persona.MinReviewLength < 0 {
		return fmt.Errorf("PERSONA_MIN_REVIEW_LENGTH must not be negative")
	}
	if c.Persona.Timeout <= 0 {
		return fmt.Errorf("PERSONA_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateHTTPURL validates that a URL is usable as an HTTP/HTTPS base URL.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	return nil
}

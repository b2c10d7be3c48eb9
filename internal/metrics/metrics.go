// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

// Package metrics exposes Prometheus instrumentation for the analysis
// pipeline, the HTTP API, and the collaborator clients.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Diary Parsing Metrics
	DiaryParseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "diary_parse_duration_seconds",
			Help:    "Time spent parsing one diary upload",
			Buckets: prometheus.DefBuckets,
		},
	)

	DiaryEntriesParsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diary_entries_parsed_total",
			Help: "Total diary entries successfully parsed",
		},
	)

	DiaryRowsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diary_rows_skipped_total",
			Help: "Total malformed diary rows skipped during parsing",
		},
	)

	DiaryParseErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diary_parse_errors_total",
			Help: "Total diary uploads rejected at parse time",
		},
		[]string{"reason"}, // "empty_file", "missing_header", "malformed"
	)

	// Analysis Metrics
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "Time spent computing one year-in-review report",
			Buckets: prometheus.DefBuckets,
		},
	)

	AnalysisTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_total",
			Help: "Total analyses by outcome",
		},
		[]string{"outcome"}, // "success", "insufficient_data", "error"
	)

	AnalysisArchetypes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_archetypes_total",
			Help: "Archetypes assigned across all analyses",
		},
		[]string{"archetype"},
	)

	// Enrichment Metrics
	EnrichLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrich_lookups_total",
			Help: "Total film metadata lookups by result",
		},
		[]string{"result"}, // "hit", "miss", "error", "cached"
	)

	EnrichLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enrich_lookup_duration_seconds",
			Help:    "Film metadata lookup duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// Persona Metrics
	PersonaGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persona_generations_total",
			Help: "Total persona generations by result",
		},
		[]string{"result"}, // "success", "fallback"
	)

	PersonaGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "persona_generation_duration_seconds",
			Help:    "Persona generation duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTrips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_trips_total",
			Help: "Total circuit breaker open transitions",
		},
		[]string{"name"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDiaryParse records the outcome of one parse pass.
func RecordDiaryParse(duration time.Duration, entries, skipped int) {
	DiaryParseDuration.Observe(duration.Seconds())
	DiaryEntriesParsed.Add(float64(entries))
	DiaryRowsSkipped.Add(float64(skipped))
}

// RecordAnalysis records one completed or failed analysis.
func RecordAnalysis(outcome string, duration time.Duration) {
	AnalysisTotal.WithLabelValues(outcome).Inc()
	AnalysisDuration.Observe(duration.Seconds())
}

// RecordEnrichLookup records one metadata lookup.
func RecordEnrichLookup(result string, duration time.Duration) {
	EnrichLookupsTotal.WithLabelValues(result).Inc()
	EnrichLookupDuration.Observe(duration.Seconds())
}

// RecordPersonaGeneration records one persona generation attempt.
func RecordPersonaGeneration(result string, duration time.Duration) {
	PersonaGenerationsTotal.WithLabelValues(result).Inc()
	PersonaGenerationDuration.Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

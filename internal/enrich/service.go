// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package enrich

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/cache"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/config"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/logging"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/metrics"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

// Lookuper is the metadata lookup the service is built on. *TMDBClient
// satisfies it; tests substitute their own.
type Lookuper interface {
	Lookup(ctx context.Context, title string, releaseYear int) (*FilmMetadata, error)
}

// Service enriches analysis reports with film metadata. Lookups are rate
// limited and pass through a TTL cache and a circuit breaker; every failure
// mode degrades to an unenriched film rather than an error.
type Service struct {
	client  Lookuper
	cache   *cache.Cache
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[*FilmMetadata]
	cfg     config.EnrichConfig
}

const breakerName = "tmdb-api"

// NewService wires a metadata service from configuration.
func NewService(cfg config.EnrichConfig) *Service {
	client := NewTMDBClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout)
	return NewServiceWithClient(cfg, client)
}

// NewServiceWithClient is NewService with an injected lookup client.
func NewServiceWithClient(cfg config.EnrichConfig, client Lookuper) *Service {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[*FilmMetadata](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("Circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			if to == gobreaker.StateOpen {
				metrics.CircuitBreakerTrips.WithLabelValues(name).Inc()
			}
		},
	})

	return &Service{
		client:  client,
		cache:   cache.New(cfg.CacheTTL),
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		cb:      cb,
		cfg:     cfg,
	}
}

// Close releases the service's background resources.
func (s *Service) Close() {
	s.cache.Stop()
}

// EnrichReport fills poster and genre data on the report's highly-rated
// films, at most BatchCap lookups per call. Misses and provider errors
// leave the affected film untouched.
func (s *Service) EnrichReport(ctx context.Context, report *models.AnalysisReport) {
	budget := s.cfg.BatchCap
	for i := range report.HighlyRated {
		if budget == 0 {
			break
		}
		film := &report.HighlyRated[i]

		meta, fetched := s.lookupFilm(ctx, film.Title, film.ReleaseYear)
		if fetched {
			budget--
		}
		if meta != nil {
			film.PosterURL = meta.PosterURL
			film.Genres = meta.Genres
		}
	}
}

// lookupFilm resolves one film through cache, limiter, and breaker.
// fetched reports whether a provider call was spent on it.
func (s *Service) lookupFilm(ctx context.Context, title string, releaseYear int) (meta *FilmMetadata, fetched bool) {
	key := cache.GenerateKey("tmdb", struct {
		Title string
		Year  int
	}{title, releaseYear})

	if cached, ok := s.cache.Get(key); ok {
		metrics.EnrichLookupsTotal.WithLabelValues("cached").Inc()
		meta, _ = cached.(*FilmMetadata)
		return meta, false
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, false
	}

	start := time.Now()
	meta, err := s.cb.Execute(func() (*FilmMetadata, error) {
		return s.client.Lookup(ctx, title, releaseYear)
	})
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		logging.Warn().Err(err).Msg("Metadata lookup rejected by circuit breaker")
		metrics.RecordEnrichLookup("error", elapsed)
		return nil, false
	case err != nil:
		logging.Warn().Err(err).Str("title", title).Msg("Metadata lookup failed")
		metrics.RecordEnrichLookup("error", elapsed)
		return nil, true
	case meta == nil:
		metrics.RecordEnrichLookup("miss", elapsed)
		s.cache.Set(key, (*FilmMetadata)(nil))
		return nil, true
	default:
		metrics.RecordEnrichLookup("hit", elapsed)
		s.cache.Set(key, meta)
		return meta, true
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package enrich

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/config"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

type fakeLookuper struct {
	calls int
	fn    func(title string, releaseYear int) (*FilmMetadata, error)
}

func (f *fakeLookuper) Lookup(_ context.Context, title string, releaseYear int) (*FilmMetadata, error) {
	f.calls++
	return f.fn(title, releaseYear)
}

func testEnrichConfig() config.EnrichConfig {
	return config.EnrichConfig{
		Enabled:   true,
		BatchCap:  20,
		RateLimit: 1000, // effectively unlimited in tests
		CacheTTL:  time.Minute,
		Timeout:   time.Second,
	}
}

func reportWithFilms(n int) *models.AnalysisReport {
	report := &models.AnalysisReport{}
	for i := 0; i < n; i++ {
		report.HighlyRated = append(report.HighlyRated, models.RankedFilm{
			Title:       fmt.Sprintf("Film %d", i),
			ReleaseYear: 2000 + i,
			Rating:      5,
		})
	}
	return report
}

func TestEnrichReportAttachesMetadata(t *testing.T) {
	fake := &fakeLookuper{fn: func(title string, _ int) (*FilmMetadata, error) {
		return &FilmMetadata{
			TMDBID:    1,
			PosterURL: "https://image.example/" + title,
			Genres:    []string{"Drama"},
		}, nil
	}}
	s := NewServiceWithClient(testEnrichConfig(), fake)
	defer s.Close()

	report := reportWithFilms(3)
	s.EnrichReport(context.Background(), report)

	for i, film := range report.HighlyRated {
		if film.PosterURL == "" {
			t.Errorf("film %d has no poster", i)
		}
		if len(film.Genres) != 1 || film.Genres[0] != "Drama" {
			t.Errorf("film %d genres = %v", i, film.Genres)
		}
	}
}

func TestEnrichReportBatchCap(t *testing.T) {
	fake := &fakeLookuper{fn: func(string, int) (*FilmMetadata, error) {
		return &FilmMetadata{TMDBID: 1, PosterURL: "p"}, nil
	}}
	cfg := testEnrichConfig()
	cfg.BatchCap = 2
	s := NewServiceWithClient(cfg, fake)
	defer s.Close()

	report := reportWithFilms(5)
	s.EnrichReport(context.Background(), report)

	if fake.calls != 2 {
		t.Errorf("provider calls = %d, want cap of 2", fake.calls)
	}
	if report.HighlyRated[0].PosterURL == "" || report.HighlyRated[1].PosterURL == "" {
		t.Error("films within the cap were not enriched")
	}
	if report.HighlyRated[2].PosterURL != "" {
		t.Error("film beyond the cap was enriched")
	}
}

func TestEnrichReportToleratesMissesAndErrors(t *testing.T) {
	fake := &fakeLookuper{fn: func(title string, _ int) (*FilmMetadata, error) {
		switch title {
		case "Film 0":
			return nil, nil // no match
		case "Film 1":
			return nil, errors.New("provider down")
		default:
			return &FilmMetadata{TMDBID: 3, PosterURL: "found"}, nil
		}
	}}
	s := NewServiceWithClient(testEnrichConfig(), fake)
	defer s.Close()

	report := reportWithFilms(3)
	s.EnrichReport(context.Background(), report)

	if report.HighlyRated[0].PosterURL != "" {
		t.Error("missed film should stay unenriched")
	}
	if report.HighlyRated[1].PosterURL != "" {
		t.Error("errored film should stay unenriched")
	}
	if report.HighlyRated[2].PosterURL != "found" {
		t.Error("later film should still enrich after earlier failures")
	}
}

func TestEnrichReportUsesCache(t *testing.T) {
	fake := &fakeLookuper{fn: func(string, int) (*FilmMetadata, error) {
		return &FilmMetadata{TMDBID: 1, PosterURL: "p"}, nil
	}}
	s := NewServiceWithClient(testEnrichConfig(), fake)
	defer s.Close()

	report := reportWithFilms(1)
	s.EnrichReport(context.Background(), report)
	s.EnrichReport(context.Background(), reportWithFilms(1))

	if fake.calls != 1 {
		t.Errorf("provider calls = %d, want 1 with a warm cache", fake.calls)
	}
}

func TestEnrichReportCachedLookupDoesNotSpendBudget(t *testing.T) {
	fake := &fakeLookuper{fn: func(string, int) (*FilmMetadata, error) {
		return &FilmMetadata{TMDBID: 1, PosterURL: "p"}, nil
	}}
	cfg := testEnrichConfig()
	cfg.BatchCap = 1
	s := NewServiceWithClient(cfg, fake)
	defer s.Close()

	// Warm the cache for Film 0.
	s.EnrichReport(context.Background(), reportWithFilms(1))

	// Film 0 comes from cache, so the single budget slot covers Film 1.
	report := reportWithFilms(2)
	s.EnrichReport(context.Background(), report)

	if report.HighlyRated[1].PosterURL == "" {
		t.Error("budget was spent on a cached film")
	}
}

// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package analytics

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

// titleKey identifies a film by title text alone, case-insensitively, so
// "HEAT" and "Heat" count once. Unique-film counting ignores the release
// year: a remake logged alongside the original is still one title.
func titleKey(e *models.DiaryEntry) string {
	return strings.ToLower(e.Title)
}

// filmKey identifies a film by title and release year. Used where two
// releases sharing a title must stay distinct, as in the highly rated list.
func filmKey(e *models.DiaryEntry) string {
	return strings.ToLower(e.Title) + "|" + strconv.Itoa(e.ReleaseYear)
}

// ComputeStats aggregates the headline numbers for one year's entries.
func (a *Analyzer) ComputeStats(entries []models.DiaryEntry) models.MovieStats {
	stats := models.MovieStats{
		TotalFilms: len(entries),
	}

	unique := make(map[string]struct{}, len(entries))
	ratingSum := 0.0
	for i := range entries {
		e := &entries[i]
		unique[titleKey(e)] = struct{}{}
		if e.Rewatch {
			stats.Rewatches++
		}
		if e.Rating != nil {
			stats.RatedCount++
			ratingSum += *e.Rating
		}
	}
	stats.UniqueFilms = len(unique)

	if stats.TotalFilms > 0 {
		pct := float64(stats.Rewatches) / float64(stats.TotalFilms) * 100
		stats.RewatchPercent = int(math.Round(pct))
	}
	if stats.RatedCount > 0 {
		stats.AverageRating = round2(ratingSum / float64(stats.RatedCount))
	}
	stats.EstimatedHours = stats.TotalFilms * a.cfg.HoursPerFilm

	return stats
}

// HighlyRated returns the films rated at or above the configured threshold,
// best first, capped. Each film appears once at its highest rating; ties
// keep diary order.
func (a *Analyzer) HighlyRated(entries []models.DiaryEntry) []models.RankedFilm {
	rated := make([]models.DiaryEntry, 0, len(entries))
	for i := range entries {
		if r, ok := entries[i].RatingValue(); ok && r >= a.cfg.HighRatingThreshold {
			rated = append(rated, entries[i])
		}
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return *rated[i].Rating > *rated[j].Rating
	})

	seen := make(map[string]struct{}, len(rated))
	films := make([]models.RankedFilm, 0, a.cfg.TopFilmsCap)
	for i := range rated {
		key := filmKey(&rated[i])
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		films = append(films, models.RankedFilm{
			Title:       rated[i].Title,
			ReleaseYear: rated[i].ReleaseYear,
			Rating:      *rated[i].Rating,
		})
		if len(films) == a.cfg.TopFilmsCap {
			break
		}
	}

	return films
}

// MostWatchedDay finds the calendar date with the most logged watches.
// Returns nil when no date has more than one watch; ties keep the date
// encountered first.
func MostWatchedDay(entries []models.DiaryEntry) *models.MostWatchedDay {
	type dayBucket struct {
		date  string
		films []string
	}

	index := make(map[string]int, len(entries))
	buckets := make([]dayBucket, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		idx, ok := index[e.Date]
		if !ok {
			idx = len(buckets)
			index[e.Date] = idx
			buckets = append(buckets, dayBucket{date: e.Date})
		}
		buckets[idx].films = append(buckets[idx].films, e.Title)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return len(buckets[i].films) > len(buckets[j].films)
	})

	if len(buckets) == 0 || len(buckets[0].films) < 2 {
		return nil
	}

	return &models.MostWatchedDay{
		Date:  buckets[0].date,
		Count: len(buckets[0].films),
		Films: buckets[0].films,
	}
}

// round2 rounds to two decimals, half away from zero.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

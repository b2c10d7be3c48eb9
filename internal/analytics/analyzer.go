// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/config"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/logging"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

var (
	// ErrNoEntries is returned when the diary has no entries at all.
	ErrNoEntries = errors.New("no diary entries to analyze")

	// ErrInsufficientData is returned when the analysis year holds fewer
	// entries than the configured minimum.
	ErrInsufficientData = errors.New("not enough entries in the analysis year")
)

// Analyzer computes year-in-review reports. It is stateless apart from its
// configuration and safe for concurrent use.
type Analyzer struct {
	cfg config.AnalyticsConfig
}

// New returns an Analyzer using the given thresholds.
func New(cfg config.AnalyticsConfig) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze builds the full report for one diary. When year is 0 the analysis
// year is detected from the data; otherwise the given year is used as-is.
//
// Returns ErrInsufficientData when the chosen year holds fewer entries than
// the configured minimum, wrapped with the counts involved.
func (a *Analyzer) Analyze(entries []models.DiaryEntry, year int) (*models.AnalysisReport, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	detection := DetectYear(entries)
	if year != 0 {
		detection.Year = year
		detection.Detected = false
	}

	yearEntries := FilterByYear(entries, detection.Year)
	if len(yearEntries) < a.cfg.MinEntries {
		return nil, fmt.Errorf("%w: %d entries in %d, need %d",
			ErrInsufficientData, len(yearEntries), detection.Year, a.cfg.MinEntries)
	}

	stats := a.ComputeStats(yearEntries)
	taste := a.ComputeTasteProfile(yearEntries)

	report := &models.AnalysisReport{
		ID:             uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Year:           detection,
		Stats:          stats,
		Distribution:   ComputeDistribution(yearEntries),
		HighlyRated:    a.HighlyRated(yearEntries),
		MostWatchedDay: MostWatchedDay(yearEntries),
		Taste:          taste,
		Archetype:      a.ClassifyArchetype(stats, taste),
	}

	logging.Debug().
		Int("year", detection.Year).
		Int("entries", len(yearEntries)).
		Str("archetype", string(report.Archetype.ID)).
		Msg("Analysis complete")

	return report, nil
}

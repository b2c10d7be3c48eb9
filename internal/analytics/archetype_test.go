// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package analytics

import (
	"testing"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

func TestClassifyArchetype(t *testing.T) {
	a := New(testConfig())

	tests := []struct {
		name  string
		stats models.MovieStats
		taste models.TasteProfile
		want  models.ArchetypeID
	}{
		{
			name:  "marathoner at threshold",
			stats: models.MovieStats{TotalFilms: 100},
			want:  models.ArchetypeMarathoner,
		},
		{
			name:  "marathoner beats rewatch habit",
			stats: models.MovieStats{TotalFilms: 150, Rewatches: 75, RewatchPercent: 50},
			want:  models.ArchetypeMarathoner,
		},
		{
			name:  "marathoner beats high average",
			stats: models.MovieStats{TotalFilms: 120, RatedCount: 120, AverageRating: 4.8},
			want:  models.ArchetypeMarathoner,
		},
		{
			name:  "comfort rewinder",
			stats: models.MovieStats{TotalFilms: 10, Rewatches: 4, RewatchPercent: 40, RatedCount: 10, AverageRating: 3.0},
			want:  models.ArchetypeComfortRewinder,
		},
		{
			name:  "rewatch ratio at threshold",
			stats: models.MovieStats{TotalFilms: 10, Rewatches: 3, RewatchPercent: 30},
			want:  models.ArchetypeComfortRewinder,
		},
		{
			name:  "chaos curator",
			stats: models.MovieStats{TotalFilms: 40, RatedCount: 40, AverageRating: 4.2},
			taste: models.TasteProfile{RatingVolatility: 0.7},
			want:  models.ArchetypeChaosCurator,
		},
		{
			name:  "volatility at threshold is not chaos",
			stats: models.MovieStats{TotalFilms: 40, RatedCount: 40, AverageRating: 4.2},
			taste: models.TasteProfile{RatingVolatility: 0.5},
			want:  models.ArchetypePrestigePurist,
		},
		{
			name:  "prestige purist",
			stats: models.MovieStats{TotalFilms: 30, RatedCount: 25, AverageRating: 4.0},
			want:  models.ArchetypePrestigePurist,
		},
		{
			name:  "high average with nothing rated is not prestige",
			stats: models.MovieStats{TotalFilms: 30},
			want:  models.ArchetypeEmotionalExplorer,
		},
		{
			name:  "emotional explorer fallback",
			stats: models.MovieStats{TotalFilms: 20, Rewatches: 1, RewatchPercent: 5, RatedCount: 20, AverageRating: 3.5},
			taste: models.TasteProfile{RatingVolatility: 0.3},
			want:  models.ArchetypeEmotionalExplorer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.ClassifyArchetype(tt.stats, tt.taste)
			if got.ID != tt.want {
				t.Errorf("ClassifyArchetype() = %s, want %s", got.ID, tt.want)
			}
			if got.Name == "" || got.Emoji == "" || got.Tagline == "" || got.Description == "" {
				t.Errorf("archetype %s missing copy: %+v", got.ID, got)
			}
			if len(got.Evidence) == 0 {
				t.Errorf("archetype %s has no evidence", got.ID)
			}
		})
	}
}

func TestArchetypeIDSpelling(t *testing.T) {
	// The IDs are the wire values in the API payload, so the hyphenated
	// spelling is part of the contract.
	want := map[models.ArchetypeID]string{
		models.ArchetypeMarathoner:        "marathoner",
		models.ArchetypeComfortRewinder:   "comfort-rewinder",
		models.ArchetypeChaosCurator:      "chaos-curator",
		models.ArchetypePrestigePurist:    "prestige-purist",
		models.ArchetypeEmotionalExplorer: "emotional-explorer",
	}
	for id, spelling := range want {
		if string(id) != spelling {
			t.Errorf("ArchetypeID = %q, want %q", id, spelling)
		}
	}
}

func TestClassifyArchetypeDeterministic(t *testing.T) {
	a := New(testConfig())
	stats := models.MovieStats{TotalFilms: 150, Rewatches: 75, RewatchPercent: 50}

	first := a.ClassifyArchetype(stats, models.TasteProfile{})
	for i := 0; i < 5; i++ {
		if got := a.ClassifyArchetype(stats, models.TasteProfile{}); got.ID != first.ID {
			t.Fatalf("classification changed between runs: %s vs %s", got.ID, first.ID)
		}
	}
}

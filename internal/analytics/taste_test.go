// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package analytics

import (
	"testing"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

func ratedEntries(ratings ...float64) []models.DiaryEntry {
	entries := make([]models.DiaryEntry, 0, len(ratings))
	for i, r := range ratings {
		entries = append(entries, entry("2024-01-01", string(rune('A'+i)), r, false))
	}
	return entries
}

func TestTasteProfileNeutralUnderMinimum(t *testing.T) {
	a := New(testConfig())

	tests := []struct {
		name    string
		entries []models.DiaryEntry
	}{
		{"no ratings", ratedEntries(0, 0, 0, 0, 0, 0)},
		{"four ratings", ratedEntries(5, 5, 5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := a.ComputeTasteProfile(tt.entries)
			if profile.StabilityScore != 50 {
				t.Errorf("StabilityScore = %d, want 50", profile.StabilityScore)
			}
			if profile.RatingVolatility != 0.5 {
				t.Errorf("RatingVolatility = %v, want 0.5", profile.RatingVolatility)
			}
			if profile.Contrarian {
				t.Error("Contrarian = true, want false")
			}
			if profile.ContrarianScore != 0 {
				t.Errorf("ContrarianScore = %d, want 0", profile.ContrarianScore)
			}
		})
	}
}

func TestTasteProfileIdenticalRatings(t *testing.T) {
	a := New(testConfig())
	profile := a.ComputeTasteProfile(ratedEntries(4, 4, 4, 4, 4))

	if profile.RatingVolatility != 0 {
		t.Errorf("RatingVolatility = %v, want 0", profile.RatingVolatility)
	}
	if profile.StabilityScore != 100 {
		t.Errorf("StabilityScore = %d, want 100", profile.StabilityScore)
	}
	if profile.Contrarian {
		t.Error("Contrarian = true, want false for steady 4s")
	}
}

func TestTasteProfileVolatilityClamped(t *testing.T) {
	a := New(testConfig())
	// Max spread: alternating 0.5 and 5.0 gives stddev 2.25, and any
	// divisor result past 1 must clamp.
	profile := a.ComputeTasteProfile(ratedEntries(0.5, 5, 0.5, 5, 0.5, 5))

	if profile.RatingVolatility < 0 || profile.RatingVolatility > 1 {
		t.Errorf("RatingVolatility = %v, want within [0,1]", profile.RatingVolatility)
	}
	if !profile.Contrarian {
		t.Error("Contrarian = false, want true for maximum swing")
	}
}

func TestTasteProfileContrarianByLowMean(t *testing.T) {
	a := New(testConfig())
	// Five ratings with mean 3.4, just under the 3.5 line, low spread.
	profile := a.ComputeTasteProfile(ratedEntries(3.5, 3.5, 3.5, 3.5, 3))

	if !profile.Contrarian {
		t.Error("Contrarian = false, want true for mean 3.4")
	}
	// round((1 - 3.4/5) * 100) = 32
	if profile.ContrarianScore != 32 {
		t.Errorf("ContrarianScore = %d, want 32", profile.ContrarianScore)
	}
}

func TestTasteProfileVolatileLowMean(t *testing.T) {
	a := New(testConfig())
	// Mean 3.4 with a wide spread: stddev is sqrt(3.84) ~ 1.96, so both
	// contrarian conditions hold at once.
	profile := a.ComputeTasteProfile(ratedEntries(5, 5, 1, 5, 1))

	if !profile.Contrarian {
		t.Error("Contrarian = false, want true")
	}
	if profile.ContrarianScore != 32 {
		t.Errorf("ContrarianScore = %d, want 32", profile.ContrarianScore)
	}
	if profile.RatingVolatility <= 0.6 {
		t.Errorf("RatingVolatility = %v, want > 0.6", profile.RatingVolatility)
	}
	if profile.StabilityScore != 22 {
		t.Errorf("StabilityScore = %d, want 22", profile.StabilityScore)
	}
}

func TestTasteProfileNotContrarian(t *testing.T) {
	a := New(testConfig())
	profile := a.ComputeTasteProfile(ratedEntries(3.5, 4, 3.5, 4, 3.5))

	if profile.Contrarian {
		t.Error("Contrarian = true, want false for mean 3.7 with low spread")
	}
	// The score tracks the mean regardless of the contrarian flag:
	// round((1 - 3.7/5) * 100) = 26.
	if profile.ContrarianScore != 26 {
		t.Errorf("ContrarianScore = %d, want 26", profile.ContrarianScore)
	}
}

func TestTasteProfileSampleSize(t *testing.T) {
	a := New(testConfig())
	entries := append(ratedEntries(4, 4, 4, 4, 4), entry("2024-01-01", "Unrated", 0, false))

	if got := a.ComputeTasteProfile(entries).SampleSize; got != 5 {
		t.Errorf("SampleSize = %d, want 5 rated entries only", got)
	}
}

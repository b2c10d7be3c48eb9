// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package analytics

import (
	"math"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

// ComputeTasteProfile measures rating consistency and contrarianism over
// the year's rated entries.
//
// With fewer rated entries than the configured minimum the sample is too
// thin to say anything, so a neutral profile is returned: stability 50,
// volatility 0.5, not contrarian.
func (a *Analyzer) ComputeTasteProfile(entries []models.DiaryEntry) models.TasteProfile {
	ratings := make([]float64, 0, len(entries))
	for i := range entries {
		if r, ok := entries[i].RatingValue(); ok {
			ratings = append(ratings, r)
		}
	}

	if len(ratings) < a.cfg.MinRatedForTaste {
		return models.TasteProfile{
			StabilityScore:   50,
			RatingVolatility: 0.5,
			Contrarian:       false,
			ContrarianScore:  0,
			SampleSize:       len(ratings),
		}
	}

	mean := 0.0
	for _, r := range ratings {
		mean += r
	}
	mean /= float64(len(ratings))

	variance := 0.0
	for _, r := range ratings {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(ratings))
	stddev := math.Sqrt(variance)

	volatility := clamp01(stddev / a.cfg.VolatilityDivisor)
	contrarian := mean < a.cfg.ContrarianMeanBelow || volatility > a.cfg.ContrarianVolatilityAbove

	// Linear in the mean: a 5.0 average scores 0, a 0 average scores 100.
	contrarianScore := int(math.Round((1 - mean/5.0) * 100))
	if contrarianScore < 0 {
		contrarianScore = 0
	}

	return models.TasteProfile{
		StabilityScore:   int(math.Round((1 - volatility) * 100)),
		RatingVolatility: volatility,
		Contrarian:       contrarian,
		ContrarianScore:  contrarianScore,
		SampleSize:       len(ratings),
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

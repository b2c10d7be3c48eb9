// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package analytics

import (
	"fmt"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

// archetypeDefs holds the fixed copy for each archetype.
var archetypeDefs = map[models.ArchetypeID]models.Archetype{
	models.ArchetypeMarathoner: {
		ID:          models.ArchetypeMarathoner,
		Name:        "The Marathoner",
		Emoji:       "🏃",
		Tagline:     "Sleep is for people without watchlists",
		Description: "You watched more films this year than most people watch in three. Volume is the point: the diary is a training log and every week is another long run.",
	},
	models.ArchetypeComfortRewinder: {
		ID:          models.ArchetypeComfortRewinder,
		Name:        "The Comfort Rewinder",
		Emoji:       "🛋️",
		Tagline:     "Why gamble on new when the classics still hit",
		Description: "A large share of your year was spent with films you already knew you loved. Rewatching is how you process the world, and your favorites are a well-worn blanket.",
	},
	models.ArchetypeChaosCurator: {
		ID:          models.ArchetypeChaosCurator,
		Name:        "The Chaos Curator",
		Emoji:       "🎢",
		Tagline:     "Five stars or half a star, nothing in between",
		Description: "Your ratings swing hard. Masterpiece on Monday, disaster on Tuesday. There is no safe middle of the road in your diary and that is exactly how you like it.",
	},
	models.ArchetypePrestigePurist: {
		ID:          models.ArchetypePrestigePurist,
		Name:        "The Prestige Purist",
		Emoji:       "🏆",
		Tagline:     "Life is too short for mediocre cinema",
		Description: "You pick carefully and it shows: your average rating sits at the top of the scale. Either you choose brilliantly or you are generous with greatness. Probably both.",
	},
	models.ArchetypeEmotionalExplorer: {
		ID:          models.ArchetypeEmotionalExplorer,
		Name:        "The Emotional Explorer",
		Emoji:       "🧭",
		Tagline:     "Every film is a new place to feel something",
		Description: "No single habit defines your year. You wander between genres, moods, and eras, letting each film take you somewhere new. The diary is a travel journal.",
	},
}

// ClassifyArchetype assigns the viewer archetype from the year's numbers.
// Rules are checked in a fixed order and the first match wins, so the same
// statistics always produce the same archetype.
func (a *Analyzer) ClassifyArchetype(stats models.MovieStats, taste models.TasteProfile) models.Archetype {
	rewatchRatio := 0.0
	if stats.TotalFilms > 0 {
		rewatchRatio = float64(stats.Rewatches) / float64(stats.TotalFilms)
	}

	switch {
	case stats.TotalFilms >= a.cfg.MarathonerMinFilms:
		return withEvidence(models.ArchetypeMarathoner,
			fmt.Sprintf("%d films logged this year", stats.TotalFilms),
			fmt.Sprintf("roughly %d hours of watching", stats.EstimatedHours),
		)

	case rewatchRatio >= a.cfg.RewatchRatioThreshold:
		return withEvidence(models.ArchetypeComfortRewinder,
			fmt.Sprintf("%d of %d watches were rewatches", stats.Rewatches, stats.TotalFilms),
			fmt.Sprintf("%d%% of the year spent on familiar ground", stats.RewatchPercent),
		)

	case taste.RatingVolatility > a.cfg.ChaosVolatilityAbove:
		return withEvidence(models.ArchetypeChaosCurator,
			fmt.Sprintf("rating volatility of %.2f", taste.RatingVolatility),
			fmt.Sprintf("stability score of just %d", taste.StabilityScore),
		)

	case stats.RatedCount > 0 && stats.AverageRating >= a.cfg.PrestigeMinAvgRating:
		return withEvidence(models.ArchetypePrestigePurist,
			fmt.Sprintf("average rating of %.2f across %d rated films", stats.AverageRating, stats.RatedCount),
		)

	default:
		return withEvidence(models.ArchetypeEmotionalExplorer,
			fmt.Sprintf("%d films across the year with no single dominant habit", stats.TotalFilms),
		)
	}
}

func withEvidence(id models.ArchetypeID, evidence ...string) models.Archetype {
	archetype := archetypeDefs[id]
	archetype.Evidence = evidence
	return archetype
}

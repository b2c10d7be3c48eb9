// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package models

// MonthNames maps month-of-year (1-12) to its English name. Index 0 is unused.
var MonthNames = [13]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DayNames maps weekday (0=Sunday) to its English name.
var DayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// MovieStats holds the headline aggregate numbers for one diary year.
type MovieStats struct {
	// TotalFilms is the number of diary entries, rewatches included.
	TotalFilms int `json:"total_films"`

	// UniqueFilms is the number of distinct titles, compared
	// case-insensitively and regardless of release year.
	UniqueFilms int `json:"unique_films"`

	// Rewatches is the number of entries flagged as rewatches.
	Rewatches int `json:"rewatches"`

	// RewatchPercent is Rewatches over TotalFilms, rounded to the nearest
	// whole percent. 0 when TotalFilms is 0.
	RewatchPercent int `json:"rewatch_percent"`

	// AverageRating is the mean over rated entries only, rounded to two
	// decimals. 0 when no entry is rated.
	AverageRating float64 `json:"average_rating"`

	// RatedCount is the number of entries that carry a rating.
	RatedCount int `json:"rated_count"`

	// EstimatedHours approximates total watch time from a fixed
	// hours-per-entry figure.
	EstimatedHours int `json:"estimated_hours"`
}

// ViewingDistribution breaks watch counts down by calendar month and weekday.
type ViewingDistribution struct {
	// ByMonth holds watch counts per month-of-year; index 0 is unused.
	ByMonth [13]int `json:"by_month"`

	// ByDay holds watch counts per weekday, 0=Sunday.
	ByDay [7]int `json:"by_day"`

	// BusiestMonth is the English name of the month with the most watches,
	// or "" when no entry had a parseable date.
	BusiestMonth string `json:"busiest_month,omitempty"`

	// BusiestDay is the English name of the weekday with the most watches,
	// or "" when no entry had a parseable date.
	BusiestDay string `json:"busiest_day,omitempty"`
}

// RankedFilm is one film in the highly-rated list. PosterURL and Genres are
// filled only when metadata enrichment ran and matched.
type RankedFilm struct {
	Title       string   `json:"title"`
	ReleaseYear int      `json:"release_year,omitempty"`
	Rating      float64  `json:"rating"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

// MostWatchedDay is the single calendar date with the most logged watches.
type MostWatchedDay struct {
	Date  string   `json:"date"`
	Count int      `json:"count"`
	Films []string `json:"films"`
}

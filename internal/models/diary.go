// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package models

// DiaryEntry is a single row of a diary export: one logged watch of a film.
//
// Rating is nil when the row carried no rating. ReleaseYear is 0 when the
// year column was absent or unparseable; a zero year is preserved through
// serialization rather than guessed.
type DiaryEntry struct {
	// Date is the watch date in YYYY-MM-DD form, exactly as logged.
	Date string `json:"date"`

	// Title is the film title. Never empty for a valid entry.
	Title string `json:"title"`

	// ReleaseYear is the film's release year, or 0 when unknown.
	ReleaseYear int `json:"release_year,omitempty"`

	// Rating is the logged rating in half-star steps between 0.5 and 5.0,
	// or nil for an unrated watch.
	Rating *float64 `json:"rating,omitempty"`

	// Rewatch reports whether the entry was marked as a rewatch.
	Rewatch bool `json:"rewatch"`

	// Tags is the raw tag field, passed through untouched.
	Tags string `json:"tags,omitempty"`

	// Review is optional free-form review text attached to the entry.
	Review string `json:"review,omitempty"`
}

// RatingValue returns the entry's rating and whether one was logged.
func (e *DiaryEntry) RatingValue() (float64, bool) {
	if e.Rating == nil {
		return 0, false
	}
	return *e.Rating, true
}

// Rated reports whether the entry carries a rating.
func (e *DiaryEntry) Rated() bool {
	return e.Rating != nil
}

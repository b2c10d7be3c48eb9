// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package models

// TasteProfile describes how consistent and how contrarian a viewer's
// ratings were across a year.
type TasteProfile struct {
	// StabilityScore is 0-100; higher means more consistent ratings.
	StabilityScore int `json:"stability_score"`

	// RatingVolatility is the normalized rating standard deviation,
	// clamped to [0, 1].
	RatingVolatility float64 `json:"rating_volatility"`

	// Contrarian marks a viewer whose ratings run low or swing hard.
	Contrarian bool `json:"contrarian"`

	// ContrarianScore is 0-100; higher means further below the scale
	// midpoint on average.
	ContrarianScore int `json:"contrarian_score"`

	// SampleSize is the number of rated entries the profile was built from.
	SampleSize int `json:"sample_size"`
}

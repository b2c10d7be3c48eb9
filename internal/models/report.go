// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package models

import "time"

// Persona is the AI-written viewer write-up. Fallback marks a canned
// neutral persona used when the generator was unreachable or returned
// something unusable.
type Persona struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Signals  []string `json:"signals,omitempty"`
	Fallback bool     `json:"fallback,omitempty"`
}

// YearDetection reports how the analysis year was chosen.
type YearDetection struct {
	// Year is the analysis year.
	Year int `json:"year"`

	// Detected is true when the year came from the data rather than the
	// request.
	Detected bool `json:"detected"`

	// EntryCounts maps each year seen in the diary to its entry count.
	EntryCounts map[int]int `json:"entry_counts,omitempty"`
}

// AnalysisReport is the full year-in-review result for one diary upload.
type AnalysisReport struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Year           YearDetection       `json:"year"`
	Stats          MovieStats          `json:"stats"`
	Distribution   ViewingDistribution `json:"distribution"`
	HighlyRated    []RankedFilm        `json:"highly_rated"`
	MostWatchedDay *MostWatchedDay     `json:"most_watched_day,omitempty"`
	Taste          TasteProfile        `json:"taste"`
	Archetype      Archetype           `json:"archetype"`
	Persona        *Persona            `json:"persona,omitempty"`
}

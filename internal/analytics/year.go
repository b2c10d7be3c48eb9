// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package analytics

import (
	"sort"
	"time"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

// watchYear extracts the year from an entry's YYYY-MM-DD watch date.
// Returns 0 when the date does not parse; the parser keeps such rows, so
// they are excluded here instead.
func watchYear(e *models.DiaryEntry) int {
	t, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return 0
	}
	return t.Year()
}

// DetectYear chooses the analysis year: the year with the most entries.
// The comparator is descending by count, stable on ties, so equal counts go
// to the year encountered first in the diary. When no dates parse at all the
// current system year is used and Detected is false. The per-year counts are
// kept in the result so callers can report the split.
func DetectYear(entries []models.DiaryEntry) models.YearDetection {
	counts := make(map[int]int)
	var seen []int
	for i := range entries {
		if y := watchYear(&entries[i]); y != 0 {
			if counts[y] == 0 {
				seen = append(seen, y)
			}
			counts[y]++
		}
	}

	if len(seen) == 0 {
		return models.YearDetection{
			Year:        time.Now().Year(),
			Detected:    false,
			EntryCounts: counts,
		}
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return counts[seen[i]] > counts[seen[j]]
	})

	return models.YearDetection{
		Year:        seen[0],
		Detected:    true,
		EntryCounts: counts,
	}
}

// FilterByYear returns the entries watched in the given year, preserving
// input order.
func FilterByYear(entries []models.DiaryEntry, year int) []models.DiaryEntry {
	filtered := make([]models.DiaryEntry, 0, len(entries))
	for i := range entries {
		if watchYear(&entries[i]) == year {
			filtered = append(filtered, entries[i])
		}
	}
	return filtered
}

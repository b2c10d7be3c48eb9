// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package diary

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

// canonicalHeader is the column order Serialize writes. Every column here
// has a parser alias, so serialized output always parses back.
var canonicalHeader = []string{"Date", "Name", "Year", "Rating", "Rewatch", "Tags", "Review"}

// Serialize writes entries as a diary CSV in canonical column order.
// Parsing the output yields the same entries: unrated stays unrated,
// a zero release year stays zero, and quoted content round-trips intact.
func Serialize(w io.Writer, entries []models.DiaryEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(canonicalHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range entries {
		if err := cw.Write(entryRecord(&entries[i])); err != nil {
			return fmt.Errorf("failed to write entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func entryRecord(e *models.DiaryEntry) []string {
	year := ""
	if e.ReleaseYear != 0 {
		year = strconv.Itoa(e.ReleaseYear)
	}

	rating := ""
	if e.Rating != nil {
		rating = strconv.FormatFloat(*e.Rating, 'f', -1, 64)
	}

	rewatch := ""
	if e.Rewatch {
		rewatch = "Yes"
	}

	return []string{e.Date, e.Title, year, rating, rewatch, e.Tags, e.Review}
}

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
	"strings"
	"time"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/logging"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

// dateLayout is the watch date format used by diary exports.
const dateLayout = "2006-01-02"

// columnAliases maps each logical column to the header names that carry it,
// in preference order. Matching is case-insensitive.
var columnAliases = map[string][]string{
	"date":    {"watched date", "date"},
	"title":   {"name", "title", "film"},
	"year":    {"year", "release year"},
	"rating":  {"rating"},
	"rewatch": {"rewatch"},
	"tags":    {"tags"},
	"review":  {"review"},
}

// requiredColumns must be present in the header row for the file to parse.
var requiredColumns = []string{"date", "title"}

// ParseResult is the outcome of parsing one diary file.
type ParseResult struct {
	// Entries holds the valid rows in input order.
	Entries []models.DiaryEntry

	// SkippedRows counts data rows dropped as malformed.
	SkippedRows int
}

// Parse reads a diary CSV export and returns its entries in input order.
//
// The header row is required and columns are located by name. Quoted fields
// follow RFC 4180: embedded commas and newlines are preserved and doubled
// quotes unescape to a single quote character. Rows with a missing title or
// a broken quote structure are skipped and counted; a blank or out-of-range
// rating becomes an unrated entry, a missing year becomes 0, and a date
// that will not parse is carried through as-is for downstream code to
// exclude from year counts. Dates with a time component are reduced to
// their date-only form.
//
// A header with no data rows is not an error: the result is simply empty
// and the caller decides whether that is a user-facing failure.
func Parse(r io.Reader) (*ParseResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports vary in column count across app versions
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken row; skip it and keep going.
			result.SkippedRows++
			continue
		}

		entry, ok := buildEntry(record, cols)
		if !ok {
			result.SkippedRows++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	if result.SkippedRows > 0 {
		logging.Warn().Int("skipped_rows", result.SkippedRows).Msg("Skipped malformed diary rows")
	}

	return result, nil
}

// mapColumns resolves header names to field indexes. Returns
// ErrMissingHeader when a required column has no alias in the header.
func mapColumns(header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, seen := byName[name]; !seen {
			byName[name] = i
		}
	}

	cols := make(map[string]int, len(columnAliases))
	for logical, aliases := range columnAliases {
		for _, alias := range aliases {
			if idx, ok := byName[alias]; ok {
				cols[logical] = idx
				break
			}
		}
	}

	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, required)
		}
	}

	return cols, nil
}

// buildEntry converts one CSV record into a DiaryEntry. Returns ok=false
// only when the row is unusable: an empty title. A date that fails to
// parse is kept verbatim; downstream analytics exclude it from year counts
// rather than the parser dropping the whole row.
func buildEntry(record []string, cols map[string]int) (models.DiaryEntry, bool) {
	field := func(logical string) string {
		idx, ok := cols[logical]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	title := field("title")
	if title == "" {
		return models.DiaryEntry{}, false
	}

	entry := models.DiaryEntry{
		Date:    normalizeDate(field("date")),
		Title:   title,
		Rewatch: parseRewatch(field("rewatch")),
		Tags:    field("tags"),
		Review:  field("review"),
	}

	if y := field("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil && year > 0 {
			entry.ReleaseYear = year
		}
	}

	if r := field("rating"); r != "" {
		if rating, err := strconv.ParseFloat(r, 64); err == nil && rating >= 0.5 && rating <= 5.0 {
			entry.Rating = &rating
		}
	}

	return entry, true
}

// normalizeDate reduces an ISO-like date to its date-only form. Exports may
// carry a time component after "T" or a space; that part is dropped since
// every analysis groups by calendar date. A value that does not parse as a
// date even after truncation is returned unchanged.
func normalizeDate(s string) string {
	dateOnly := s
	if i := strings.IndexAny(s, "T "); i >= 0 {
		dateOnly = s[:i]
	}
	if _, err := time.Parse(dateLayout, dateOnly); err != nil {
		return s
	}
	return dateOnly
}

// parseRewatch interprets the rewatch marker. Exports write "Yes" or leave
// the field blank; boolean spellings are accepted too.
func parseRewatch(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}

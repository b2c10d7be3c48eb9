// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package diary

import "errors"

var (
	// ErrEmptyFile is returned when the input has no content at all,
	// or a header row with no data rows.
	ErrEmptyFile = errors.New("diary file is empty")

	// ErrMissingHeader is returned when a required column is absent
	// from the header row.
	ErrMissingHeader = errors.New("required column missing from header")

	// ErrMalformedCSV is returned when the input cannot be read as CSV
	// at all, e.g. an unterminated quoted field.
	ErrMalformedCSV = errors.New("malformed CSV input")
)

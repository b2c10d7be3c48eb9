// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

// Package diary parses and serializes Letterboxd-style diary CSV exports.
//
// Parsing is tolerant at the row level and strict at the file level: a file
// without the required headers is rejected, while individual malformed rows
// are skipped and counted. Columns are located by header name, never by
// position, so exports with extra or reordered columns parse the same way.
//
// Serialize is the inverse of Parse: parsing a serialized slice yields the
// original entries.
package diary

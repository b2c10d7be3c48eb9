// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package api

// Error codes returned in the APIError.Code field. These are part of the
// API contract; clients branch on them.
const (
	// CodeEmptyFile: the upload had no content or no data rows.
	CodeEmptyFile = "EMPTY_FILE"

	// CodeParseError: the upload could not be parsed as a diary CSV, or
	// contained no valid rows.
	CodeParseError = "PARSE_ERROR"

	// CodeFileTooLarge: the upload exceeded the configured size limit.
	CodeFileTooLarge = "FILE_TOO_LARGE"

	// CodeInsufficientData: too few entries in the analysis year.
	CodeInsufficientData = "INSUFFICIENT_DATA"

	// CodeValidationError: request parameters failed validation.
	CodeValidationError = "VALIDATION_ERROR"

	// CodeInternalError: unexpected server-side failure.
	CodeInternalError = "INTERNAL_ERROR"
)

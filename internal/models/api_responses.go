// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package models

import "time"

// APIResponse is the envelope every JSON endpoint responds with.
type APIResponse struct {
	// Status is "success" or "error".
	Status string `json:"status"`

	// Data holds the endpoint-specific payload on success.
	Data interface{} `json:"data,omitempty"`

	// Metadata carries response bookkeeping.
	Metadata *ResponseMetadata `json:"metadata,omitempty"`

	// Error is set only when Status is "error".
	Error *APIError `json:"error,omitempty"`
}

// ResponseMetadata is attached to every API response.
type ResponseMetadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Version   string    `json:"version,omitempty"`
}

// APIError is the machine-readable error body.
type APIError struct {
	// Code is a stable uppercase identifier, e.g. "INSUFFICIENT_DATA".
	Code string `json:"code"`

	// Message is a human-readable explanation safe to show clients.
	Message string `json:"message"`

	// Details optionally narrows the failure, e.g. the offending row.
	Details string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}

// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

// Package persona writes the AI viewer persona for a year-in-review
// report using a chat-completions API.
//
// Generation is best-effort: any provider failure, malformed reply, or
// open circuit breaker yields a fixed neutral persona marked as a
// fallback, never an error to the caller.
package persona

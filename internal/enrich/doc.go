// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

// Package enrich attaches film metadata (posters, genres) to analysis
// reports using the TMDB API.
//
// Enrichment is strictly best-effort: lookups are rate limited, capped per
// analysis, cached, and guarded by a circuit breaker. A title that cannot
// be matched or a provider outage degrades the report to plain titles, it
// never fails the analysis.
package enrich

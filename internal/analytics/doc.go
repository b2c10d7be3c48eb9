// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

// Package analytics computes the year-in-review report from parsed diary
// entries: year detection, aggregate statistics, viewing distribution,
// taste profile, and archetype classification.
//
// Everything here is pure computation over in-memory entries. All tuning
// thresholds come in through config.AnalyticsConfig; given the same
// entries and config, the output is deterministic. Ordering ties are
// always broken by input order via stable sorts.
package analytics

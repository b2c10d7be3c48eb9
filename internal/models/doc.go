// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

// Package models provides the data structures shared across the application:
// diary entries, aggregate statistics, taste profiles, archetypes, and the
// API response envelope.
//
// All types are plain data with no embedded behavior; every result structure
// serializes to JSON as-is.
package models

// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

// Package config loads and validates the application configuration.
//
// Configuration is layered with koanf: struct defaults first, then an
// optional YAML file, then environment variables. Every analysis threshold
// is configurable; the defaults match the documented product behavior.
package config

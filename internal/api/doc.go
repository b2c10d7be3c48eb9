// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

// Package api provides the HTTP surface: diary upload and analysis,
// health probes, and Prometheus metrics, routed with chi.
//
// Every JSON endpoint responds with the models.APIResponse envelope and a
// stable machine-readable error code on failure.
package api

// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package api

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/analytics"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/config"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/diary"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/enrich"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/logging"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/metrics"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/persona"
)

// Handler holds dependencies for API handlers.
type Handler struct {
	config     *config.Config
	analyzer   *analytics.Analyzer
	enricher   *enrich.Service
	personaGen *persona.Generator
	version    string
	startTime  time.Time
}

// NewHandler creates a new API handler. The enricher and persona generator
// may be nil when the corresponding integration is disabled.
func NewHandler(cfg *config.Config, analyzer *analytics.Analyzer, enricher *enrich.Service, personaGen *persona.Generator, version string) *Handler {
	return &Handler{
		config:     cfg,
		analyzer:   analyzer,
		enricher:   enricher,
		personaGen: personaGen,
		version:    version,
		startTime:  time.Now(),
	}
}

// analysisParams carries the validated query parameters for an analysis request.
type analysisParams struct {
	Year int `validate:"omitempty,min=1890,max=2100"`
}

// Analysis handles diary upload and report generation. The diary CSV arrives
// either as a multipart form field named "file" or as the raw request body.
// Optional query parameters:
//   - year: analyze a specific year instead of the detected one
//   - enrich: attach poster and genre metadata to top films
//   - persona: generate an AI persona for the report
func (h *Handler) Analysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	params := analysisParams{Year: getIntParam(r, "year", 0)}
	if apiErr := validateRequest(params); apiErr != nil {
		respondJSON(w, r, http.StatusBadRequest, &models.APIResponse{
			Status: "error",
			Error:  apiErr,
		})
		return
	}

	body, err := h.readDiaryBody(w, r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, r, http.StatusRequestEntityTooLarge, CodeFileTooLarge,
				"Uploaded file exceeds the size limit", err)
			return
		}
		respondError(w, r, http.StatusBadRequest, CodeParseError,
			"Could not read uploaded file", err)
		return
	}

	parseStart := time.Now()
	result, err := diary.Parse(bytes.NewReader(body))
	if err != nil {
		h.respondParseError(w, r, err)
		return
	}
	metrics.RecordDiaryParse(time.Since(parseStart), len(result.Entries), result.SkippedRows)

	// The parser treats a header-only file as a valid empty diary; for the
	// API that is a user-facing failure.
	if len(result.Entries) == 0 && result.SkippedRows == 0 {
		metrics.DiaryParseErrors.WithLabelValues("empty_file").Inc()
		respondError(w, r, http.StatusBadRequest, CodeEmptyFile,
			"The uploaded file contains no diary entries", nil)
		return
	}

	analysisStart := time.Now()
	report, err := h.analyzer.Analyze(result.Entries, params.Year)
	if err != nil {
		h.respondAnalysisError(w, r, err)
		return
	}
	metrics.RecordAnalysis("success", time.Since(analysisStart))
	metrics.AnalysisArchetypes.WithLabelValues(string(report.Archetype.ID)).Inc()

	if h.enricher != nil && getBoolParam(r, "enrich") {
		h.enricher.EnrichReport(r.Context(), report)
	}
	if h.personaGen != nil && getBoolParam(r, "persona") {
		report.Persona = h.personaGen.Generate(r.Context(), report, result.Entries)
	}

	logging.Info().
		Str("report_id", report.ID).
		Int("year", report.Year.Year).
		Int("entries", report.Stats.TotalFilms).
		Int("skipped_rows", result.SkippedRows).
		Str("archetype", string(report.Archetype.ID)).
		Msg("Analysis complete")

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   report,
		Metadata: &models.ResponseMetadata{
			Version: h.version,
		},
	})
}

// readDiaryBody extracts the CSV payload, honoring the upload size limit.
// Multipart uploads use the "file" form field; anything else is treated as
// a raw CSV body.
func (h *Handler) readDiaryBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Upload.MaxBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return io.ReadAll(r.Body)
	}

	if err := r.ParseMultipartForm(h.config.Upload.MaxBytes); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func (h *Handler) respondParseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, diary.ErrEmptyFile):
		metrics.DiaryParseErrors.WithLabelValues("empty_file").Inc()
		respondError(w, r, http.StatusBadRequest, CodeEmptyFile,
			"The uploaded file contains no diary entries", err)
	case errors.Is(err, diary.ErrMissingHeader):
		metrics.DiaryParseErrors.WithLabelValues("missing_header").Inc()
		respondError(w, r, http.StatusBadRequest, CodeParseError,
			"The CSV header is missing a required column", err)
	default:
		metrics.DiaryParseErrors.WithLabelValues("malformed").Inc()
		respondError(w, r, http.StatusBadRequest, CodeParseError,
			"The uploaded file is not a valid CSV diary export", err)
	}
}

func (h *Handler) respondAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, analytics.ErrInsufficientData):
		metrics.RecordAnalysis("insufficient_data", 0)
		respondError(w, r, http.StatusUnprocessableEntity, CodeInsufficientData,
			"Not enough diary entries in the selected year to build a report", err)
	case errors.Is(err, analytics.ErrNoEntries):
		metrics.RecordAnalysis("error", 0)
		respondError(w, r, http.StatusBadRequest, CodeParseError,
			"No valid diary rows were found in the upload", err)
	default:
		metrics.RecordAnalysis("error", 0)
		respondError(w, r, http.StatusInternalServerError, CodeInternalError,
			"Analysis failed", err)
	}
}

// Health handles health check requests. The service has no hard external
// dependencies, so health reports the state of the optional integrations.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"status":          "healthy",
			"version":         h.version,
			"enrich_enabled":  h.enricher != nil,
			"persona_enabled": h.personaGen != nil,
			"uptime":          time.Since(h.startTime).Seconds(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style). Analysis
// is purely in-process, so readiness follows liveness.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "ready",
		Data: map[string]interface{}{
			"ready_to_serve": true,
			"uptime":         time.Since(h.startTime).Seconds(),
		},
	})
}

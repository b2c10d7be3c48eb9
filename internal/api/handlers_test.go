// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/analytics"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/config"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/enrich"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/persona"
)

func testAPIConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:              "127.0.0.1",
			Port:              8080,
			Timeout:           30 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
		Upload: config.UploadConfig{MaxBytes: 5 << 20},
		Analytics: config.AnalyticsConfig{
			MinEntries:                5,
			HighRatingThreshold:       4.5,
			TopFilmsCap:               6,
			HoursPerFilm:              2,
			MinRatedForTaste:          5,
			VolatilityDivisor:         2.5,
			ContrarianMeanBelow:       3.5,
			ContrarianVolatilityAbove: 0.6,
			MarathonerMinFilms:        100,
			RewatchRatioThreshold:     0.3,
			ChaosVolatilityAbove:      0.5,
			PrestigeMinAvgRating:      4.0,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, enricher *enrich.Service, gen *persona.Generator) http.Handler {
	t.Helper()
	handler := NewHandler(cfg, analytics.New(cfg.Analytics), enricher, gen, "test")
	return NewRouter(&cfg.Server, handler).Setup()
}

const sampleDiary = `Date,Name,Year,Rating,Rewatch,Tags,Review
2024-01-05,Heat,1995,5,No,,
2024-02-10,Past Lives,2023,4.5,No,,
2024-02-10,Aftersun,2022,4.5,No,,
2024-03-15,The Room,2003,1,No,,
2024-04-20,Paddington 2,2017,4,Yes,,
2024-05-25,Whiplash,2014,4.5,No,,
`

type analysisResponse struct {
	Status   string                   `json:"status"`
	Data     *models.AnalysisReport   `json:"data"`
	Metadata *models.ResponseMetadata `json:"metadata"`
	Error    *models.APIError         `json:"error"`
}

func postDiary(t *testing.T, srv http.Handler, path, body string) (*httptest.ResponseRecorder, *analysisResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var resp analysisResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v (body %q)", err, w.Body.String())
	}
	return w, &resp
}

func TestAnalysis_Success(t *testing.T) {
	srv := newTestServer(t, testAPIConfig(), nil, nil)

	w, resp := postDiary(t, srv, "/api/v1/analysis", sampleDiary)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", w.Code, w.Body.String())
	}
	if resp.Status != "success" {
		t.Errorf("Expected status success, got %q", resp.Status)
	}
	if resp.Data == nil {
		t.Fatal("Expected report data in response")
	}
	if resp.Data.Stats.TotalFilms != 6 {
		t.Errorf("Expected 6 films, got %d", resp.Data.Stats.TotalFilms)
	}
	if resp.Data.Year.Year != 2024 || !resp.Data.Year.Detected {
		t.Errorf("Expected detected year 2024, got %+v", resp.Data.Year)
	}
	if resp.Metadata == nil || resp.Metadata.RequestID == "" {
		t.Error("Expected request ID in response metadata")
	}
	if resp.Metadata.Version != "test" {
		t.Errorf("Expected version test, got %q", resp.Metadata.Version)
	}

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID response header")
	}
	if w.Header().Get("ETag") == "" {
		t.Error("Expected ETag response header")
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("Expected nosniff security header")
	}
}

func TestAnalysis_MultipartUpload(t *testing.T) {
	srv := newTestServer(t, testAPIConfig(), nil, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "diary.csv")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write([]byte(sampleDiary)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", w.Code, w.Body.String())
	}

	var resp analysisResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Data == nil || resp.Data.Stats.TotalFilms != 6 {
		t.Errorf("Expected 6 films from multipart upload, got %+v", resp.Data)
	}
}

func TestAnalysis_YearOverride(t *testing.T) {
	srv := newTestServer(t, testAPIConfig(), nil, nil)

	diary := sampleDiary +
		"2023-06-01,Oppenheimer,2023,4,No,,\n" +
		"2023-06-02,Barbie,2023,3.5,No,,\n" +
		"2023-06-03,Tar,2022,4,No,,\n" +
		"2023-06-04,Nope,2022,4,No,,\n" +
		"2023-06-05,Men,2022,2.5,No,,\n"

	w, resp := postDiary(t, srv, "/api/v1/analysis?year=2023", diary)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", w.Code, w.Body.String())
	}
	if resp.Data.Year.Year != 2023 {
		t.Errorf("Expected year 2023, got %d", resp.Data.Year.Year)
	}
	if resp.Data.Year.Detected {
		t.Error("Requested year should not be marked as detected")
	}
	if resp.Data.Stats.TotalFilms != 5 {
		t.Errorf("Expected 5 films in 2023, got %d", resp.Data.Stats.TotalFilms)
	}
}

func TestAnalysis_Errors(t *testing.T) {
	srv := newTestServer(t, testAPIConfig(), nil, nil)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "empty body",
			path:       "/api/v1/analysis",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeEmptyFile,
		},
		{
			name:       "header only",
			path:       "/api/v1/analysis",
			body:       "Date,Name,Year,Rating\n",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeEmptyFile,
		},
		{
			name:       "missing date column",
			path:       "/api/v1/analysis",
			body:       "Name,Rating\nHeat,5\n",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeParseError,
		},
		{
			name:       "insufficient entries",
			path:       "/api/v1/analysis",
			body:       "Date,Name\n2024-01-01,Heat\n2024-01-02,Ronin\n",
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   CodeInsufficientData,
		},
		{
			name:       "year below range",
			path:       "/api/v1/analysis?year=1500",
			body:       sampleDiary,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidationError,
		},
		{
			name:       "year not a number",
			path:       "/api/v1/analysis?year=abc",
			body:       sampleDiary,
			wantStatus: http.StatusOK,
			wantCode:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := postDiary(t, srv, tt.path, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d (body %s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantCode == "" {
				return
			}
			if resp.Error == nil {
				t.Fatal("Expected error in response body")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("Expected error code %s, got %s", tt.wantCode, resp.Error.Code)
			}
		})
	}
}

func TestAnalysis_FileTooLarge(t *testing.T) {
	cfg := testAPIConfig()
	cfg.Upload.MaxBytes = 64
	srv := newTestServer(t, cfg, nil, nil)

	w, resp := postDiary(t, srv, "/api/v1/analysis", sampleDiary)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("Expected status 413, got %d", w.Code)
	}
	if resp.Error == nil || resp.Error.Code != CodeFileTooLarge {
		t.Errorf("Expected error code %s, got %+v", CodeFileTooLarge, resp.Error)
	}
}

type stubLookuper struct{}

func (stubLookuper) Lookup(_ context.Context, title string, _ int) (*enrich.FilmMetadata, error) {
	return &enrich.FilmMetadata{
		TMDBID:    1,
		PosterURL: "https://image.tmdb.org/t/p/w342/" + strings.ToLower(title) + ".jpg",
		Genres:    []string{"Drama"},
	}, nil
}

type stubCompleter struct{}

func (stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return `{"title": "The Night Owl", "summary": "You watch late and rate hard.", "signals": ["late sessions"]}`, nil
}

func TestAnalysis_EnrichAndPersona(t *testing.T) {
	cfg := testAPIConfig()
	enricher := enrich.NewServiceWithClient(config.EnrichConfig{
		Enabled:   true,
		BatchCap:  20,
		RateLimit: 1000,
		CacheTTL:  time.Minute,
	}, stubLookuper{})
	defer enricher.Close()

	gen := persona.NewGeneratorWithClient(config.PersonaConfig{
		Enabled: true,
		Model:   "test-model",
	}, stubCompleter{})

	srv := newTestServer(t, cfg, enricher, gen)

	w, resp := postDiary(t, srv, "/api/v1/analysis?enrich=true&persona=true", sampleDiary)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body %s)", w.Code, w.Body.String())
	}
	if len(resp.Data.HighlyRated) == 0 {
		t.Fatal("Expected highly rated films")
	}
	for _, film := range resp.Data.HighlyRated {
		if film.PosterURL == "" {
			t.Errorf("Expected poster URL for %s", film.Title)
		}
	}
	if resp.Data.Persona == nil {
		t.Fatal("Expected persona in report")
	}
	if resp.Data.Persona.Title != "The Night Owl" {
		t.Errorf("Unexpected persona title %q", resp.Data.Persona.Title)
	}
	if resp.Data.Persona.Fallback {
		t.Error("Persona should not be the fallback")
	}
}

func TestAnalysis_IntegrationsDisabledByDefault(t *testing.T) {
	srv := newTestServer(t, testAPIConfig(), nil, nil)

	w, resp := postDiary(t, srv, "/api/v1/analysis?enrich=true&persona=true", sampleDiary)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if resp.Data.Persona != nil {
		t.Error("Persona should be absent when the generator is not configured")
	}
	for _, film := range resp.Data.HighlyRated {
		if film.PosterURL != "" {
			t.Errorf("Film %s should not be enriched without a service", film.Title)
		}
	}
}

func TestAnalysis_MethodNotAllowed(t *testing.T) {
	handler := NewHandler(testAPIConfig(), analytics.New(testAPIConfig().Analytics), nil, nil, "test")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis", nil)
	w := httptest.NewRecorder()
	handler.Analysis(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, testAPIConfig(), nil, nil)

	paths := []string{"/api/v1/health", "/api/v1/health/live", "/api/v1/health/ready"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200 for %s, got %d", path, w.Code)
			}
			if w.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Errorf("Expected security headers on %s", path)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, testAPIConfig(), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	// Earlier tests in this file drive requests through the instrumented
	// router, so the request counter is populated by the time this runs.
	if !strings.Contains(w.Body.String(), "api_requests_total") {
		t.Error("Expected application metrics in exposition output")
	}
}

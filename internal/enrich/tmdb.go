// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// posterBaseURL prefixes TMDB poster paths. w342 balances quality against
// payload size for card-style rendering.
const posterBaseURL = "https://image.tmdb.org/t/p/w342"

// FilmMetadata is the enrichment payload for one matched film.
type FilmMetadata struct {
	TMDBID    int      `json:"tmdb_id"`
	PosterURL string   `json:"poster_url,omitempty"`
	Genres    []string `json:"genres,omitempty"`
}

// TMDBClient talks to the TMDB v3 API.
type TMDBClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type searchMovieResult struct {
	Page         int     `json:"page"`
	Results      []movie `json:"results"`
	TotalResults int     `json:"total_results"`
}

type movie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
}

type movieDetails struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	PosterPath string  `json:"poster_path"`
	Genres     []genre `json:"genres"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewTMDBClient creates a TMDB client. timeout bounds each HTTP call.
func NewTMDBClient(baseURL, apiKey string, timeout time.Duration) *TMDBClient {
	return &TMDBClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup finds metadata for a film by title and optional release year.
// Returns (nil, nil) when no match exists; that is a miss, not an error.
func (c *TMDBClient) Lookup(ctx context.Context, title string, releaseYear int) (*FilmMetadata, error) {
	match, err := c.searchMovie(ctx, title, releaseYear)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, nil
	}

	details, err := c.getMovie(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	meta := &FilmMetadata{TMDBID: details.ID}
	if details.PosterPath != "" {
		meta.PosterURL = posterBaseURL + details.PosterPath
	}
	for _, g := range details.Genres {
		meta.Genres = append(meta.Genres, g.Name)
	}

	return meta, nil
}

// searchMovie returns the top search result, or nil when nothing matched.
func (c *TMDBClient) searchMovie(ctx context.Context, title string, releaseYear int) (*movie, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", title)
	params.Set("page", "1")
	if releaseYear > 0 {
		params.Set("primary_release_year", strconv.Itoa(releaseYear))
	}

	fullURL := fmt.Sprintf("%s/search/movie?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB API returned status %d", resp.StatusCode)
	}

	var result searchMovieResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(result.Results) == 0 {
		return nil, nil
	}
	return &result.Results[0], nil
}

func (c *TMDBClient) getMovie(ctx context.Context, id int) (*movieDetails, error) {
	fullURL := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, id, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB API returned status %d", resp.StatusCode)
	}

	var details movieDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &details, nil
}

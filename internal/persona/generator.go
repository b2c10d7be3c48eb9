// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package persona

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/config"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/logging"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/metrics"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/models"
)

// Completer is the chat call the generator is built on. *ChatClient
// satisfies it; tests substitute their own.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Generator produces viewer personas from analysis reports.
type Generator struct {
	client Completer
	cb     *gobreaker.CircuitBreaker[string]
	cfg    config.PersonaConfig
}

const systemPrompt = "You are a film critic writing a short, warm, slightly witty " +
	"viewer profile from one year of movie diary statistics. Respond with a JSON " +
	"object only, no prose around it, with keys: \"title\" (a punchy profile name, " +
	"max 6 words), \"summary\" (2-3 sentences addressed to the viewer as \"you\"), " +
	"and \"signals\" (an array of up to 4 short strings naming the habits you read " +
	"from the data)."

// fallbackPersona is returned whenever generation cannot complete.
var fallbackPersona = models.Persona{
	Title:    "The Dedicated Viewer",
	Summary:  "You kept a diary all year and the numbers tell the story on their own. Whatever you watched, you showed up for it.",
	Fallback: true,
}

// NewGenerator wires a persona generator from configuration.
func NewGenerator(cfg config.PersonaConfig) *Generator {
	client := NewChatClient(cfg.APIURL, cfg.APIKey, cfg.Model, cfg.Timeout)
	return NewGeneratorWithClient(cfg, client)
}

// NewGeneratorWithClient is NewGenerator with an injected chat client.
func NewGeneratorWithClient(cfg config.PersonaConfig, client Completer) *Generator {
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "persona-api",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state transition")
		},
	})

	return &Generator{
		client: client,
		cb:     cb,
		cfg:    cfg,
	}
}

// Generate writes a persona for the report. Reviews from the analysis year
// that meet the configured minimum length are offered to the model as
// extra signals. Never fails: any problem returns the fallback persona.
func (g *Generator) Generate(ctx context.Context, report *models.AnalysisReport, entries []models.DiaryEntry) *models.Persona {
	start := time.Now()

	reply, err := g.cb.Execute(func() (string, error) {
		return g.client.Complete(ctx, systemPrompt, g.buildPrompt(report, entries))
	})
	if err != nil {
		logging.Warn().Err(err).Msg("Persona generation failed, using fallback")
		metrics.RecordPersonaGeneration("fallback", time.Since(start))
		p := fallbackPersona
		return &p
	}

	persona, err := parsePersona(reply)
	if err != nil {
		logging.Warn().Err(err).Msg("Persona reply unparseable, using fallback")
		metrics.RecordPersonaGeneration("fallback", time.Since(start))
		p := fallbackPersona
		return &p
	}

	metrics.RecordPersonaGeneration("success", time.Since(start))
	return persona
}

// buildPrompt renders the report facts and qualifying reviews for the model.
func (g *Generator) buildPrompt(report *models.AnalysisReport, entries []models.DiaryEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Year: %d\n", report.Year.Year)
	fmt.Fprintf(&b, "Films watched: %d (%d unique, %d rewatches, %d%% rewatch share)\n",
		report.Stats.TotalFilms, report.Stats.UniqueFilms, report.Stats.Rewatches, report.Stats.RewatchPercent)
	fmt.Fprintf(&b, "Average rating: %.2f over %d rated films\n",
		report.Stats.AverageRating, report.Stats.RatedCount)
	fmt.Fprintf(&b, "Estimated hours watched: %d\n", report.Stats.EstimatedHours)
	if report.Distribution.BusiestMonth != "" {
		fmt.Fprintf(&b, "Busiest month: %s; busiest day: %s\n",
			report.Distribution.BusiestMonth, report.Distribution.BusiestDay)
	}
	fmt.Fprintf(&b, "Rating volatility: %.2f (stability score %d)\n",
		report.Taste.RatingVolatility, report.Taste.StabilityScore)
	if report.Taste.Contrarian {
		fmt.Fprintf(&b, "Contrarian streak: score %d\n", report.Taste.ContrarianScore)
	}
	fmt.Fprintf(&b, "Assigned archetype: %s\n", report.Archetype.Name)

	if len(report.HighlyRated) > 0 {
		b.WriteString("Top films: ")
		for i, film := range report.HighlyRated {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s (%.1f)", film.Title, film.Rating)
		}
		b.WriteString("\n")
	}

	reviews := 0
	for i := range entries {
		if len(entries[i].Review) < g.cfg.MinReviewLength {
			continue
		}
		if reviews == 0 {
			b.WriteString("Reviews written by the viewer:\n")
		}
		fmt.Fprintf(&b, "- %s: %s\n", entries[i].Title, entries[i].Review)
		reviews++
		if reviews == 5 {
			break
		}
	}

	return b.String()
}

type personaReply struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Signals []string `json:"signals"`
}

// parsePersona extracts the JSON object from the model reply. Models often
// wrap JSON in code fences, so the reply is trimmed to its outermost braces
// before decoding.
func parsePersona(reply string) (*models.Persona, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in persona reply")
	}

	var parsed personaReply
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal persona reply: %w", err)
	}

	if parsed.Title == "" || parsed.Summary == "" {
		return nil, fmt.Errorf("persona reply missing title or summary")
	}

	return &models.Persona{
		Title:   parsed.Title,
		Summary: parsed.Summary,
		Signals: parsed.Signals,
	}, nil
}

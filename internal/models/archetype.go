// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

package models

// ArchetypeID identifies one of the fixed viewer archetypes.
type ArchetypeID string

const (
	ArchetypeMarathoner        ArchetypeID = "marathoner"
	ArchetypeComfortRewinder   ArchetypeID = "comfort-rewinder"
	ArchetypeChaosCurator      ArchetypeID = "chaos-curator"
	ArchetypePrestigePurist    ArchetypeID = "prestige-purist"
	ArchetypeEmotionalExplorer ArchetypeID = "emotional-explorer"
)

// Archetype is the viewer personality assigned from a year's statistics.
// Name, Emoji, Tagline, and Description are fixed per ID; Evidence carries
// the concrete numbers that triggered the match.
type Archetype struct {
	ID          ArchetypeID `json:"id"`
	Name        string      `json:"name"`
	Emoji       string      `json:"emoji"`
	Tagline     string      `json:"tagline"`
	Description string      `json:"description"`
	Evidence    []string    `json:"evidence,omitempty"`
}

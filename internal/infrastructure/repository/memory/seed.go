package memory

import (
	"time"

	"github.com/pitchside/matchboard/internal/domain/match"
	"github.com/pitchside/matchboard/internal/domain/team"
)

const (
	TeamIDPitchsideUnited = "psu"
	TeamIDRivertonRovers  = "rvr"
	TeamIDHarbourCity     = "hbc"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDPitchsideUnited, Name: "Pitchside United", Short: "PSU", SheetRange: "PSU!A1:Z200"},
		{ID: TeamIDRivertonRovers, Name: "Riverton Rovers", Short: "RVR", SheetRange: "RVR!A1:Z200"},
		{ID: TeamIDHarbourCity, Name: "Harbour City", Short: "HBC"},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:          "psu-2024-11",
			TeamID:      TeamIDPitchsideUnited,
			ExternalRef: "PSU-1031",
			Opponent:    "Harbour City",
			HomeAway:    "away",
			PlayedAt:    time.Date(2024, time.November, 9, 15, 0, 0, 0, time.UTC),
			Season:      2024,
			Stats: map[string]any{
				"goals_for":       2,
				"goals_against":   2,
				"possession_pct":  51.4,
				"shots_on_target": 5,
				"pass_accuracy":   79.8,
			},
		},
		{
			ID:          "psu-2024-12",
			TeamID:      TeamIDPitchsideUnited,
			ExternalRef: "PSU-1036",
			Opponent:    "Riverton Rovers",
			HomeAway:    "home",
			PlayedAt:    time.Date(2024, time.December, 7, 17, 30, 0, 0, time.UTC),
			Season:      2024,
			Stats: map[string]any{
				"goals_for":       1,
				"goals_against":   0,
				"possession_pct":  62.3,
				"shots_on_target": 6,
				"pass_accuracy":   86.5,
			},
		},
		{
			ID:          "psu-2025-01",
			TeamID:      TeamIDPitchsideUnited,
			ExternalRef: "PSU-1042",
			Opponent:    "Riverton Rovers",
			HomeAway:    "home",
			PlayedAt:    time.Date(2025, time.January, 15, 19, 30, 0, 0, time.UTC),
			Season:      2025,
			Stats: map[string]any{
				"goals_for":       3,
				"goals_against":   1,
				"possession_pct":  58.2,
				"shots_on_target": 7,
				"pass_accuracy":   84.1,
				"corners":         8,
			},
		},
		{
			ID:          "psu-2025-02",
			TeamID:      TeamIDPitchsideUnited,
			ExternalRef: "PSU-1047",
			Opponent:    "Harbour City",
			HomeAway:    "away",
			PlayedAt:    time.Date(2025, time.February, 1, 15, 0, 0, 0, time.UTC),
			Season:      2025,
			Stats: map[string]any{
				"goals_for":       0,
				"goals_against":   1,
				"possession_pct":  47.9,
				"shots_on_target": 2,
				"pass_accuracy":   81.3,
			},
		},
		{
			ID:          "rvr-2024-11",
			TeamID:      TeamIDRivertonRovers,
			ExternalRef: "RVR-2203",
			Opponent:    "Harbour City",
			HomeAway:    "home",
			PlayedAt:    time.Date(2024, time.November, 23, 15, 0, 0, 0, time.UTC),
			Season:      2024,
			Stats: map[string]any{
				"goals_for":       4,
				"goals_against":   2,
				"possession_pct":  55.0,
				"shots_on_target": 9,
			},
		},
		{
			ID:          "rvr-2025-01",
			TeamID:      TeamIDRivertonRovers,
			ExternalRef: "RVR-2210",
			Opponent:    "Pitchside United",
			HomeAway:    "away",
			PlayedAt:    time.Date(2025, time.January, 15, 19, 30, 0, 0, time.UTC),
			Season:      2025,
			Stats: map[string]any{
				"goals_for":       1,
				"goals_against":   3,
				"possession_pct":  41.8,
				"shots_on_target": 3,
			},
		},
		{
			ID:       "hbc-2025-01",
			TeamID:   TeamIDHarbourCity,
			Opponent: "Pitchside United",
			HomeAway: "home",
			PlayedAt: time.Date(2025, time.February, 1, 15, 0, 0, 0, time.UTC),
			Season:   2025,
			Stats: map[string]any{
				"goals_for":     1,
				"goals_against": 0,
			},
		},
	}
}

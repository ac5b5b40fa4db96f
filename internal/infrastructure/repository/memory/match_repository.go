package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/matchboard/internal/domain/match"
)

type MatchRepository struct {
	mu            sync.RWMutex
	matchesByTeam map[string][]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	matchesByTeam := make(map[string][]match.Match)
	for _, item := range matches {
		matchesByTeam[item.TeamID] = append(matchesByTeam[item.TeamID], item)
	}

	return &MatchRepository{matchesByTeam: matchesByTeam}
}

func (r *MatchRepository) ListByTeam(_ context.Context, teamID string, f match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := r.matchesByTeam[teamID]
	out := make([]match.Match, 0, len(matches))
	for _, item := range matches {
		// Date bounds are inclusive. Matches without a played-at date drop
		// out once either bound is set, same as NULL comparisons in SQL.
		if !f.From.IsZero() && (item.PlayedAt.IsZero() || item.PlayedAt.Before(f.From)) {
			continue
		}
		if !f.To.IsZero() && (item.PlayedAt.IsZero() || item.PlayedAt.After(f.To)) {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})

	return out, nil
}

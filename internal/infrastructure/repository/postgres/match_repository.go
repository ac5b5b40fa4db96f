package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/pitchside/matchboard/internal/domain/match"
	qb "github.com/pitchside/matchboard/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID string, f match.Filter) ([]match.Match, error) {
	conditions := []qb.Condition{
		qb.Eq("team_public_id", teamID),
		qb.IsNull("deleted_at"),
	}
	if !f.From.IsZero() {
		conditions = append(conditions, qb.Gte("played_at", f.From))
	}
	if !f.To.IsZero() {
		conditions = append(conditions, qb.Lte("played_at", f.To))
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("played_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by team query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			ID:          row.PublicID,
			TeamID:      row.TeamID,
			ExternalRef: nullStringToString(row.ExternalRef),
			Opponent:    row.Opponent,
			HomeAway:    nullStringToString(row.HomeAway),
			PlayedAt:    timePtrToTime(row.PlayedAt),
			Season:      nullInt64ToInt(row.Season),
			Stats:       decodeJSONMap(row.Stats),
		})
	}

	return out, nil
}

func encodeJSONMap(value map[string]any) string {
	if len(value) == 0 {
		return "{}"
	}
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

// Stats arrives as raw JSONB text. A row with a malformed payload keeps an
// empty map instead of failing the whole listing.
func decodeJSONMap(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}
	}
	out := make(map[string]any)
	if err := sonic.Unmarshal([]byte(raw), &out); err != nil {
		return map[string]any{}
	}
	return out
}

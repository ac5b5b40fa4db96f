package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/matchboard/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo roster into an empty database so a fresh
// install has something to chart. It never touches a database that already
// holds teams.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, name, short, sheet_range)
VALUES (:public_id, :name, :short, :sheet_range)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":   t.ID,
			"name":        t.Name,
			"short":       t.Short,
			"sheet_range": nullableString(t.SheetRange),
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (public_id, team_public_id, external_ref, opponent, home_away, played_at, season, stats)
VALUES (:public_id, :team_public_id, :external_ref, :opponent, :home_away, :played_at, :season, :stats)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":      m.ID,
			"team_public_id": m.TeamID,
			"external_ref":   nullableString(m.ExternalRef),
			"opponent":       m.Opponent,
			"home_away":      nullableString(m.HomeAway),
			"played_at":      nullableTime(m.PlayedAt),
			"season":         nullableInt(m.Season),
			"stats":          encodeJSONMap(m.Stats),
		})
		if err != nil {
			return fmt.Errorf("bind seed match %s query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

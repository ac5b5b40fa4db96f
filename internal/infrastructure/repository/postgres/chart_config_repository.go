package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pitchside/matchboard/internal/domain/chart"
	qb "github.com/pitchside/matchboard/internal/platform/querybuilder"
)

type ChartConfigRepository struct {
	db *sqlx.DB
}

func NewChartConfigRepository(db *sqlx.DB) *ChartConfigRepository {
	return &ChartConfigRepository{db: db}
}

func (r *ChartConfigRepository) Create(ctx context.Context, saved chart.SavedChart) error {
	encoded, err := encodeChartConfig(saved.Config)
	if err != nil {
		return fmt.Errorf("encode chart config: %w", err)
	}

	insertModel := chartConfigInsertModel{
		PublicID:  saved.ID,
		TeamID:    saved.TeamID,
		Name:      saved.Name,
		Config:    encoded,
		CreatedAt: saved.CreatedAt,
		UpdatedAt: saved.UpdatedAt,
	}
	query, args, err := qb.InsertModel("chart_configs", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create chart config query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create chart config: %w", err)
	}

	return nil
}

func (r *ChartConfigRepository) GetByID(ctx context.Context, chartID string) (chart.SavedChart, bool, error) {
	query, args, err := qb.Select("*").From("chart_configs").
		Where(
			qb.Eq("public_id", chartID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return chart.SavedChart{}, false, fmt.Errorf("build get chart config by id query: %w", err)
	}

	var row chartConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
			return r.getByIDSingleParam(ctx, chartID)
		}
		if isNotFound(err) {
			return chart.SavedChart{}, false, nil
		}
		return chart.SavedChart{}, false, fmt.Errorf("get chart config by id: %w", err)
	}

	saved, err := chartConfigFromRow(row)
	if err != nil {
		return chart.SavedChart{}, false, err
	}
	return saved, true, nil
}

func (r *ChartConfigRepository) getByIDSingleParam(ctx context.Context, chartID string) (chart.SavedChart, bool, error) {
	query, _, err := qb.Select("*").From("chart_configs").
		Where(
			qb.Expr("public_id = ($1::text[])[1]"),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return chart.SavedChart{}, false, fmt.Errorf("build get chart config single param fallback query: %w", err)
	}

	var row chartConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, pq.Array([]string{chartID})); err != nil {
		if isUnnamedPreparedStatementMissing(err) {
			return r.getByIDLiteral(ctx, chartID)
		}
		if isNotFound(err) {
			return chart.SavedChart{}, false, nil
		}
		return chart.SavedChart{}, false, fmt.Errorf("get chart config fallback: %w", err)
	}

	saved, err := chartConfigFromRow(row)
	if err != nil {
		return chart.SavedChart{}, false, err
	}
	return saved, true, nil
}

func (r *ChartConfigRepository) getByIDLiteral(ctx context.Context, chartID string) (chart.SavedChart, bool, error) {
	query, args, err := qb.Select("*").From("chart_configs").
		Where(
			qb.EqLiteral("public_id", chartID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return chart.SavedChart{}, false, fmt.Errorf("build get chart config literal fallback query: %w", err)
	}

	var row chartConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return chart.SavedChart{}, false, nil
		}
		return chart.SavedChart{}, false, fmt.Errorf("get chart config literal fallback: %w", err)
	}

	saved, err := chartConfigFromRow(row)
	if err != nil {
		return chart.SavedChart{}, false, err
	}
	return saved, true, nil
}

func (r *ChartConfigRepository) ListByTeam(ctx context.Context, teamID string) ([]chart.SavedChart, error) {
	query, args, err := qb.Select("*").From("chart_configs").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list chart configs by team query: %w", err)
	}

	var rows []chartConfigTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list chart configs by team: %w", err)
	}

	out := make([]chart.SavedChart, 0, len(rows))
	for _, row := range rows {
		saved, err := chartConfigFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, saved)
	}

	return out, nil
}

func (r *ChartConfigRepository) Update(ctx context.Context, saved chart.SavedChart) error {
	encoded, err := encodeChartConfig(saved.Config)
	if err != nil {
		return fmt.Errorf("encode chart config: %w", err)
	}

	query, args, err := qb.Update("chart_configs").
		Set("name", saved.Name).
		Set("config", encoded).
		Set("updated_at", saved.UpdatedAt).
		Where(
			qb.Eq("public_id", saved.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update chart config query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update chart config: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update chart config: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update chart config: not found")
	}

	return nil
}

func (r *ChartConfigRepository) SoftDelete(ctx context.Context, chartID string) error {
	query, args, err := qb.Update("chart_configs").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", chartID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete chart config query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete chart config: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected soft delete chart config: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("soft delete chart config: not found")
	}

	return nil
}

func chartConfigFromRow(row chartConfigTableModel) (chart.SavedChart, error) {
	cfg, err := decodeChartConfig(row.Config)
	if err != nil {
		return chart.SavedChart{}, fmt.Errorf("decode chart config %s: %w", row.PublicID, err)
	}

	return chart.SavedChart{
		ID:        row.PublicID,
		TeamID:    row.TeamID,
		Name:      row.Name,
		Config:    cfg,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func encodeChartConfig(cfg chart.Config) (string, error) {
	encoded, err := sonic.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// User authored configs must not degrade silently, so decode failures
// propagate instead of falling back to a zero config.
func decodeChartConfig(raw string) (chart.Config, error) {
	var cfg chart.Config
	if err := sonic.Unmarshal([]byte(raw), &cfg); err != nil {
		return chart.Config{}, err
	}
	return cfg, nil
}

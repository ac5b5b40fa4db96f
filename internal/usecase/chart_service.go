package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/pitchside/matchboard/internal/domain/chart"
	"github.com/pitchside/matchboard/internal/domain/team"
	"github.com/pitchside/matchboard/internal/platform/id"
)

// ChartService manages saved chart configurations and turns them into chart
// data against the team's reconciled dataset.
type ChartService struct {
	chartRepo chart.Repository
	teamRepo  team.Repository
	datasets  *DatasetService
	idGen     id.Generator
	now       func() time.Time
}

func NewChartService(
	chartRepo chart.Repository,
	teamRepo team.Repository,
	datasets *DatasetService,
	idGen id.Generator,
) *ChartService {
	return &ChartService{
		chartRepo: chartRepo,
		teamRepo:  teamRepo,
		datasets:  datasets,
		idGen:     idGen,
		now:       time.Now,
	}
}

type CreateChartInput struct {
	TeamID string
	Name   string
	Config chart.Config
}

type UpdateChartInput struct {
	ChartID string
	Name    string
	Config  chart.Config
}

// RenderedChart pairs a saved chart with the data produced from it.
type RenderedChart struct {
	Chart chart.SavedChart `json:"chart"`
	Data  *chart.Data      `json:"data"`
}

func (s *ChartService) CreateChart(ctx context.Context, input CreateChartInput) (chart.SavedChart, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChartService.CreateChart",
		attribute.String("team_id", input.TeamID))
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Name = strings.TrimSpace(input.Name)
	if input.TeamID == "" {
		return chart.SavedChart{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return chart.SavedChart{}, fmt.Errorf("%w: chart name is required", ErrInvalidInput)
	}
	if err := input.Config.Validate(); err != nil {
		return chart.SavedChart{}, fmt.Errorf("validate chart config: %w", err)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return chart.SavedChart{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return chart.SavedChart{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	chartID, err := s.idGen.NewID()
	if err != nil {
		return chart.SavedChart{}, fmt.Errorf("generate chart id: %w", err)
	}

	now := s.now().UTC()
	saved := chart.SavedChart{
		ID:        chartID,
		TeamID:    input.TeamID,
		Name:      input.Name,
		Config:    input.Config,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.chartRepo.Create(ctx, saved); err != nil {
		return chart.SavedChart{}, fmt.Errorf("create chart: %w", err)
	}

	return saved, nil
}

func (s *ChartService) GetChart(ctx context.Context, chartID string) (chart.SavedChart, error) {
	chartID = strings.TrimSpace(chartID)
	if chartID == "" {
		return chart.SavedChart{}, fmt.Errorf("%w: chart id is required", ErrInvalidInput)
	}

	saved, exists, err := s.chartRepo.GetByID(ctx, chartID)
	if err != nil {
		return chart.SavedChart{}, fmt.Errorf("get chart: %w", err)
	}
	if !exists {
		return chart.SavedChart{}, fmt.Errorf("%w: chart=%s", ErrNotFound, chartID)
	}

	return saved, nil
}

func (s *ChartService) ListChartsByTeam(ctx context.Context, teamID string) ([]chart.SavedChart, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	charts, err := s.chartRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list charts by team: %w", err)
	}

	return charts, nil
}

// UpdateChart replaces the name and config of an existing chart. The chart's
// owning team and creation time are never changed.
func (s *ChartService) UpdateChart(ctx context.Context, input UpdateChartInput) (chart.SavedChart, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChartService.UpdateChart",
		attribute.String("chart_id", input.ChartID))
	defer span.End()

	input.ChartID = strings.TrimSpace(input.ChartID)
	input.Name = strings.TrimSpace(input.Name)
	if input.ChartID == "" {
		return chart.SavedChart{}, fmt.Errorf("%w: chart id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return chart.SavedChart{}, fmt.Errorf("%w: chart name is required", ErrInvalidInput)
	}
	if err := input.Config.Validate(); err != nil {
		return chart.SavedChart{}, fmt.Errorf("validate chart config: %w", err)
	}

	saved, exists, err := s.chartRepo.GetByID(ctx, input.ChartID)
	if err != nil {
		return chart.SavedChart{}, fmt.Errorf("get chart: %w", err)
	}
	if !exists {
		return chart.SavedChart{}, fmt.Errorf("%w: chart=%s", ErrNotFound, input.ChartID)
	}

	saved.Name = input.Name
	saved.Config = input.Config
	saved.UpdatedAt = s.now().UTC()
	if err := s.chartRepo.Update(ctx, saved); err != nil {
		return chart.SavedChart{}, fmt.Errorf("update chart: %w", err)
	}

	return saved, nil
}

func (s *ChartService) DeleteChart(ctx context.Context, chartID string) error {
	chartID = strings.TrimSpace(chartID)
	if chartID == "" {
		return fmt.Errorf("%w: chart id is required", ErrInvalidInput)
	}

	_, exists, err := s.chartRepo.GetByID(ctx, chartID)
	if err != nil {
		return fmt.Errorf("get chart: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: chart=%s", ErrNotFound, chartID)
	}

	if err := s.chartRepo.SoftDelete(ctx, chartID); err != nil {
		return fmt.Errorf("delete chart: %w", err)
	}

	return nil
}

// Preview renders an unsaved config against the team's current dataset.
// Config errors surface before any source is touched.
func (s *ChartService) Preview(ctx context.Context, teamID string, cfg chart.Config) (*chart.Data, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChartService.Preview",
		attribute.String("team_id", teamID))
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate chart config: %w", err)
	}

	ds, err := s.datasets.BuildTeamDataset(ctx, teamID)
	if err != nil {
		return nil, err
	}

	data, err := chart.Assemble(ds.Records, &cfg)
	if err != nil {
		return nil, fmt.Errorf("assemble chart data: %w", err)
	}

	return data, nil
}

// RenderSaved rebuilds the owning team's dataset and renders the saved chart
// against it.
func (s *ChartService) RenderSaved(ctx context.Context, chartID string) (RenderedChart, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChartService.RenderSaved",
		attribute.String("chart_id", chartID))
	defer span.End()

	saved, err := s.GetChart(ctx, chartID)
	if err != nil {
		return RenderedChart{}, err
	}

	ds, err := s.datasets.BuildTeamDataset(ctx, saved.TeamID)
	if err != nil {
		return RenderedChart{}, err
	}

	data, err := chart.Assemble(ds.Records, &saved.Config)
	if err != nil {
		return RenderedChart{}, fmt.Errorf("assemble chart data: %w", err)
	}

	return RenderedChart{Chart: saved, Data: data}, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pitchside/matchboard/internal/domain/chart"
	"github.com/pitchside/matchboard/internal/domain/team"
	chartmock "github.com/pitchside/matchboard/internal/mocks/domain/chart"
	teammock "github.com/pitchside/matchboard/internal/mocks/domain/team"
)

func TestChartService_CreateChart_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-123")
	chartRepo := chartmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewChartService(chartRepo, teamRepo, nil, staticIDGenerator{id: "chart-777"})
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	teamRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "psu").
		Return(team.Team{ID: "psu", Name: "Pitchside United"}, true, nil).
		Once()
	chartRepo.
		On("Create",
			mock.MatchedBy(func(v context.Context) bool { return v == ctx }),
			mock.MatchedBy(func(saved chart.SavedChart) bool {
				return saved.ID == "chart-777" && saved.TeamID == "psu" && saved.CreatedAt.Equal(now)
			})).
		Return(nil).
		Once()

	created, err := service.CreateChart(ctx, CreateChartInput{
		TeamID: "psu",
		Name:   "Goals per matchday",
		Config: goalsByDateConfig(),
	})
	if err != nil {
		t.Fatalf("create chart: %v", err)
	}
	if created.ID != "chart-777" {
		t.Fatalf("unexpected chart id: got=%s want=chart-777", created.ID)
	}
}

func TestChartService_CreateChart_TeamNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	chartRepo := chartmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewChartService(chartRepo, teamRepo, nil, staticIDGenerator{id: "chart-777"})

	teamRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "ghost").
		Return(team.Team{}, false, nil).
		Once()

	_, err := service.CreateChart(ctx, CreateChartInput{
		TeamID: "ghost",
		Name:   "Orphan chart",
		Config: goalsByDateConfig(),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package httpapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/pitchside/matchboard/internal/domain/match"
	"github.com/pitchside/matchboard/internal/domain/team"
	"github.com/pitchside/matchboard/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchboard/internal/platform/id"
	"github.com/pitchside/matchboard/internal/platform/logging"
	"github.com/pitchside/matchboard/internal/usecase"
)

const testRefreshToken = "refresh-secret"

type stubSheetFetcher struct {
	grid usecase.SheetGrid
	err  error
}

func (s stubSheetFetcher) FetchRange(_ context.Context, _ string) (usecase.SheetGrid, error) {
	if s.err != nil {
		return usecase.SheetGrid{}, s.err
	}
	return s.grid, nil
}

// testSheetGrid overlaps the 01/15/2025 Riverton Rovers match with the store
// fixture, so merge tests can watch the store row win, and adds one
// sheet-only row keyed by a date serial.
func testSheetGrid() usecase.SheetGrid {
	return usecase.SheetGrid{
		Range:  "PSU!A1:Z100",
		Header: []string{"Date", "Opponent", "goals_for", "goals_against"},
		Rows: [][]any{
			{"01/15/2025", "Riverton Rovers", float64(2), float64(2)},
			{float64(45661), "Seaside Athletic", float64(1), float64(0)},
		},
	}
}

func testTeams() []team.Team {
	return []team.Team{
		{ID: "psu", Name: "Pitchside United", Short: "PSU", SheetRange: "PSU!A1:Z100"},
		{ID: "rvr", Name: "Riverton Rovers", Short: "RVR"},
	}
}

func testMatches() []match.Match {
	return []match.Match{
		{
			ID:       "m-psu-1",
			TeamID:   "psu",
			Opponent: "Riverton Rovers",
			HomeAway: "home",
			PlayedAt: time.Date(2025, time.January, 15, 19, 30, 0, 0, time.UTC),
			Season:   2025,
			Stats:    map[string]any{"goals_for": 3.0, "goals_against": 1.0},
		},
		{
			ID:       "m-psu-2",
			TeamID:   "psu",
			Opponent: "Harbour City",
			HomeAway: "away",
			PlayedAt: time.Date(2025, time.February, 2, 15, 0, 0, 0, time.UTC),
			Season:   2025,
			Stats:    map[string]any{"goals_for": 2.0},
		},
	}
}

func newTestRouter(fetcher usecase.SheetFetcher) http.Handler {
	teamRepo := memory.NewTeamRepository(testTeams())
	matchRepo := memory.NewMatchRepository(testMatches())
	chartRepo := memory.NewChartRepository()

	logger := logging.NewNop()
	teamService := usecase.NewTeamService(teamRepo)
	datasetService := usecase.NewDatasetService(teamRepo, matchRepo, fetcher, logger)
	chartService := usecase.NewChartService(chartRepo, teamRepo, datasetService, id.NewRandomGenerator())
	refreshService := usecase.NewRefreshService(teamRepo, datasetService, logger)

	handler := NewHandler(teamService, datasetService, chartService, refreshService, logger)
	return NewRouter(handler, logger, false, nil, testRefreshToken)
}

func decodeEnvelope(t *testing.T, body []byte) map[string]any {
	t.Helper()

	var envelope map[string]any
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return envelope
}

func envelopeData(t *testing.T, body []byte) map[string]any {
	t.Helper()

	envelope := decodeEnvelope(t, body)
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object in response, got %v", envelope)
	}
	return data
}

func envelopeDataList(t *testing.T, body []byte) []any {
	t.Helper()

	envelope := decodeEnvelope(t, body)
	data, ok := envelope["data"].([]any)
	if !ok {
		t.Fatalf("expected data array in response, got %v", envelope)
	}
	return data
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pitchside/matchboard/internal/domain/team"
	"github.com/pitchside/matchboard/internal/platform/logging"
)

type mapSheetFetcher struct {
	grids map[string]SheetGrid
}

func (s mapSheetFetcher) FetchRange(_ context.Context, readRange string) (SheetGrid, error) {
	grid, ok := s.grids[readRange]
	if !ok {
		return SheetGrid{}, errors.New("sheets api: 404")
	}
	return grid, nil
}

func TestRefreshService_Refresh_AllTeams(t *testing.T) {
	t.Parallel()

	teams := stubTeamRepo{teams: []team.Team{
		{ID: "psu", Name: "Pitchside United", SheetRange: "PSU!A1:Z"},
		{ID: "rvr", Name: "FC River Plate", SheetRange: "RVR!A1:Z"},
	}}
	sheet := mapSheetFetcher{grids: map[string]SheetGrid{
		"PSU!A1:Z": {
			Header: []string{"Date", "Opponent", "Goals For"},
			Rows:   [][]any{{"2025-01-15", "Arsenal", 2.0}},
		},
		"RVR!A1:Z": {},
	}}

	datasets := NewDatasetService(teams, stubMatchRepo{}, sheet, logging.NewNop())
	service := NewRefreshService(teams, datasets, logging.NewNop())

	result, err := service.Refresh(context.Background(), RefreshInput{MaxWorkers: 8})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if result.TeamCount != 2 {
		t.Fatalf("expected 2 teams, got %d", result.TeamCount)
	}
	if result.WorkerCount != 2 {
		t.Fatalf("expected worker count clamped to team count, got %d", result.WorkerCount)
	}
	if result.SuccessCount != 1 || result.SkippedCount != 1 || result.FailedCount != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}

	if len(result.Teams) != 2 {
		t.Fatalf("expected 2 team rows, got %d", len(result.Teams))
	}
	if result.Teams[0].TeamID != "psu" || result.Teams[1].TeamID != "rvr" {
		t.Fatalf("expected rows sorted by team id: %+v", result.Teams)
	}
	if result.Teams[0].Status != refreshStatusSuccess || result.Teams[0].Records != 1 {
		t.Fatalf("unexpected psu row: %+v", result.Teams[0])
	}
	if result.Teams[1].Status != refreshStatusSkipped {
		t.Fatalf("expected empty dataset to be skipped: %+v", result.Teams[1])
	}
}

func TestRefreshService_Refresh_RequestedTeams(t *testing.T) {
	t.Parallel()

	teams := stubTeamRepo{teams: []team.Team{
		{ID: "psu", Name: "Pitchside United", SheetRange: "PSU!A1:Z"},
	}}
	sheet := mapSheetFetcher{grids: map[string]SheetGrid{
		"PSU!A1:Z": {
			Header: []string{"Date", "Opponent", "Goals For"},
			Rows:   [][]any{{"2025-01-15", "Arsenal", 2.0}},
		},
	}}

	datasets := NewDatasetService(teams, stubMatchRepo{}, sheet, logging.NewNop())
	service := NewRefreshService(teams, datasets, logging.NewNop())

	result, err := service.Refresh(context.Background(), RefreshInput{
		TeamIDs: []string{" psu ", "psu", "", "ghost"},
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if result.TeamCount != 2 {
		t.Fatalf("expected duplicate and blank ids dropped, got %d targets", result.TeamCount)
	}
	if result.SuccessCount != 1 || result.FailedCount != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.Teams[0].TeamID != "ghost" || result.Teams[0].Status != refreshStatusFailed {
		t.Fatalf("expected ghost row to fail: %+v", result.Teams[0])
	}
	if result.Teams[0].Message == "" {
		t.Fatal("expected failure message on ghost row")
	}
}

func TestRefreshService_Refresh_EmptyRoster(t *testing.T) {
	t.Parallel()

	datasets := NewDatasetService(stubTeamRepo{}, stubMatchRepo{}, stubSheetFetcher{}, logging.NewNop())
	service := NewRefreshService(stubTeamRepo{}, datasets, logging.NewNop())

	result, err := service.Refresh(context.Background(), RefreshInput{})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if result.TeamCount != 0 || len(result.Teams) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestNormalizeRefreshWorkerCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		value     int
		teamCount int
		want      int
	}{
		{name: "zero teams", value: 8, teamCount: 0, want: 1},
		{name: "default", value: 0, teamCount: 10, want: 1},
		{name: "negative", value: -3, teamCount: 10, want: 1},
		{name: "clamped high", value: 9, teamCount: 10, want: 4},
		{name: "clamped to teams", value: 3, teamCount: 2, want: 2},
		{name: "in range", value: 2, teamCount: 10, want: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeRefreshWorkerCount(tc.value, tc.teamCount); got != tc.want {
				t.Fatalf("normalizeRefreshWorkerCount(%d, %d)=%d, want %d", tc.value, tc.teamCount, got, tc.want)
			}
		})
	}
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pitchside/matchboard/internal/domain/team"
	"github.com/pitchside/matchboard/internal/platform/logging"
)

type RefreshInput struct {
	// TeamIDs narrows the refresh to specific teams. Empty means every team.
	TeamIDs    []string
	MaxWorkers int
}

type RefreshResult struct {
	TeamCount    int                 `json:"team_count"`
	SuccessCount int                 `json:"success_count"`
	FailedCount  int                 `json:"failed_count"`
	SkippedCount int                 `json:"skipped_count"`
	WorkerCount  int                 `json:"worker_count"`
	Teams        []RefreshTeamResult `json:"teams"`
}

type RefreshTeamResult struct {
	TeamID     string `json:"team_id"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	Duplicates int    `json:"duplicates"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"
	refreshStatusSkipped = "skipped"
)

// RefreshService rebuilds team datasets across the roster so stale or broken
// source data is caught ahead of dashboard traffic. Builds are fan-out work
// over a bounded pool; nothing is persisted, the value is the per-team report.
type RefreshService struct {
	teamRepo team.Repository
	datasets *DatasetService
	logger   *logging.Logger
}

func NewRefreshService(teamRepo team.Repository, datasets *DatasetService, logger *logging.Logger) *RefreshService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RefreshService{
		teamRepo: teamRepo,
		datasets: datasets,
		logger:   logger,
	}
}

func (s *RefreshService) Refresh(ctx context.Context, input RefreshInput) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.Refresh",
		attribute.Int("requested_teams", len(input.TeamIDs)))
	defer span.End()

	if s.datasets == nil || s.teamRepo == nil {
		return RefreshResult{}, fmt.Errorf("%w: refresh service is not fully configured", ErrDependencyUnavailable)
	}

	teamIDs, err := s.resolveRefreshTargets(ctx, input.TeamIDs)
	if err != nil {
		return RefreshResult{}, err
	}

	workerCount := normalizeRefreshWorkerCount(input.MaxWorkers, len(teamIDs))
	result := RefreshResult{
		TeamCount:   len(teamIDs),
		WorkerCount: workerCount,
		Teams:       make([]RefreshTeamResult, 0, len(teamIDs)),
	}
	if len(teamIDs) == 0 {
		return result, nil
	}

	results := make(chan RefreshTeamResult, len(teamIDs))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, teamID := range teamIDs {
		teamID := teamID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.refreshTeam(ctx, teamID)
			row.DurationMs = time.Since(start).Milliseconds()

			switch row.Status {
			case refreshStatusSuccess:
				successCount.Add(1)
			case refreshStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return RefreshResult{}, fmt.Errorf("submit refresh to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Teams = append(result.Teams, row)
	}

	sort.SliceStable(result.Teams, func(i, j int) bool {
		return result.Teams[i].TeamID < result.Teams[j].TeamID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())

	s.logger.InfoContext(ctx, "dataset refresh finished",
		"teams", result.TeamCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount)

	return result, nil
}

func (s *RefreshService) refreshTeam(ctx context.Context, teamID string) RefreshTeamResult {
	row := RefreshTeamResult{TeamID: teamID}

	ds, err := s.datasets.BuildTeamDataset(ctx, teamID)
	if err != nil {
		row.Status = refreshStatusFailed
		row.Message = err.Error()
		return row
	}

	row.Records = len(ds.Records)
	row.Duplicates = ds.Diagnostics.Merge.DuplicatesSkipped
	if len(ds.Records) == 0 {
		row.Status = refreshStatusSkipped
		row.Message = "no records in either source"
		return row
	}

	row.Status = refreshStatusSuccess
	switch {
	case ds.Diagnostics.PrimaryError != "":
		row.Message = "spreadsheet source unavailable, store records only"
	case ds.Diagnostics.SecondaryError != "":
		row.Message = "match store unavailable, spreadsheet records only"
	}
	return row
}

func (s *RefreshService) resolveRefreshTargets(ctx context.Context, requested []string) ([]string, error) {
	seen := make(map[string]struct{}, len(requested))
	out := make([]string, 0, len(requested))
	for _, teamID := range requested {
		teamID = strings.TrimSpace(teamID)
		if teamID == "" {
			continue
		}
		if _, exists := seen[teamID]; exists {
			continue
		}
		seen[teamID] = struct{}{}
		out = append(out, teamID)
	}
	if len(out) > 0 {
		return out, nil
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams for refresh: %w", err)
	}
	for _, row := range teams {
		out = append(out, row.ID)
	}
	return out, nil
}

// normalizeRefreshWorkerCount keeps concurrent spreadsheet reads low so a
// full-roster refresh stays inside the sheets API quota.
func normalizeRefreshWorkerCount(value int, teamCount int) int {
	if teamCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > 4 {
		value = 4
	}
	if value > teamCount {
		value = teamCount
	}
	return value
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pitchside/matchboard/internal/domain/match"
	"github.com/pitchside/matchboard/internal/domain/matchrecord"
	"github.com/pitchside/matchboard/internal/domain/team"
	"github.com/pitchside/matchboard/internal/platform/logging"
)

// Dataset is the reconciled view of one team's matches across both sources.
// Records is the merged canonical list; Primary and Secondary keep the
// per-source record lists so callers can expose the raw inputs alongside it.
type Dataset struct {
	Team        team.Team
	Records     []*matchrecord.MatchRecord
	Primary     []*matchrecord.MatchRecord
	Secondary   []*matchrecord.MatchRecord
	Diagnostics DatasetDiagnostics
}

// DatasetDiagnostics reports what happened while a dataset was assembled.
// A non-empty source error means that source contributed nothing this build.
type DatasetDiagnostics struct {
	PrimaryFetched   int                    `json:"primary_fetched"`
	SecondaryFetched int                    `json:"secondary_fetched"`
	PrimaryError     string                 `json:"primary_error,omitempty"`
	SecondaryError   string                 `json:"secondary_error,omitempty"`
	Merge            matchrecord.MergeStats `json:"merge"`
}

// DatasetService rebuilds the canonical match dataset for a team by fetching
// the spreadsheet rows and the relational rows concurrently and merging them.
type DatasetService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	sheets    SheetFetcher
	logger    *logging.Logger
}

// NewDatasetService wires the dataset builder. sheets may be nil when the
// spreadsheet source is disabled; the store then remains the only source.
func NewDatasetService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	sheets SheetFetcher,
	logger *logging.Logger,
) *DatasetService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DatasetService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		sheets:    sheets,
		logger:    logger,
	}
}

// BuildTeamDataset fetches both sources for the team and merges them into the
// canonical record list. A single unreachable source degrades to an empty
// contribution and is reported in the diagnostics; when neither source can be
// read the build fails with ErrDependencyUnavailable.
func (s *DatasetService) BuildTeamDataset(ctx context.Context, teamID string) (Dataset, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.BuildTeamDataset",
		attribute.String("team_id", teamID))
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return Dataset{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	row, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return Dataset{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return Dataset{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	var (
		grid    SheetGrid
		gridErr error

		matches    []match.Match
		matchesErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		if s.sheets == nil {
			gridErr = fmt.Errorf("%w: spreadsheet source is disabled", ErrDependencyUnavailable)
			return
		}
		grid, gridErr = s.sheets.FetchRange(ctx, row.SheetRange)
	})
	wg.Go(func() {
		if s.matchRepo == nil {
			matchesErr = fmt.Errorf("%w: match store is not configured", ErrDependencyUnavailable)
			return
		}
		matches, matchesErr = s.matchRepo.ListByTeam(ctx, teamID, match.Filter{})
	})
	wg.Wait()

	if gridErr != nil && matchesErr != nil {
		return Dataset{}, fmt.Errorf("%w: both sources failed: sheet: %v; store: %v", ErrDependencyUnavailable, gridErr, matchesErr)
	}

	var diag DatasetDiagnostics
	var primary, secondary []*matchrecord.MatchRecord

	if gridErr != nil {
		s.logger.WarnContext(ctx, "spreadsheet fetch failed, continuing with store records only",
			"team_id", teamID, "error", gridErr)
		diag.PrimaryError = gridErr.Error()
	} else {
		primary = recordsFromGrid(grid, row)
	}
	if matchesErr != nil {
		s.logger.WarnContext(ctx, "match store fetch failed, continuing with spreadsheet records only",
			"team_id", teamID, "error", matchesErr)
		diag.SecondaryError = matchesErr.Error()
	} else {
		secondary = recordsFromMatches(matches, row)
	}
	diag.PrimaryFetched = len(primary)
	diag.SecondaryFetched = len(secondary)

	merged, stats := matchrecord.Merge(primary, secondary, mergeLogger{
		ctx:    ctx,
		logger: s.logger,
		teamID: teamID,
	})
	diag.Merge = stats

	s.logger.InfoContext(ctx, "team dataset rebuilt",
		"team_id", teamID,
		"primary", diag.PrimaryFetched,
		"secondary", diag.SecondaryFetched,
		"merged", stats.Merged,
		"duplicates_skipped", stats.DuplicatesSkipped)

	return Dataset{
		Team:        row,
		Records:     merged,
		Primary:     primary,
		Secondary:   secondary,
		Diagnostics: diag,
	}, nil
}

// recordsFromGrid converts spreadsheet rows into records. Dates are rewritten
// to the canonical display format up front so keys derived from them line up
// with the store side, and rows that never name their team inherit the
// team's display name.
func recordsFromGrid(grid SheetGrid, row team.Team) []*matchrecord.MatchRecord {
	records := matchrecord.FromGrid(grid.Header, grid.Rows)
	for _, rec := range records {
		matchrecord.CanonicalizeDateField(rec)
		if _, _, ok := matchrecord.TeamAliases.Lookup(rec); !ok {
			rec.Set("Team", matchrecord.Text(row.Name))
		}
	}
	return records
}

// recordsFromMatches flattens relational match rows into records. The stats
// blob keys are visited in sorted order so two builds of the same data
// produce identically shaped records.
func recordsFromMatches(matches []match.Match, row team.Team) []*matchrecord.MatchRecord {
	records := make([]*matchrecord.MatchRecord, 0, len(matches))
	for _, m := range matches {
		rec := matchrecord.NewRecord()
		if ref := strings.TrimSpace(m.ExternalRef); ref != "" {
			rec.Set("Match ID", matchrecord.Text(ref))
		}
		if !m.PlayedAt.IsZero() {
			rec.Set("Date", matchrecord.Text(matchrecord.FormatDate(m.PlayedAt)))
		}
		if opp := strings.TrimSpace(m.Opponent); opp != "" {
			rec.Set("Opponent", matchrecord.Text(opp))
		}
		if ha := strings.TrimSpace(m.HomeAway); ha != "" {
			rec.Set("Home Away", matchrecord.Text(ha))
		}
		rec.Set("Team", matchrecord.Text(row.Name))
		if m.Season > 0 {
			rec.Set("Season", matchrecord.Number(float64(m.Season)))
		}

		keys := make([]string, 0, len(m.Stats))
		for key := range m.Stats {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			label := strings.TrimSpace(key)
			if label == "" {
				continue
			}
			rec.Set(label, matchrecord.ValueFromAny(m.Stats[key]))
		}

		records = append(records, rec)
	}
	return records
}

// mergeLogger surfaces merge anomalies in the service log. It lives for a
// single Merge call.
type mergeLogger struct {
	ctx    context.Context
	logger *logging.Logger
	teamID string
}

func (m mergeLogger) DuplicateSkipped(source, key string, _ *matchrecord.MatchRecord) {
	m.logger.WarnContext(m.ctx, "duplicate match record skipped",
		"team_id", m.teamID, "source", source, "key", key)
}

func (m mergeLogger) KeylessDropped(source string, rec *matchrecord.MatchRecord) {
	m.logger.WarnContext(m.ctx, "match record carries no identity, date, or opponent",
		"team_id", m.teamID, "source", source, "fields", rec.Len())
}

func (m mergeLogger) IdentityPreserved(key, label string) {
	m.logger.DebugContext(m.ctx, "kept source identity on merged record",
		"team_id", m.teamID, "key", key, "label", label)
}

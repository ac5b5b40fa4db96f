package cache

import (
	"context"

	"github.com/pitchside/matchboard/internal/domain/chart"
	"github.com/pitchside/matchboard/internal/domain/team"
	basecache "github.com/pitchside/matchboard/internal/platform/cache"
)

// Match reads are deliberately not decorated. Dataset rebuilds must always
// see the store's current rows, otherwise a refresh can serve stale merges.

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type ChartConfigRepository struct {
	next  chart.Repository
	cache *basecache.Store
}

func NewChartConfigRepository(next chart.Repository, cache *basecache.Store) *ChartConfigRepository {
	return &ChartConfigRepository{next: next, cache: cache}
}

func (r *ChartConfigRepository) Create(ctx context.Context, saved chart.SavedChart) error {
	if err := r.next.Create(ctx, saved); err != nil {
		return err
	}

	r.cache.Delete(ctx, chartByIDKey(saved.ID))
	r.cache.Delete(ctx, chartListByTeamKey(saved.TeamID))
	return nil
}

func (r *ChartConfigRepository) GetByID(ctx context.Context, chartID string) (chart.SavedChart, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, chartByIDKey(chartID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, chartID)
		if err != nil {
			return nil, err
		}
		return cachedChartByID{value: cloneSavedChart(item), exists: exists}, nil
	})
	if err != nil {
		return chart.SavedChart{}, false, err
	}

	cached, _ := v.(cachedChartByID)
	return cloneSavedChart(cached.value), cached.exists, nil
}

func (r *ChartConfigRepository) ListByTeam(ctx context.Context, teamID string) ([]chart.SavedChart, error) {
	v, err := r.cache.GetOrLoad(ctx, chartListByTeamKey(teamID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		out := make([]chart.SavedChart, 0, len(items))
		for _, item := range items {
			out = append(out, cloneSavedChart(item))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]chart.SavedChart)
	out := make([]chart.SavedChart, 0, len(items))
	for _, item := range items {
		out = append(out, cloneSavedChart(item))
	}
	return out, nil
}

func (r *ChartConfigRepository) Update(ctx context.Context, saved chart.SavedChart) error {
	if err := r.next.Update(ctx, saved); err != nil {
		return err
	}

	r.cache.Delete(ctx, chartByIDKey(saved.ID))
	r.cache.Delete(ctx, chartListByTeamKey(saved.TeamID))
	return nil
}

func (r *ChartConfigRepository) SoftDelete(ctx context.Context, chartID string) error {
	if err := r.next.SoftDelete(ctx, chartID); err != nil {
		return err
	}

	r.cache.Delete(ctx, chartByIDKey(chartID))
	r.cache.DeletePrefix(ctx, chartListByTeamPrefix)
	return nil
}

type cachedChartByID struct {
	value  chart.SavedChart
	exists bool
}

func cloneSavedChart(item chart.SavedChart) chart.SavedChart {
	out := item
	out.Config = cloneChartConfig(item.Config)
	return out
}

func cloneChartConfig(cfg chart.Config) chart.Config {
	out := cfg
	out.Series = append([]chart.Series(nil), cfg.Series...)
	if cfg.Filters != nil {
		filters := *cfg.Filters
		filters.Teams = append([]string(nil), cfg.Filters.Teams...)
		filters.Opponents = append([]string(nil), cfg.Filters.Opponents...)
		filters.Seasons = append([]int(nil), cfg.Filters.Seasons...)
		if cfg.Filters.DateRange != nil {
			dateRange := *cfg.Filters.DateRange
			filters.DateRange = &dateRange
		}
		out.Filters = &filters
	}
	return out
}

const chartListByTeamPrefix = "chart:list:team:"

func chartByIDKey(chartID string) string {
	return "chart:id:" + chartID
}

func chartListByTeamKey(teamID string) string {
	return chartListByTeamPrefix + teamID
}

package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pitchside/matchboard/internal/domain/chart"
)

type ChartRepository struct {
	mu     sync.RWMutex
	charts map[string]chart.SavedChart
}

func NewChartRepository() *ChartRepository {
	return &ChartRepository{charts: make(map[string]chart.SavedChart)}
}

func (r *ChartRepository) Create(_ context.Context, saved chart.SavedChart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.charts[saved.ID]; ok {
		return fmt.Errorf("chart config %s already exists", saved.ID)
	}
	r.charts[saved.ID] = saved

	return nil
}

func (r *ChartRepository) GetByID(_ context.Context, chartID string) (chart.SavedChart, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	saved, ok := r.charts[chartID]
	if !ok {
		return chart.SavedChart{}, false, nil
	}

	return saved, true, nil
}

func (r *ChartRepository) ListByTeam(_ context.Context, teamID string) ([]chart.SavedChart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]chart.SavedChart, 0)
	for _, saved := range r.charts {
		if saved.TeamID == teamID {
			out = append(out, saved)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *ChartRepository) Update(_ context.Context, saved chart.SavedChart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.charts[saved.ID]; !ok {
		return fmt.Errorf("update chart config: not found")
	}
	r.charts[saved.ID] = saved

	return nil
}

func (r *ChartRepository) SoftDelete(_ context.Context, chartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.charts[chartID]; !ok {
		return fmt.Errorf("soft delete chart config: not found")
	}
	delete(r.charts, chartID)

	return nil
}

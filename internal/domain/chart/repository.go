package chart

import "context"

// Repository describes saved chart persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, saved SavedChart) error
	GetByID(ctx context.Context, chartID string) (SavedChart, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]SavedChart, error)
	Update(ctx context.Context, saved SavedChart) error
	SoftDelete(ctx context.Context, chartID string) error
}

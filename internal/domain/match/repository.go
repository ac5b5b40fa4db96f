package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string, f Filter) ([]Match, error)
}

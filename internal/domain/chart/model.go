package chart

import "time"

// SavedChart is a stored chart definition owned by one team dashboard.
type SavedChart struct {
	ID        string
	TeamID    string
	Name      string
	Config    Config
	CreatedAt time.Time
	UpdatedAt time.Time
}

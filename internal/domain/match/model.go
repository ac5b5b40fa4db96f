package match

import "time"

// Match is one curated match row from the relational store. Stats carries
// the opaque statistics blob keyed by raw column name; the dataset builder
// flattens it into top-level record fields.
type Match struct {
	ID          string
	TeamID      string
	ExternalRef string
	Opponent    string
	HomeAway    string
	PlayedAt    time.Time
	Season      int
	Stats       map[string]any
}

// Filter narrows match listings by played-at date. Zero bounds mean
// unbounded on that side.
type Filter struct {
	From time.Time
	To   time.Time
}

package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	TeamID      string         `db:"team_public_id"`
	ExternalRef sql.NullString `db:"external_ref"`
	Opponent    string         `db:"opponent"`
	HomeAway    sql.NullString `db:"home_away"`
	PlayedAt    *time.Time     `db:"played_at"`
	Season      sql.NullInt64  `db:"season"`
	Stats       string         `db:"stats"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   *time.Time     `db:"deleted_at"`
}

package postgres

import (
	"database/sql"
	"strings"
	"time"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// pgbouncer in transaction pooling mode can route a query to a backend that
// never prepared the unnamed statement, or reuses one with a different
// parameter count. Callers retry these with simpler bind strategies.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	message := err.Error()
	return strings.Contains(message, "bind message supplies") && strings.Contains(message, "parameters")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	message := err.Error()
	if strings.Contains(message, "unnamed prepared statement does not exist") {
		return true
	}
	return strings.Contains(message, "prepared statement") && strings.Contains(message, "26000")
}

func nullableString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func nullableInt(value int) *int {
	if value == 0 {
		return nil
	}
	return &value
}

func nullableTime(value time.Time) *time.Time {
	if value.IsZero() {
		return nil
	}
	return &value
}

func nullStringToString(value sql.NullString) string {
	if !value.Valid {
		return ""
	}
	return value.String
}

func nullInt64ToInt(value sql.NullInt64) int {
	if !value.Valid {
		return 0
	}
	return int(value.Int64)
}

func timePtrToTime(value *time.Time) time.Time {
	if value == nil {
		return time.Time{}
	}
	return *value
}

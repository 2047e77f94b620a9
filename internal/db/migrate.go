package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations run in order on every open, so statements must stay
// re-runnable. "end" is quoted because it is a SQL keyword.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id         TEXT PRIMARY KEY,
		type       TEXT NOT NULL
		           CHECK(type IN ('start_work','driving','break','rest','other_work','end_work')),
		start      TEXT NOT NULL,
		"end"      TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_start ON activities(start)`,

	// Opaque key-value store holding serialized settings snapshots and
	// the last-weekly-rest reference point.
	`CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

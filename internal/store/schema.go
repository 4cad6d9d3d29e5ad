package store

import (
	"database/sql"
	"fmt"
)

// createSchema creates all tables and indexes if they don't exist.
func createSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS paths (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL,
			subject       TEXT NOT NULL,
			current_level TEXT NOT NULL,
			objectives    TEXT NOT NULL DEFAULT '[]',
			milestones    TEXT NOT NULL DEFAULT '[]',
			progress      TEXT NOT NULL DEFAULT '{}',
			version       INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS adaptations (
			id         TEXT PRIMARY KEY,
			path_id    TEXT NOT NULL REFERENCES paths(id),
			created_at TEXT NOT NULL,
			reason     TEXT NOT NULL,
			changes    TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_adaptations_path
			ON adaptations(path_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL,
			path_id       TEXT NOT NULL,
			completed_at  TEXT NOT NULL,
			comprehension REAL NOT NULL,
			duration_secs INTEGER NOT NULL,
			assessments   TEXT NOT NULL DEFAULT '[]',
			engagement    TEXT NOT NULL DEFAULT '{}'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_path
			ON sessions(user_id, path_id, completed_at)`,
		`CREATE TABLE IF NOT EXISTS skill_progress (
			user_id           TEXT NOT NULL,
			skill_id          TEXT NOT NULL,
			current_level     REAL NOT NULL,
			mastery_threshold REAL NOT NULL,
			mastered          INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, skill_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

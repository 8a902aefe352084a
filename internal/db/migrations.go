package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS schedules (
			day        TEXT PRIMARY KEY CHECK(day IN ('monday', 'tuesday', 'wednesday', 'thursday', 'friday')),
			format     TEXT NOT NULL DEFAULT 'structured' CHECK(format IN ('structured', 'line')),
			body       BLOB NOT NULL,
			fetched_at TEXT NOT NULL
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating schedules table: %w", err)
	}

	return nil
}

// Package db provides the SQLite schedule archive.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/devoxx-schedule/internal/schedule"
)

// SQLite stores one raw schedule document per day. It implements
// schedule.Source so an archive can back offline mode.
type SQLite struct {
	db *sql.DB
}

// DayInfo describes an archived day document.
type DayInfo struct {
	Day       string
	Format    schedule.Format
	Size      int
	FetchedAt time.Time
}

// New opens (or creates) the archive at path and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Fetch returns the archived document for day.
func (s *SQLite) Fetch(ctx context.Context, day string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT body FROM schedules WHERE day = ?`, day).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s (archive)", schedule.ErrDayNotFound, day)
	}
	if err != nil {
		return nil, fmt.Errorf("querying schedule: %w", err)
	}
	return body, nil
}

// SaveDay stores (or replaces) the document for day.
func (s *SQLite) SaveDay(ctx context.Context, day string, format schedule.Format, body []byte, fetchedAt time.Time) error {
	query := `
		INSERT INTO schedules (day, format, body, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			format = excluded.format,
			body = excluded.body,
			fetched_at = excluded.fetched_at
	`

	if _, err := s.db.ExecContext(ctx, query, day, string(format), body, fetchedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("saving %s schedule: %w", day, err)
	}
	return nil
}

// ListDays returns metadata for every archived day, in tab order.
func (s *SQLite) ListDays(ctx context.Context) ([]DayInfo, error) {
	query := `
		SELECT day, format, length(body), fetched_at
		FROM schedules
		ORDER BY CASE day
			WHEN 'monday' THEN 1
			WHEN 'tuesday' THEN 2
			WHEN 'wednesday' THEN 3
			WHEN 'thursday' THEN 4
			WHEN 'friday' THEN 5
			ELSE 6
		END
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying schedules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []DayInfo
	for rows.Next() {
		var (
			info      DayInfo
			format    string
			fetchedAt string
		)
		if err := rows.Scan(&info.Day, &format, &info.Size, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning schedule: %w", err)
		}
		info.Format = schedule.Format(format)
		info.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing fetched at: %w", err)
		}
		days = append(days, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}

	return days, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

package legacy

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"
)

// SQLiteSource reads and consumes rows of the legacy alarms table.
type SQLiteSource struct {
	db *sql.DB
}

// Open opens (or creates) the legacy database at path and makes sure the alarms table exists.
func Open(ctx context.Context, path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open legacy database: %w", err)
	}

	// SQLite is a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err = db.ExecContext(ctx, "PRAGMA busy_timeout=5000;"); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err = runMigrations(ctx, db); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("legacy migrations: %w", err)
	}

	return &SQLiteSource{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Query returns every legacy row ordered by id.
func (s *SQLiteSource) Query(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT _id, hour, minutes, daysofweek, alarmtime,
		       enabled, vibrate, message, alert, prealarm, state
		FROM alarms
		ORDER BY _id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query legacy alarms: %w", err)
	}
	defer rows.Close()

	var result []Row

	for rows.Next() {
		var (
			row                        Row
			enabled, vibrate, prealarm int
		)

		if err = rows.Scan(
			&row.ID, &row.Hour, &row.Minutes, &row.DaysOfWeek, &row.AlarmTime,
			&enabled, &vibrate, &row.Message, &row.Alert, &prealarm, &row.State,
		); err != nil {
			return nil, fmt.Errorf("scan legacy alarm: %w", err)
		}

		row.Enabled = enabled != 0
		row.Vibrate = vibrate != 0
		row.PreAlarm = prealarm != 0
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate legacy alarms: %w", err)
	}

	return result, nil
}

// Delete removes the row with the given id. Deleting a missing row is not an error.
func (s *SQLiteSource) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM alarms WHERE _id = ?`, id); err != nil {
		return fmt.Errorf("delete legacy alarm %d: %w", id, err)
	}

	return nil
}

// Insert adds a row and returns its id. The row id is assigned by the database.
func (s *SQLiteSource) Insert(ctx context.Context, row Row) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO alarms (
			hour, minutes, daysofweek, alarmtime,
			enabled, vibrate, message, alert, prealarm, state
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Hour, row.Minutes, row.DaysOfWeek, row.AlarmTime,
		boolToInt(row.Enabled), boolToInt(row.Vibrate), row.Message, row.Alert,
		boolToInt(row.PreAlarm), row.State,
	)
	if err != nil {
		return 0, fmt.Errorf("insert legacy alarm: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("legacy alarm id: %w", err)
	}

	return id, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/flowcal/wellobs/internal/schedule"
)

//go:embed schema.sql
var schemaSQL string

// dateLayout is the stored calendar-date form.
const dateLayout = "2006-01-02"

// Store provides durable storage for event schedules.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveSchedule appends all events of the schedule to the event log in
// insertion order, inside one transaction so a failed save leaves no
// partial schedule behind.
func (s *Store) SaveSchedule(ctx context.Context, sched *schedule.Schedule) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO events (well, kind, date, fields) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range sched.Events() {
		fields, err := json.Marshal(e.Fields)
		if err != nil {
			return fmt.Errorf("marshaling fields for well %s: %w", e.Well, err)
		}
		_, err = stmt.ExecContext(ctx, e.Well, string(e.Kind), e.Date.Format(dateLayout), string(fields))
		if err != nil {
			return fmt.Errorf("inserting event for well %s: %w", e.Well, err)
		}
	}
	return tx.Commit()
}

// LoadSchedule rebuilds the schedule from the event log, replaying events
// in their original append order.
func (s *Store) LoadSchedule(ctx context.Context) (*schedule.Schedule, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT well, kind, date, fields FROM events ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	sched := schedule.New()
	for rows.Next() {
		var well, kind, date, fieldsJSON string
		if err := rows.Scan(&well, &kind, &date, &fieldsJSON); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		d, err := time.ParseInLocation(dateLayout, date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("stored event has invalid date %q: %w", date, err)
		}
		var fields map[string]float64
		if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
			return nil, fmt.Errorf("stored event has invalid fields: %w", err)
		}
		sched.Append(schedule.Event{
			Date:   d,
			Well:   well,
			Kind:   schedule.Kind(kind),
			Fields: fields,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return sched, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

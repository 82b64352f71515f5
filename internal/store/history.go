package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/rterry/jewelboard/internal/model"
)

// Event actions recorded in the history journal.
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionReset  = "reset"
	ActionExport = "export"
)

// Event is one entry in the change-history journal. The journal is an
// audit trail beside the CSV files; the CSV files stay authoritative.
type Event struct {
	ID        string         `db:"id"`
	Category  model.Category `db:"category"`
	JobID     string         `db:"job_id"`
	Action    string         `db:"action"`
	Detail    string         `db:"detail"`
	CreatedAt time.Time      `db:"created_at"`
}

// History records store mutations in a local SQLite database.
type History struct {
	db *sqlx.DB
}

// OpenHistory opens (or creates) the history database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func OpenHistory(dbPath string) (*History, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	h := &History{db: db}
	if err := h.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return h, nil
}

// Close closes the underlying database connection.
func (h *History) Close() error {
	return h.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (h *History) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := h.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = h.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := h.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Record inserts a journal event. A missing ID or timestamp is filled
// in.
func (h *History) Record(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := h.db.ExecContext(ctx, `
		INSERT INTO events (id, category, job_id, action, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Category), e.JobID, e.Action, e.Detail, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("recording %s event for job %s: %w", e.Action, e.JobID, err)
	}
	return nil
}

// Recent returns the most recent events, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := h.db.QueryxContext(ctx,
		"SELECT * FROM events ORDER BY created_at DESC, id LIMIT ?", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var category string
		if err := rows.Scan(&e.ID, &category, &e.JobID, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		e.Category = model.Category(category)
		events = append(events, e)
	}

	return events, rows.Err()
}

// CountByAction returns how many events exist per action type.
func (h *History) CountByAction(ctx context.Context) (map[string]int, error) {
	rows, err := h.db.QueryxContext(ctx,
		"SELECT action, COUNT(*) FROM events GROUP BY action",
	)
	if err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, fmt.Errorf("scanning event count: %w", err)
		}
		counts[action] = n
	}
	return counts, rows.Err()
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sfadsms/internal/domain"
	"sfadsms/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// AuditLog implements ports.AuditLog using SQLite
type AuditLog struct {
	db     *sql.DB
	dbPath string
}

// Ensure AuditLog implements ports.AuditLog
var _ ports.AuditLog = (*AuditLog)(nil)

// OpenAuditLog opens (creating if needed) the audit database at dbPath
func OpenAuditLog(dbPath string) (*AuditLog, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create audit directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			at INTEGER NOT NULL,
			action TEXT NOT NULL,
			actor TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			record TEXT NOT NULL DEFAULT '',
			file TEXT NOT NULL DEFAULT '',
			detail TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_category ON events(category, id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &AuditLog{db: db, dbPath: dbPath}, nil
}

// Record appends an event; a zero At is stamped with the current time
func (a *AuditLog) Record(ctx context.Context, event domain.AuditEvent) error {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO events (at, action, actor, category, record, file, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.At.UnixNano(), string(event.Action), event.User,
		event.Category, event.Record, event.File, event.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first
func (a *AuditLog) Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	return a.query(ctx, `
		SELECT id, at, action, actor, category, record, file, detail
		FROM events ORDER BY id DESC LIMIT ?`, normalizeLimit(limit))
}

// ForCategory returns up to limit events touching a category, newest first
func (a *AuditLog) ForCategory(ctx context.Context, category string, limit int) ([]domain.AuditEvent, error) {
	return a.query(ctx, `
		SELECT id, at, action, actor, category, record, file, detail
		FROM events WHERE category = ? ORDER BY id DESC LIMIT ?`, category, normalizeLimit(limit))
}

func (a *AuditLog) query(ctx context.Context, query string, args ...any) ([]domain.AuditEvent, error) {
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var (
			e      domain.AuditEvent
			at     int64
			action string
		)
		if err := rows.Scan(&e.ID, &at, &action, &e.User, &e.Category, &e.Record, &e.File, &e.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		e.At = time.Unix(0, at)
		e.Action = domain.AuditAction(action)
		events = append(events, e)
	}
	return events, rows.Err()
}

// Close closes the database connection
func (a *AuditLog) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Path returns the database file path
func (a *AuditLog) Path() string {
	return a.dbPath
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}

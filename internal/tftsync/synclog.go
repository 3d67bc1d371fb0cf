package tftsync

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SyncLog records per-stage sync runs in a local SQLite database so the
// status command can show what last happened and when.
type SyncLog struct {
	db *sql.DB
}

// Entry is one recorded stage run.
type Entry struct {
	ID          string     `json:"id"`
	Stage       string     `json:"stage"`
	SetNumber   string     `json:"set_number"`
	Status      string     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Records     int64      `json:"records"`
	Error       string     `json:"error,omitempty"`
}

const syncLogMigration = `
CREATE TABLE IF NOT EXISTS sync_runs (
	id           TEXT PRIMARY KEY,
	stage        TEXT NOT NULL,
	set_number   TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'running',
	started_at   DATETIME NOT NULL DEFAULT (datetime('now')),
	completed_at DATETIME,
	records      INTEGER NOT NULL DEFAULT 0,
	error        TEXT
);

CREATE INDEX IF NOT EXISTS idx_sync_runs_stage ON sync_runs(stage);
CREATE INDEX IF NOT EXISTS idx_sync_runs_started_at ON sync_runs(started_at);
`

// OpenSyncLog opens (creating if needed) the sync log at the given path and
// applies the schema.
func OpenSyncLog(path string) (*SyncLog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "synclog: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "synclog: exec %s", pragma)
		}
	}
	if _, err := db.Exec(syncLogMigration); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "synclog: migrate")
	}
	return &SyncLog{db: db}, nil
}

func (l *SyncLog) Close() error {
	return l.db.Close()
}

// Start records the beginning of a stage run and returns its id.
func (l *SyncLog) Start(ctx context.Context, stage, setNumber string) (string, error) {
	id := uuid.New().String()
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO sync_runs (id, stage, set_number, status, started_at) VALUES (?, ?, ?, 'running', ?)`,
		id, stage, setNumber, time.Now().UTC(),
	)
	if err != nil {
		return "", eris.Wrapf(err, "synclog: start %s", stage)
	}
	return id, nil
}

// Complete marks a stage run as successfully completed.
func (l *SyncLog) Complete(ctx context.Context, id string, records int64) error {
	_, err := l.db.ExecContext(ctx,
		`UPDATE sync_runs SET status = 'complete', completed_at = ?, records = ? WHERE id = ?`,
		time.Now().UTC(), records, id,
	)
	return eris.Wrapf(err, "synclog: complete %s", id)
}

// Fail marks a stage run as failed with an error message.
func (l *SyncLog) Fail(ctx context.Context, id string, errMsg string) error {
	_, err := l.db.ExecContext(ctx,
		`UPDATE sync_runs SET status = 'failed', completed_at = ?, error = ? WHERE id = ?`,
		time.Now().UTC(), errMsg, id,
	)
	return eris.Wrapf(err, "synclog: fail %s", id)
}

// Recent returns the most recent stage runs, newest first.
func (l *SyncLog) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, stage, set_number, status, started_at, completed_at, records, error
		 FROM sync_runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "synclog: recent")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var completedAt sql.NullTime
		var errStr sql.NullString
		if err := rows.Scan(&e.ID, &e.Stage, &e.SetNumber, &e.Status, &e.StartedAt, &completedAt, &e.Records, &errStr); err != nil {
			return nil, eris.Wrap(err, "synclog: scan entry")
		}
		if completedAt.Valid {
			t := completedAt.Time
			e.CompletedAt = &t
		}
		if errStr.Valid {
			e.Error = errStr.String
		}
		entries = append(entries, e)
	}
	return entries, eris.Wrap(rows.Err(), "synclog: iterate")
}

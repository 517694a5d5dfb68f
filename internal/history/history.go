// Package history persists explore run summaries to a per-user SQLite
// database so past archives can be reviewed with the history command.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/hamedhamzeh/annotex/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	archive     TEXT NOT NULL,
	format      TEXT NOT NULL,
	images      INTEGER NOT NULL,
	annotations INTEGER NOT NULL,
	workspace   TEXT NOT NULL,
	created_at  TEXT NOT NULL
);`

// Run is one recorded explore summary.
type Run struct {
	ID          int64
	Archive     string
	Format      string
	Images      int
	Annotations int
	Workspace   string
	CreatedAt   time.Time
}

// Store wraps the SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the per-user history database location.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "annotex", "history.db")
}

// Open opens or creates the history database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one run summary.
func (s *Store) Record(ctx context.Context, result *types.Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (archive, format, images, annotations, workspace, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.ArchiveName, result.Format.String(), result.Images,
		result.Annotations, result.Workspace,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first, capped at limit
// (or all runs when limit <= 0).
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, archive, format, images, annotations, workspace, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			created string
		)
		if err := rows.Scan(&r.ID, &r.Archive, &r.Format, &r.Images,
			&r.Annotations, &r.Workspace, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

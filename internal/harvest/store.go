// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/crossref/pkg/response"
)

const dbFile = "crossref.db"

// Run status values.
const (
	StatusRunning  = "running"
	StatusDone     = "done"
	StatusFailed   = "failed"
	StatusCanceled = "canceled"
)

// Store indexes harvested works in SQLite. Each work is kept once, keyed by
// lower-cased DOI; a later harvest replaces the stored record.
type Store struct {
	db *sql.DB
}

// Run records one harvest session.
type Run struct {
	ID         string
	Route      string
	StartedAt  time.Time
	FinishedAt time.Time
	Status     string
	Pages      int
	Works      int
	Total      int
	// NextCursor is the last cursor the API returned. Cursors expire a few
	// minutes after use, so it is informational.
	NextCursor string
}

// Open opens or creates dir/crossref.db and its schema.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating harvest directory: %w", err)
	}
	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS harvest_runs (
			id TEXT PRIMARY KEY,
			route TEXT NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT,
			status TEXT NOT NULL,
			pages INTEGER NOT NULL DEFAULT 0,
			works INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL DEFAULT 0,
			next_cursor TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS works (
			doi TEXT PRIMARY KEY,
			title TEXT,
			type TEXT,
			year INTEGER,
			container_title TEXT,
			publisher TEXT,
			record TEXT NOT NULL,
			run_id TEXT NOT NULL REFERENCES harvest_runs(id),
			harvested_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_works_run_id ON works(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_works_year ON works(year)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// StartRun records a new run for route and returns it.
func (s *Store) StartRun(ctx context.Context, route string) (Run, error) {
	r := Run{
		ID:        uuid.NewString(),
		Route:     route,
		StartedAt: time.Now().UTC(),
		Status:    StatusRunning,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO harvest_runs (id, route, started_at, status) VALUES (?, ?, ?, ?)`,
		r.ID, r.Route, r.StartedAt.Format(time.RFC3339Nano), r.Status)
	if err != nil {
		return Run{}, fmt.Errorf("recording run: %w", err)
	}
	return r, nil
}

// FinishRun stores the final counters and status of r.
func (s *Store) FinishRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE harvest_runs SET finished_at = ?, status = ?, pages = ?, works = ?, total = ?, next_cursor = ?
		 WHERE id = ?`,
		r.FinishedAt.Format(time.RFC3339Nano), r.Status, r.Pages, r.Works, r.Total, r.NextCursor, r.ID)
	if err != nil {
		return fmt.Errorf("updating run %s: %w", r.ID, err)
	}
	return nil
}

// Runs lists recorded runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, route, started_at, COALESCE(finished_at, ''), status, pages, works, total, COALESCE(next_cursor, '')
		 FROM harvest_runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished string
		if err := rows.Scan(&r.ID, &r.Route, &started, &finished, &r.Status, &r.Pages, &r.Works, &r.Total, &r.NextCursor); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		if finished != "" {
			r.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// SaveWorks upserts works under runID in one transaction and returns how
// many were written.
func (s *Store) SaveWorks(ctx context.Context, runID string, works []response.Work) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO works (doi, title, type, year, container_title, publisher, record, run_id, harvested_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(doi) DO UPDATE SET
			title=excluded.title, type=excluded.type, year=excluded.year,
			container_title=excluded.container_title, publisher=excluded.publisher,
			record=excluded.record, run_id=excluded.run_id, harvested_at=excluded.harvested_at`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, w := range works {
		record, err := json.Marshal(w)
		if err != nil {
			return 0, fmt.Errorf("encoding %s: %w", w.DOI, err)
		}
		_, err = stmt.ExecContext(ctx,
			strings.ToLower(w.DOI), first(w.Title), w.Type, w.Year(),
			first(w.ContainerTitle), w.Publisher, string(record), runID, now)
		if err != nil {
			return 0, fmt.Errorf("inserting %s: %w", w.DOI, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing works: %w", err)
	}
	return len(works), nil
}

// QueryOptions filters stored works. Zero values match everything.
type QueryOptions struct {
	// Title matches a case-insensitive substring of the first title.
	Title string
	Type  string
	// FromYear and UntilYear bound the publication year, inclusive.
	FromYear  int
	UntilYear int
	RunID     string
	// Limit caps the result count. Zero means no cap.
	Limit int
}

// Works returns stored works matching opts, ordered by year then DOI.
func (s *Store) Works(ctx context.Context, opts QueryOptions) ([]response.Work, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT record FROM works WHERE 1=1`)
	if opts.Title != "" {
		qb.WriteString(` AND title LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(opts.Title)+"%")
	}
	if opts.Type != "" {
		qb.WriteString(` AND type = ?`)
		args = append(args, opts.Type)
	}
	if opts.FromYear > 0 {
		qb.WriteString(` AND year >= ?`)
		args = append(args, opts.FromYear)
	}
	if opts.UntilYear > 0 {
		qb.WriteString(` AND year <= ?`)
		args = append(args, opts.UntilYear)
	}
	if opts.RunID != "" {
		qb.WriteString(` AND run_id = ?`)
		args = append(args, opts.RunID)
	}
	qb.WriteString(` ORDER BY year, doi`)
	if opts.Limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying works: %w", err)
	}
	defer rows.Close()

	var works []response.Work
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("scanning work: %w", err)
		}
		var w response.Work
		if err := json.Unmarshal([]byte(record), &w); err != nil {
			return nil, fmt.Errorf("decoding stored work: %w", err)
		}
		works = append(works, w)
	}
	return works, rows.Err()
}

// Work returns the stored work with doi, or ErrNotFound.
func (s *Store) Work(ctx context.Context, doi string) (response.Work, error) {
	var record string
	err := s.db.QueryRowContext(ctx, `SELECT record FROM works WHERE doi = ?`, strings.ToLower(doi)).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return response.Work{}, fmt.Errorf("%s: %w", doi, ErrNotFound)
	}
	if err != nil {
		return response.Work{}, fmt.Errorf("querying work %s: %w", doi, err)
	}
	var w response.Work
	if err := json.Unmarshal([]byte(record), &w); err != nil {
		return response.Work{}, fmt.Errorf("decoding stored work %s: %w", doi, err)
	}
	return w, nil
}

// Count returns the number of stored works.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM works`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting works: %w", err)
	}
	return n, nil
}

// ErrNotFound reports a DOI that is not in the index.
var ErrNotFound = errors.New("work not in index")

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

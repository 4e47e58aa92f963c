// SPDX-License-Identifier: MIT
// Package: OpenPNM/store
//
// store.go — SQLite persistence of algorithm runs.
//
// Contract:
//   • Open applies the embedded migrations; a store is ready once Open returns.
//   • Runs are immutable records keyed by a random UUID.
//   • Settings and result arrays are stored as JSON; timestamps as UTC
//     milliseconds.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/nv4dll-git/OpenPNM/algorithms"
	"github.com/nv4dll-git/OpenPNM/store/migrations"
)

var (
	// ErrNotFound indicates LoadRun with an unknown id.
	ErrNotFound = errors.New("store: run not found")

	// ErrEmptyPath indicates Open without a database path.
	ErrEmptyPath = errors.New("store: database path is required")

	// ErrInvalidRun indicates a run missing its algorithm or quantity.
	ErrInvalidRun = errors.New("store: invalid run")
)

// Run is one persisted algorithm result.
type Run struct {
	ID        uuid.UUID
	Algorithm string
	Quantity  string
	Network   string
	Pores     int
	Throats   int
	Settings  algorithms.Settings
	Rate      float64 // net inlet rate
	Effective float64 // effective coefficient; 0 when not computed
	Results   map[string][]float64
	CreatedAt time.Time
}

// Store persists runs in SQLite.
type Store struct {
	db *sql.DB
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err = migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// migrate executes every embedded .sql file in lexical order. Statements
// are idempotent.
func migrate(db *sql.DB) error {
	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		body, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err = db.Exec(string(body)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}

	return nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// SaveRun inserts r, assigning an ID and creation time when they are zero,
// and returns the stored record.
func (s *Store) SaveRun(ctx context.Context, r Run) (Run, error) {
	if err := ctx.Err(); err != nil {
		return Run{}, err
	}
	if strings.TrimSpace(r.Algorithm) == "" || strings.TrimSpace(r.Quantity) == "" {
		return Run{}, fmt.Errorf("algorithm and quantity are required: %w", ErrInvalidRun)
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = fromMillis(toMillis(r.CreatedAt))

	settings, err := json.Marshal(r.Settings)
	if err != nil {
		return Run{}, fmt.Errorf("encode settings: %w", err)
	}
	if r.Results == nil {
		r.Results = map[string][]float64{}
	}
	results, err := json.Marshal(r.Results)
	if err != nil {
		return Run{}, fmt.Errorf("encode results: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (
		   id, algorithm, quantity, network, pores, throats,
		   settings_json, rate, effective, results_json, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.Algorithm, r.Quantity, r.Network, r.Pores, r.Throats,
		string(settings), r.Rate, r.Effective, string(results), toMillis(r.CreatedAt),
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}

	return r, nil
}

const selectRun = `SELECT id, algorithm, quantity, network, pores, throats,
  settings_json, rate, effective, results_json, created_at FROM runs`

// LoadRun returns the run with the given id.
func (s *Store) LoadRun(ctx context.Context, id uuid.UUID) (Run, error) {
	if err := ctx.Err(); err != nil {
		return Run{}, err
	}
	row := s.db.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id.String())
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, err
	}

	return r, nil
}

// ListRuns returns every run, oldest first. Result arrays are omitted.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, selectRun+` ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		r.Results = nil
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r                 Run
		id                string
		settings, results string
		created           int64
	)
	if err := sc.Scan(&id, &r.Algorithm, &r.Quantity, &r.Network, &r.Pores, &r.Throats,
		&settings, &r.Rate, &r.Effective, &results, &created); err != nil {
		return Run{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Run{}, fmt.Errorf("decode id %q: %w", id, err)
	}
	r.ID = parsed
	if err = json.Unmarshal([]byte(settings), &r.Settings); err != nil {
		return Run{}, fmt.Errorf("decode settings of %s: %w", id, err)
	}
	if err = json.Unmarshal([]byte(results), &r.Results); err != nil {
		return Run{}, fmt.Errorf("decode results of %s: %w", id, err)
	}
	r.CreatedAt = fromMillis(created)

	return r, nil
}

// RunFrom captures a solved transport algorithm as a Run. rate and
// effective are the caller's derived quantities.
func RunFrom(t *algorithms.Transport, rate, effective float64) (Run, error) {
	results, err := t.Results()
	if err != nil {
		return Run{}, err
	}

	return Run{
		Algorithm: t.Name(),
		Quantity:  t.Quantity(),
		Network:   t.Network().Name(),
		Pores:     t.Network().Np(),
		Throats:   t.Network().Nt(),
		Settings:  t.Settings(),
		Rate:      rate,
		Effective: effective,
		Results:   results,
	}, nil
}

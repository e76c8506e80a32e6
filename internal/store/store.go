// Package store persists finished scan runs to SQLite so repeated
// surveillance runs over the same feed can be compared later.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"stscan-core/scan"
)

// RunMeta describes one scan invocation.
type RunMeta struct {
	ID          string
	CreatedAt   time.Time
	Counts      string
	Baselines   string
	Zones       string
	MaxDuration int
	Simulations int
	Model       string
	Seed        uint64
	PValue      sql.NullFloat64
}

// NewRunID returns a fresh run identifier.
func NewRunID() string { return uuid.NewString() }

// Store handles persistence of scan runs to SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the results database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open results db: %w", err)
	}
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL, -- Unix timestamp
		counts_file TEXT,
		baselines_file TEXT,
		zones_file TEXT,
		max_duration INTEGER,
		simulations INTEGER,
		model TEXT,
		seed INTEGER,
		p_value REAL
	);
	CREATE TABLE IF NOT EXISTS scan_results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		slot INTEGER NOT NULL,
		zone INTEGER NOT NULL,
		duration INTEGER NOT NULL,
		score REAL,
		relrisk_in REAL,
		relrisk_out REAL,
		PRIMARY KEY (run_id, slot)
	);
	CREATE TABLE IF NOT EXISTS sim_results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		round INTEGER NOT NULL,
		zone INTEGER NOT NULL,
		duration INTEGER NOT NULL,
		score REAL,
		relrisk_in REAL,
		relrisk_out REAL,
		PRIMARY KEY (run_id, round)
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun persists one run and both result tables in a single
// transaction.
func (s *Store) SaveRun(meta RunMeta, observed, sim []scan.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO runs
		(id, created_at, counts_file, baselines_file, zones_file,
		 max_duration, simulations, model, seed, p_value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.ID, meta.CreatedAt.Unix(), meta.Counts, meta.Baselines, meta.Zones,
		meta.MaxDuration, meta.Simulations, meta.Model, int64(meta.Seed), meta.PValue)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	obsStmt, err := tx.Prepare(`INSERT INTO scan_results
		(run_id, slot, zone, duration, score, relrisk_in, relrisk_out)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer obsStmt.Close()
	for slot, r := range observed {
		if _, err := obsStmt.Exec(meta.ID, slot, r.Zone, r.Duration, r.Score, r.RelRiskIn, r.RelRiskOut); err != nil {
			return fmt.Errorf("insert scan result %d: %w", slot, err)
		}
	}

	simStmt, err := tx.Prepare(`INSERT INTO sim_results
		(run_id, round, zone, duration, score, relrisk_in, relrisk_out)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer simStmt.Close()
	for round, r := range sim {
		if _, err := simStmt.Exec(meta.ID, round, r.Zone, r.Duration, r.Score, r.RelRiskIn, r.RelRiskOut); err != nil {
			return fmt.Errorf("insert sim result %d: %w", round, err)
		}
	}

	return tx.Commit()
}

// LoadRun reads back one run's result tables, slot/round ordered.
func (s *Store) LoadRun(runID string) (observed, sim []scan.Result, err error) {
	observed, err = s.queryResults(`SELECT zone, duration, score, relrisk_in, relrisk_out
		FROM scan_results WHERE run_id = ? ORDER BY slot`, runID)
	if err != nil {
		return nil, nil, err
	}
	sim, err = s.queryResults(`SELECT zone, duration, score, relrisk_in, relrisk_out
		FROM sim_results WHERE run_id = ? ORDER BY round`, runID)
	if err != nil {
		return nil, nil, err
	}
	return observed, sim, nil
}

func (s *Store) queryResults(q, runID string) ([]scan.Result, error) {
	rows, err := s.db.Query(q, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scan.Result
	for rows.Next() {
		var r scan.Result
		if err := rows.Scan(&r.Zone, &r.Duration, &r.Score, &r.RelRiskIn, &r.RelRiskOut); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

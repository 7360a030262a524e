// Package storage keeps finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/relhell/internal/core"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one finished session.
type Run struct {
	ID         string
	Variant    string
	Seed       int64
	Score      float64
	RocksHit   int
	Resources  int
	Gold       int
	ProperTime float64
	Reason     string
	CreatedAt  time.Time
}

// VariantStats aggregates the runs of one variant.
type VariantStats struct {
	Variant    string
	Runs       int
	HighScore  float64
	AvgScore   float64
	RocksHit   int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path, creating the
// parent directories and the schema when needed. A leading ~ is expanded.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			score REAL NOT NULL,
			rocks_hit INTEGER NOT NULL DEFAULT 0,
			resources INTEGER NOT NULL DEFAULT 0,
			gold INTEGER NOT NULL DEFAULT 0,
			proper_time REAL NOT NULL DEFAULT 0,
			reason TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(variant, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its generated ID.
func (s *Store) SaveRun(variant string, seed int64, st core.RunStats) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, variant, seed, score, rocks_hit, resources, gold, proper_time, reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, variant, seed, st.Score, st.RocksHit, st.Resources, st.Gold, st.ProperTime, st.Reason,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best N runs of a variant, best score first.
// An empty variant matches every variant.
func (s *Store) TopRuns(variant string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, seed, score, rocks_hit, resources, gold, proper_time, reason, created_at
		 FROM runs
		 WHERE ? = '' OR variant = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Seed, &r.Score, &r.RocksHit, &r.Resources,
			&r.Gold, &r.ProperTime, &r.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunByID returns the run with the given ID, or nil when there is none.
func (s *Store) RunByID(id string) (*Run, error) {
	var r Run
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, variant, seed, score, rocks_hit, resources, gold, proper_time, reason, created_at
		 FROM runs WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Variant, &r.Seed, &r.Score, &r.RocksHit, &r.Resources,
		&r.Gold, &r.ProperTime, &r.Reason, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// HighScore returns the best score of a variant, 0 when it has no runs.
func (s *Store) HighScore(variant string) (float64, error) {
	var score sql.NullFloat64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE variant = ?", variant).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return score.Float64, nil
}

// ClearRuns deletes every run of a variant.
func (s *Store) ClearRuns(variant string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE variant = ?", variant); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats aggregates the runs of every variant that has been played.
func (s *Store) Stats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), MAX(score), AVG(score), SUM(rocks_hit), MAX(created_at)
		 FROM runs
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var v VariantStats
		var lastPlayed any
		if err := rows.Scan(&v.Variant, &v.Runs, &v.HighScore, &v.AvgScore, &v.RocksHit, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		v.LastPlayed = parseTime(lastPlayed)
		stats[v.Variant] = &v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime accepts what the driver returns for DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

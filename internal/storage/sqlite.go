// Package storage keeps a leaderboard of finished runs in SQLite.
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
)

// Store manages the SQLite database connection for run records.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID        string
	Class     string
	Level     int
	MaxStage  int
	Gold      int
	Kills     int
	Ticks     uint64
	Cause     string // what killed the player, empty if the run was abandoned
	Advanced  bool
	Seed      int64
	CreatedAt time.Time
}

// ClassStats aggregates the runs of one class.
type ClassStats struct {
	Class      string
	Runs       int
	BestStage  int
	BestLevel  int
	AvgStage   float64
	TotalKills int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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
			class TEXT NOT NULL,
			level INTEGER NOT NULL,
			max_stage INTEGER NOT NULL,
			gold INTEGER NOT NULL DEFAULT 0,
			kills INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL DEFAULT '',
			advanced INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_class ON runs(class);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(max_stage DESC, level DESC, kills DESC);
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

// SaveRun records a finished run and returns its id. A record without an
// id gets a fresh one.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	if r.Class == "" {
		return "", errors.New("storage: cannot save run: missing class")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, class, level, max_stage, gold, kills, ticks, cause, advanced, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Class, r.Level, r.MaxStage, r.Gold, r.Kills, int64(r.Ticks), r.Cause, r.Advanced, r.Seed, //#nosec G115 -- tick counts fit
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, class, level, max_stage, gold, kills, ticks, cause, advanced, seed, created_at`

// Runs rank by furthest stage, then level, then kills.
const runOrder = `ORDER BY max_stage DESC, level DESC, kills DESC, created_at ASC`

// TopRuns returns the best runs across all classes.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs `+runOrder+` LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// TopRunsByClass returns the best runs of one class.
func (s *Store) TopRunsByClass(class string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs WHERE class = ? `+runOrder+` LIMIT ?`,
		class, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID looks a run up. It returns nil without error if none exists.
func (s *Store) RunByID(id string) (*RunRecord, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Class, &r.Level, &r.MaxStage, &r.Gold, &r.Kills,
			&ticks, &r.Cause, &r.Advanced, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both driver-decoded times and raw sqlite timestamps.
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

// BestStage returns the furthest stage reached by a class, or 0 without runs.
func (s *Store) BestStage(class string) (int, error) {
	var stage sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(max_stage) FROM runs WHERE class = ?", class).Scan(&stage)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best stage: %w", err)
	}
	if !stage.Valid {
		return 0, nil
	}
	return int(stage.Int64), nil
}

// ClearRuns deletes every run of a class, or all runs for an empty class.
func (s *Store) ClearRuns(class string) error {
	var err error
	if class == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE class = ?", class)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats aggregates runs per class.
func (s *Store) RunStats() (map[string]*ClassStats, error) {
	rows, err := s.db.Query(
		`SELECT class, COUNT(*), MAX(max_stage), MAX(level), AVG(max_stage), SUM(kills), MAX(created_at)
		 FROM runs
		 GROUP BY class`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ClassStats)
	for rows.Next() {
		var cs ClassStats
		var lastPlayed any
		if err := rows.Scan(&cs.Class, &cs.Runs, &cs.BestStage, &cs.BestLevel, &cs.AvgStage, &cs.TotalKills, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		cs.LastPlayed = parseTime(lastPlayed)
		stats[cs.Class] = &cs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Package storage provides SQLite-based persistence for puzzle clears.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrInvalidRecord is returned when a clear record is missing required fields.
var ErrInvalidRecord = errors.New("storage: invalid clear record")

// Store manages the SQLite database connection for clear records.
type Store struct {
	db *sql.DB
}

// ClearRecord is one solved attempt.
type ClearRecord struct {
	ID        int64
	RunID     string // Play session that produced the clear
	Problem   string
	Target    string // Target color name
	Moves     int
	Solution  string // Moves in notation, e.g. "RU BD"
	Player    string
	CreatedAt time.Time
}

// NewRunID returns a fresh identifier for a play session.
func NewRunID() string {
	return uuid.NewString()
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			problem TEXT NOT NULL,
			target TEXT NOT NULL,
			moves INTEGER NOT NULL,
			solution TEXT NOT NULL DEFAULT '',
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_clears_problem ON clears(problem);
		CREATE INDEX IF NOT EXISTS idx_clears_best ON clears(problem, target, moves);
		CREATE INDEX IF NOT EXISTS idx_clears_run ON clears(run_id);
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

// SaveClear records a solved attempt. A missing run ID is generated.
// Returns the ID of the inserted record.
func (s *Store) SaveClear(rec ClearRecord) (int64, error) {
	if strings.TrimSpace(rec.Problem) == "" {
		return 0, fmt.Errorf("%w: empty problem", ErrInvalidRecord)
	}
	if rec.Target == "" {
		return 0, fmt.Errorf("%w: empty target", ErrInvalidRecord)
	}
	if rec.Moves <= 0 {
		return 0, fmt.Errorf("%w: moves must be positive, got %d", ErrInvalidRecord, rec.Moves)
	}
	if rec.RunID == "" {
		rec.RunID = NewRunID()
	}

	result, err := s.db.Exec(
		`INSERT INTO clears (run_id, problem, target, moves, solution, player)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Problem, rec.Target, rec.Moves, rec.Solution, rec.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const clearColumns = `id, run_id, problem, target, moves, solution, player, created_at`

// BestClears retrieves the N shortest clears of a problem, any target.
// Ties go to the earlier clear.
func (s *Store) BestClears(problem string, limit int) ([]ClearRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+clearColumns+`
		 FROM clears
		 WHERE problem = ?
		 ORDER BY moves ASC, created_at ASC, id ASC
		 LIMIT ?`,
		problem, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	return scanClears(rows)
}

// ClearRecords retrieves every clear of a problem, newest first.
// An empty problem selects all problems.
func (s *Store) ClearRecords(problem string) ([]ClearRecord, error) {
	query := `SELECT ` + clearColumns + ` FROM clears`
	var args []any
	if problem != "" {
		query += ` WHERE problem = ?`
		args = append(args, problem)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	return scanClears(rows)
}

func scanClears(rows *sql.Rows) ([]ClearRecord, error) {
	defer rows.Close()

	var records []ClearRecord
	for rows.Next() {
		var r ClearRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Problem, &r.Target, &r.Moves, &r.Solution, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestMoves returns the fewest moves anyone cleared problem with for the
// target color. ok is false when there is no such clear.
func (s *Store) BestMoves(problem, target string) (moves int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(moves) FROM clears WHERE problem = ? AND target = ?",
		problem, target,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// DeleteClears deletes all clears of the given problem.
func (s *Store) DeleteClears(problem string) error {
	_, err := s.db.Exec("DELETE FROM clears WHERE problem = ?", problem)
	if err != nil {
		return fmt.Errorf("storage: cannot delete clears: %w", err)
	}
	return nil
}

// ProblemStats contains aggregated statistics for a problem.
type ProblemStats struct {
	Problem     string
	Clears      int
	Players     int
	BestMoves   int
	AvgMoves    float64
	LastCleared time.Time
}

// AllProblemStats retrieves statistics for every problem that has been cleared.
func (s *Store) AllProblemStats() (map[string]*ProblemStats, error) {
	rows, err := s.db.Query(
		`SELECT problem, COUNT(*), COUNT(DISTINCT player), MIN(moves), AVG(moves), MAX(created_at)
		 FROM clears
		 GROUP BY problem`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get problem stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ProblemStats)
	for rows.Next() {
		var ps ProblemStats
		var lastCleared any
		if err := rows.Scan(&ps.Problem, &ps.Clears, &ps.Players, &ps.BestMoves, &ps.AvgMoves, &lastCleared); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastCleared = parseTime(lastCleared)
		stats[ps.Problem] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and the string form SQLite returns
// for aggregated DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

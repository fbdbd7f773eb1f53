// Package storage provides SQLite-based persistence for platformer runs
// and per-level best scores. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-platformer/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished session.
type RunEntry struct {
	ID        int64
	LevelID   string
	Player    string
	Score     int
	Won       bool
	Coins     int
	Kills     int
	TimeLeft  int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			kills INTEGER NOT NULL DEFAULT 0,
			time_left INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level_id, score DESC);

		CREATE TABLE IF NOT EXISTS best_scores (
			level_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveRun records a finished session and returns its ID.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (level_id, player, score, won, coins, kills, time_left)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.LevelID, run.Player, run.Score, run.Won, run.Coins, run.Kills, run.TimeLeft,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the top N runs for a level, best score first.
func (s *Store) TopRuns(levelID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, score, won, coins, kills, time_left, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY score DESC, time_left DESC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Player, &e.Score, &e.Won,
			&e.Coins, &e.Kills, &e.TimeLeft, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestScore returns the stored best score for a level, or 0.
func (s *Store) BestScore(levelID string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM best_scores WHERE level_id = ?",
		levelID,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// SetBestScore stores score as the level's best. It never lowers an
// existing best.
func (s *Store) SetBestScore(levelID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (level_id, score) VALUES (?, ?)
		 ON CONFLICT(level_id) DO UPDATE
		 SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > best_scores.score`,
		levelID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set best score: %w", err)
	}
	return nil
}

// Ensure Store implements game.BestScores
var _ game.BestScores = (*Store)(nil)

// ClearLevel deletes all runs and the best score for a level.
func (s *Store) ClearLevel(levelID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM runs WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM best_scores WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Runs       int
	Wins       int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetLevelStats retrieves aggregated statistics for one level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), MAX(created_at)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Runs, &stats.Wins, &stats.BestScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	best, err := s.BestScore(levelID)
	if err != nil {
		return nil, err
	}
	if best > stats.BestScore {
		stats.BestScore = best
	}
	return stats, nil
}

// GetAllLevelsStats retrieves statistics for every level with runs.
func (s *Store) GetAllLevelsStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), SUM(won), MAX(score), AVG(score), MAX(created_at)
		 FROM runs
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all levels stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.LevelID, &ls.Runs, &ls.Wins, &ls.BestScore, &ls.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.LevelID] = &ls
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both driver-native times and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

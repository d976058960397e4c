// Package storage provides SQLite-based persistence for finished episodes.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for episode persistence.
type Store struct {
	db *sql.DB
}

// EpisodeEntry represents one finished episode.
type EpisodeEntry struct {
	ID         int64
	EnvID      string
	Score      int
	Reward     float64
	Steps      int
	MasterSeed int64
	ResetIndex int64 // Which reset of the session produced this episode
	CreatedAt  time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			env_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			reward REAL NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			master_seed INTEGER NOT NULL DEFAULT 0,
			reset_index INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_env_id ON episodes(env_id);
		CREATE INDEX IF NOT EXISTS idx_episodes_top ON episodes(env_id, score DESC);
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

// SaveEpisode records a finished episode.
// Returns the ID of the inserted record.
func (s *Store) SaveEpisode(e EpisodeEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO episodes (env_id, score, reward, steps, master_seed, reset_index)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.EnvID, e.Score, e.Reward, e.Steps, e.MasterSeed, e.ResetIndex,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopEpisodes retrieves the top N episodes for the given environment,
// ordered by score descending.
func (s *Store) TopEpisodes(envID string, limit int) ([]EpisodeEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, env_id, score, reward, steps, master_seed, reset_index, created_at
		 FROM episodes
		 WHERE env_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		envID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var entries []EpisodeEntry
	for rows.Next() {
		e, err := scanEpisode(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

func scanEpisode(rows *sql.Rows) (EpisodeEntry, error) {
	var e EpisodeEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.EnvID, &e.Score, &e.Reward, &e.Steps,
		&e.MasterSeed, &e.ResetIndex, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}

// HighScore returns the highest episode score for the given environment.
// Returns 0 if no episodes exist.
func (s *Store) HighScore(envID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM episodes WHERE env_id = ?",
		envID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearEpisodes deletes all episodes for the given environment.
func (s *Store) ClearEpisodes(envID string) error {
	_, err := s.db.Exec("DELETE FROM episodes WHERE env_id = ?", envID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear episodes: %w", err)
	}
	return nil
}

// EnvStats contains aggregated statistics for an environment.
type EnvStats struct {
	EnvID      string
	Episodes   int
	HighScore  int
	BestReward float64
	AvgReward  float64
	TotalSteps int64
	LastPlayed time.Time
}

// GetEnvStats retrieves aggregated statistics for a specific environment.
func (s *Store) GetEnvStats(envID string) (*EnvStats, error) {
	stats := &EnvStats{EnvID: envID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(reward), 0),
		        COALESCE(AVG(reward), 0), COALESCE(SUM(steps), 0)
		 FROM episodes WHERE env_id = ?`,
		envID,
	).Scan(&stats.Episodes, &stats.HighScore, &stats.BestReward, &stats.AvgReward, &stats.TotalSteps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM episodes WHERE env_id = ? ORDER BY created_at DESC LIMIT 1`,
		envID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}

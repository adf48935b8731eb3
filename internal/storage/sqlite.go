// Package storage keeps the round history of the running session in an
// in-memory SQLite database. Nothing is written to disk; the history is
// gone when the process exits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the session database.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	EggColor  string
	Outcome   string // "won" or "lost"
	Score     float64
	Level     int
	Hatch     int
	Elapsed   time.Duration
	CreatedAt time.Time
}

// SessionStats aggregates every round of the session.
type SessionStats struct {
	Rounds    int
	Wins      int
	BestScore float64
	TotalTime time.Duration
}

// Open creates an empty in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			egg_color TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score REAL NOT NULL,
			level INTEGER NOT NULL,
			hatch INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(outcome, score DESC);
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

// SaveRound records a finished round and returns its ID.
// A zero CreatedAt is replaced by the current time.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (egg_color, outcome, score, level, hatch, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.EggColor, r.Outcome, r.Score, r.Level, r.Hatch, r.Elapsed.Milliseconds(), r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds returns up to limit rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, egg_color, outcome, score, level, hatch, elapsed_ms, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var elapsedMs, createdMs int64
		if err := rows.Scan(&r.ID, &r.EggColor, &r.Outcome, &r.Score, &r.Level, &r.Hatch, &elapsedMs, &createdMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		r.CreatedAt = time.UnixMilli(createdMs)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestScore returns the highest score of a won round.
// Lost rounds never count. Returns 0 if nothing was won yet.
func (s *Store) BestScore() (float64, error) {
	var score sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE outcome = 'won'",
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return score.Float64, nil
}

// Stats returns aggregate numbers for the session.
func (s *Store) Stats() (SessionStats, error) {
	var stats SessionStats
	var totalMs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(CASE WHEN outcome = 'won' THEN score END), 0),
		        COALESCE(SUM(elapsed_ms), 0)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.Wins, &stats.BestScore, &totalMs)
	if err != nil {
		return SessionStats{}, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	stats.TotalTime = time.Duration(totalMs) * time.Millisecond
	return stats, nil
}

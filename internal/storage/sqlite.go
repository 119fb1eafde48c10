// Package storage persists scores: a one-line high-score file for the game
// itself and a SQLite history of finished sessions. The history uses the
// pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// migrations are applied in order; PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE sessions (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id  TEXT    NOT NULL,
		mode        TEXT    NOT NULL,
		score       INTEGER NOT NULL,
		spawns      INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		finished_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX sessions_by_score ON sessions(mode, score DESC, id);`,
}

// statsColumns aggregates one mode's history; shared by Stats and AllStats.
const statsColumns = `mode, COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(SUM(score), 0), COALESCE(SUM(spawns), 0), COALESCE(SUM(duration_ms), 0), MAX(finished_at)`

// Store is the session history database.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished session.
type ScoreEntry struct {
	ID        int64
	SessionID string
	GameID    string
	Score     int
	Spawns    int
	Duration  time.Duration
	CreatedAt time.Time
}

// GameStats aggregates the history of one mode.
type GameStats struct {
	GameID      string
	GamesCount  int
	HighScore   int
	AvgScore    float64
	TotalScore  int64
	TotalSpawns int64
	PlayTime    time.Duration
	LastPlayed  time.Time
}

// Open opens the database at dbPath, creating it and its directory when
// missing, and brings the schema up to date. A leading ~ is expanded.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", dbPath, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("storage: cannot read schema version: %w", err)
	}
	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		// PRAGMA does not accept bound parameters.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a finished session and returns its row ID.
// An empty SessionID gets a fresh UUID.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	if e.SessionID == "" {
		e.SessionID = uuid.NewString()
	}
	res, err := s.db.Exec(
		`INSERT INTO sessions (session_id, mode, score, spawns, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		e.SessionID, e.GameID, e.Score, e.Spawns, e.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns up to limit sessions of a mode, best first.
// Ties keep the earlier session ahead. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, session_id, mode, score, spawns, duration_ms, finished_at
		 FROM sessions WHERE mode = ?
		 ORDER BY score DESC, id
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e        ScoreEntry
			ms       int64
			finished any
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.GameID, &e.Score, &e.Spawns, &ms, &finished); err != nil {
			return nil, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		e.CreatedAt = parseTime(finished)
		out = append(out, e)
	}
	return out, rows.Err()
}

// HighScore returns the best score of a mode, 0 when it was never played.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM sessions WHERE mode = ?`, gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return best, nil
}

// ClearScores deletes the history of a mode.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE mode = ?`, gameID); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// Stats aggregates the history of one mode. A mode never played yields
// zero counts and a zero LastPlayed.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	row := s.db.QueryRow(`SELECT `+statsColumns+` FROM sessions WHERE mode = ?`, gameID)
	gs, err := scanStats(row)
	if err != nil {
		return nil, err
	}
	gs.GameID = gameID
	return gs, nil
}

// AllStats aggregates every mode that has history, keyed by mode.
func (s *Store) AllStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM sessions GROUP BY mode`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*GameStats)
	for rows.Next() {
		gs, err := scanStats(rows)
		if err != nil {
			return nil, err
		}
		out[gs.GameID] = gs
	}
	return out, rows.Err()
}

// scanStats reads one statsColumns row from a *sql.Row or *sql.Rows.
func scanStats(row interface{ Scan(...any) error }) (*GameStats, error) {
	var (
		gs   GameStats
		mode sql.NullString
		ms   int64
		last any
	)
	err := row.Scan(&mode, &gs.GamesCount, &gs.HighScore, &gs.AvgScore,
		&gs.TotalScore, &gs.TotalSpawns, &ms, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot scan stats: %w", err)
	}
	gs.GameID = mode.String
	gs.PlayTime = time.Duration(ms) * time.Millisecond
	gs.LastPlayed = parseTime(last)
	return &gs, nil
}

// parseTime accepts the time.Time or text forms the driver returns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.DateTime, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

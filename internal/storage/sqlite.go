// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/connectx/internal/game"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// MatchResult represents one finished game.
type MatchResult struct {
	ID         int64
	MatchID    string
	Variant    string
	Rows       int
	Columns    int
	InARow     int
	Players    int
	Winner     string // Empty for a draw
	Outcome    string // "won", "draw", "early-draw"
	Moves      int
	DurationMS int64
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

	// SQLite allows a single writer; concurrent replays share this store.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			board_rows INTEGER NOT NULL,
			board_columns INTEGER NOT NULL,
			in_a_row INTEGER NOT NULL,
			players INTEGER NOT NULL,
			winner TEXT,
			outcome TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(result MatchResult) (int64, error) {
	var winner sql.NullString
	if result.Winner != "" {
		winner = sql.NullString{String: result.Winner, Valid: true}
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (match_id, variant, board_rows, board_columns, in_a_row, players, winner, outcome, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.MatchID,
		result.Variant,
		result.Rows,
		result.Columns,
		result.InARow,
		result.Players,
		winner,
		result.Outcome,
		result.Moves,
		result.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, match_id, variant, board_rows, board_columns, in_a_row, players,
	winner, outcome, moves, duration_ms, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(sc rowScanner) (MatchResult, error) {
	var result MatchResult
	var winner sql.NullString
	var createdAt any

	err := sc.Scan(
		&result.ID,
		&result.MatchID,
		&result.Variant,
		&result.Rows,
		&result.Columns,
		&result.InARow,
		&result.Players,
		&winner,
		&result.Outcome,
		&result.Moves,
		&result.DurationMS,
		&createdAt,
	)
	if err != nil {
		return MatchResult{}, err
	}

	if winner.Valid {
		result.Winner = winner.String
	}
	result.CreatedAt = parseTimestamp(createdAt)
	return result, nil
}

// parseTimestamp handles both time.Time and string datetimes.
func parseTimestamp(v any) time.Time {
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

// ResultByMatchID retrieves a result by its match ID.
// Returns nil without error if no such match was stored.
func (s *Store) ResultByMatchID(matchID string) (*MatchResult, error) {
	row := s.db.QueryRow(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE match_id = ?`,
		matchID,
	)

	result, err := scanResult(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &result, nil
}

// RecentResults retrieves the most recent results, newest first.
// An empty variant matches every variant.
func (s *Store) RecentResults(variant string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE ? = '' OR variant = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearResults deletes all results for the given variant.
func (s *Store) ClearResults(variant string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// SaveMatchResult implements game.ResultSaver.
func (s *Store) SaveMatchResult(data game.ResultData) error {
	result := MatchResult{
		MatchID:    data.MatchID,
		Variant:    data.Variant,
		Rows:       data.Rows,
		Columns:    data.Columns,
		InARow:     data.InARow,
		Players:    data.Players,
		Winner:     data.Winner,
		Outcome:    data.Outcome,
		Moves:      data.Moves,
		DurationMS: data.DurationMS,
	}
	_, err := s.SaveResult(result)
	return err
}

// Ensure Store implements ResultSaver
var _ game.ResultSaver = (*Store)(nil)

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant    string
	Games      int
	Wins       int
	Draws      int
	EarlyDraws int
	AvgMoves   float64
	LastPlayed time.Time
}

// VariantStats retrieves aggregated statistics for a specific variant.
func (s *Store) VariantStats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'draw'), 0),
		        COALESCE(SUM(outcome = 'early-draw'), 0),
		        COALESCE(AVG(moves), 0),
		        MAX(created_at)
		 FROM results WHERE variant = ?`,
		variant,
	).Scan(&stats.Games, &stats.Wins, &stats.Draws, &stats.EarlyDraws, &stats.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// AllVariantStats retrieves statistics for every variant that has results.
func (s *Store) AllVariantStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*),
		        SUM(outcome = 'won'), SUM(outcome = 'draw'), SUM(outcome = 'early-draw'),
		        AVG(moves), MAX(created_at)
		 FROM results
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all variant stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var vs VariantStats
		var lastPlayed any
		if err := rows.Scan(&vs.Variant, &vs.Games, &vs.Wins, &vs.Draws, &vs.EarlyDraws, &vs.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		vs.LastPlayed = parseTimestamp(lastPlayed)
		stats[vs.Variant] = &vs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

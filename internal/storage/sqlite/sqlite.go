// Package sqlite provides a SQLite-backed implementation of the storage.ResultStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/scoreboard/internal/models"
	"github.com/mmynk/scoreboard/internal/storage"
)

// Ensure SQLiteStore implements storage.ResultStore
var _ storage.ResultStore = (*SQLiteStore)(nil)

// SQLiteStore implements storage.ResultStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ArchiveResult persists a finished match.
func (s *SQLiteStore) ArchiveResult(ctx context.Context, result *models.Result) error {
	if result.MatchID == uuid.Nil {
		return fmt.Errorf("result has no match ID")
	}
	if result.FinishedAt.IsZero() {
		result.FinishedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (match_id, home, away, home_score, away_score, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.MatchID.String(), result.HomeParticipant, result.AwayParticipant,
		result.HomeScore, result.AwayScore,
		result.StartedAt.UnixNano(), result.FinishedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}

	return nil
}

// GetResult retrieves the archived result for a match.
func (s *SQLiteStore) GetResult(ctx context.Context, matchID uuid.UUID) (*models.Result, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT match_id, home, away, home_score, away_score, started_at, finished_at
		 FROM results WHERE match_id = ?`,
		matchID.String(),
	)

	result, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, matchID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return &result, nil
}

// ListResults returns archived results, most recently finished first.
func (s *SQLiteStore) ListResults(ctx context.Context, participant string, limit int) ([]models.Result, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT match_id, home, away, home_score, away_score, started_at, finished_at
		 FROM results
		 WHERE ? = '' OR home = ? OR away = ?
		 ORDER BY finished_at DESC, rowid DESC
		 LIMIT ?`,
		participant, participant, participant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}

	return results, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (models.Result, error) {
	var (
		result                models.Result
		matchID               string
		startedAt, finishedAt int64
	)
	err := row.Scan(&matchID, &result.HomeParticipant, &result.AwayParticipant,
		&result.HomeScore, &result.AwayScore, &startedAt, &finishedAt)
	if err != nil {
		return models.Result{}, err
	}

	result.MatchID, err = uuid.Parse(matchID)
	if err != nil {
		return models.Result{}, fmt.Errorf("invalid match ID %q: %w", matchID, err)
	}
	result.StartedAt = time.Unix(0, startedAt)
	result.FinishedAt = time.Unix(0, finishedAt)
	return result, nil
}

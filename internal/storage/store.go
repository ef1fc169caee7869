// Package storage provides abstractions for the finished-result archive.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mmynk/scoreboard/internal/models"
)

// ErrNotFound is returned when a requested result does not exist.
var ErrNotFound = errors.New("result not found")

// ResultStore defines the archive of finished matches.
// Active matches never live here; the registry owns them until they finish.
type ResultStore interface {
	// ArchiveResult records a finished match.
	// Archiving the same match ID twice is an error.
	ArchiveResult(ctx context.Context, result *models.Result) error

	// GetResult retrieves the result archived for a match ID.
	// Returns ErrNotFound if the match was never archived.
	GetResult(ctx context.Context, matchID uuid.UUID) (*models.Result, error)

	// ListResults returns archived results, most recently finished first.
	// An empty participant matches every result; limit <= 0 means no limit.
	ListResults(ctx context.Context, participant string, limit int) ([]models.Result, error)

	// Close releases any resources held by the store.
	Close() error
}

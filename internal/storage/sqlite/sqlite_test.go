package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/scoreboard/internal/models"
	"github.com/mmynk/scoreboard/internal/storage"
)

func newResult(home, away string, homeScore, awayScore int, finishedAt time.Time) *models.Result {
	return &models.Result{
		MatchID:         uuid.New(),
		HomeParticipant: home,
		AwayParticipant: away,
		HomeScore:       homeScore,
		AwayScore:       awayScore,
		StartedAt:       finishedAt.Add(-90 * time.Minute),
		FinishedAt:      finishedAt,
	}
}

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "scoreboard-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 6, 11, 20, 0, 0, 0, time.UTC)

	t.Run("ArchiveResult and GetResult round trip", func(t *testing.T) {
		original := newResult("Portugal", "Greece", 2, 1, base)
		if err := store.ArchiveResult(ctx, original); err != nil {
			t.Fatalf("ArchiveResult failed: %v", err)
		}

		retrieved, err := store.GetResult(ctx, original.MatchID)
		if err != nil {
			t.Fatalf("GetResult failed: %v", err)
		}

		if retrieved.MatchID != original.MatchID {
			t.Errorf("MatchID mismatch: got %s, want %s", retrieved.MatchID, original.MatchID)
		}
		if retrieved.HomeParticipant != "Portugal" || retrieved.AwayParticipant != "Greece" {
			t.Errorf("participants mismatch: got %s/%s", retrieved.HomeParticipant, retrieved.AwayParticipant)
		}
		if retrieved.HomeScore != 2 || retrieved.AwayScore != 1 {
			t.Errorf("score mismatch: got %d-%d", retrieved.HomeScore, retrieved.AwayScore)
		}
		if !retrieved.StartedAt.Equal(original.StartedAt) {
			t.Errorf("StartedAt mismatch: got %v, want %v", retrieved.StartedAt, original.StartedAt)
		}
		if !retrieved.FinishedAt.Equal(original.FinishedAt) {
			t.Errorf("FinishedAt mismatch: got %v, want %v", retrieved.FinishedAt, original.FinishedAt)
		}
	})

	t.Run("timestamps keep sub-millisecond precision", func(t *testing.T) {
		result := newResult("Chile", "Peru", 0, 0, base.Add(123456789*time.Nanosecond))
		if err := store.ArchiveResult(ctx, result); err != nil {
			t.Fatalf("ArchiveResult failed: %v", err)
		}

		retrieved, err := store.GetResult(ctx, result.MatchID)
		if err != nil {
			t.Fatalf("GetResult failed: %v", err)
		}
		if !retrieved.FinishedAt.Equal(result.FinishedAt) {
			t.Errorf("FinishedAt mismatch: got %v, want %v", retrieved.FinishedAt, result.FinishedAt)
		}
	})

	t.Run("GetResult returns ErrNotFound for unknown match", func(t *testing.T) {
		_, err := store.GetResult(ctx, uuid.New())
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected storage.ErrNotFound, got %v", err)
		}
	})

	t.Run("ArchiveResult rejects duplicate match ID", func(t *testing.T) {
		result := newResult("Spain", "Brazil", 10, 2, base)
		if err := store.ArchiveResult(ctx, result); err != nil {
			t.Fatalf("ArchiveResult failed: %v", err)
		}
		if err := store.ArchiveResult(ctx, result); err == nil {
			t.Error("Expected error archiving the same match twice")
		}
	})

	t.Run("ArchiveResult rejects missing match ID", func(t *testing.T) {
		result := newResult("Mexico", "Canada", 0, 5, base)
		result.MatchID = uuid.Nil
		if err := store.ArchiveResult(ctx, result); err == nil {
			t.Error("Expected error for nil match ID")
		}
	})
}

func TestListResults(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 6, 11, 20, 0, 0, 0, time.UTC)

	archived := []*models.Result{
		newResult("Mexico", "Canada", 0, 5, base),
		newResult("Spain", "Brazil", 10, 2, base.Add(time.Minute)),
		newResult("Canada", "Italy", 1, 1, base.Add(2*time.Minute)),
	}
	for _, r := range archived {
		if err := store.ArchiveResult(ctx, r); err != nil {
			t.Fatalf("ArchiveResult failed: %v", err)
		}
	}

	tests := []struct {
		name        string
		participant string
		limit       int
		want        []string
	}{
		{"all results newest first", "", 0, []string{"Canada", "Spain", "Mexico"}},
		{"limit", "", 2, []string{"Canada", "Spain"}},
		{"participant on either side", "Canada", 0, []string{"Canada", "Mexico"}},
		{"unknown participant", "Portugal", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := store.ListResults(ctx, tt.participant, tt.limit)
			if err != nil {
				t.Fatalf("ListResults failed: %v", err)
			}
			if len(results) != len(tt.want) {
				t.Fatalf("Expected %d results, got %d", len(tt.want), len(results))
			}
			for i, home := range tt.want {
				if results[i].HomeParticipant != home {
					t.Errorf("result %d: got home %s, want %s", i, results[i].HomeParticipant, home)
				}
			}
		})
	}
}

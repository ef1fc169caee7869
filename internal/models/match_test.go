package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMatch(t *testing.T) {
	m := Match{
		ID:              uuid.New(),
		HomeParticipant: "Team1",
		AwayParticipant: "Team2",
		HomeScore:       3,
		AwayScore:       2,
		StartedAt:       time.Now(),
	}

	t.Run("TotalScore sums both sides", func(t *testing.T) {
		if got := m.TotalScore(); got != 5 {
			t.Errorf("TotalScore() = %d, want 5", got)
		}
	})

	t.Run("String formats home then away", func(t *testing.T) {
		if got := m.String(); got != "Team1 3 - Team2 2" {
			t.Errorf("String() = %q, want %q", got, "Team1 3 - Team2 2")
		}
	})
}

func TestNewResult(t *testing.T) {
	started := time.Date(2026, 6, 11, 18, 0, 0, 0, time.UTC)
	finished := started.Add(105 * time.Minute)
	m := Match{
		ID:              uuid.New(),
		HomeParticipant: "Mexico",
		AwayParticipant: "Canada",
		HomeScore:       0,
		AwayScore:       5,
		StartedAt:       started,
	}

	r := NewResult(m, finished)
	if r.MatchID != m.ID {
		t.Errorf("MatchID mismatch: got %s, want %s", r.MatchID, m.ID)
	}
	if r.HomeParticipant != "Mexico" || r.AwayParticipant != "Canada" {
		t.Errorf("participants mismatch: got %s/%s", r.HomeParticipant, r.AwayParticipant)
	}
	if r.TotalScore() != 5 {
		t.Errorf("TotalScore() = %d, want 5", r.TotalScore())
	}
	if !r.StartedAt.Equal(started) || !r.FinishedAt.Equal(finished) {
		t.Errorf("timestamps mismatch: started %v finished %v", r.StartedAt, r.FinishedAt)
	}
}

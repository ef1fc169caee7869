package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Match represents one contest in progress.
type Match struct {
	// ID is the synthetic identifier assigned when the match starts.
	ID uuid.UUID

	// HomeParticipant and AwayParticipant name the two sides.
	// Both are non-empty and differ from each other.
	HomeParticipant string
	AwayParticipant string

	// HomeScore and AwayScore are never negative.
	HomeScore int
	AwayScore int

	// StartedAt is set once at creation and never changes.
	StartedAt time.Time
}

// TotalScore returns the combined score of both sides.
func (m Match) TotalScore() int {
	return m.HomeScore + m.AwayScore
}

// String renders the match as "Home 3 - Away 2".
func (m Match) String() string {
	return fmt.Sprintf("%s %d - %s %d", m.HomeParticipant, m.HomeScore, m.AwayParticipant, m.AwayScore)
}

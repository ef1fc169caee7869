package models

import (
	"time"

	"github.com/google/uuid"
)

// Result is a finished match as stored in the result archive.
type Result struct {
	// MatchID is the ID the match had while it was active.
	MatchID uuid.UUID

	HomeParticipant string
	AwayParticipant string
	HomeScore       int
	AwayScore       int

	StartedAt  time.Time
	FinishedAt time.Time
}

// NewResult builds the archive record for a match finished at the given time.
func NewResult(m Match, finishedAt time.Time) Result {
	return Result{
		MatchID:         m.ID,
		HomeParticipant: m.HomeParticipant,
		AwayParticipant: m.AwayParticipant,
		HomeScore:       m.HomeScore,
		AwayScore:       m.AwayScore,
		StartedAt:       m.StartedAt,
		FinishedAt:      finishedAt,
	}
}

// TotalScore returns the combined final score.
func (r Result) TotalScore() int {
	return r.HomeScore + r.AwayScore
}

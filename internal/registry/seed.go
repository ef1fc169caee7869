package registry

import (
	"fmt"

	"github.com/mmynk/scoreboard/internal/models"
)

// Fixture describes a match to start during seeding, with its current score.
type Fixture struct {
	Home      string
	Away      string
	HomeScore int
	AwayScore int
}

// Seed starts and scores each fixture in order. It is meant to run once,
// before the registry is shared. If any fixture is rejected, every match
// started by this call is removed again and the error names the fixture.
func (r *Registry) Seed(fixtures []Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	started := make([]models.Match, 0, len(fixtures))
	rollback := func() {
		for _, m := range started {
			r.remove(m)
		}
	}

	for i, f := range fixtures {
		if err := checkScores(f.HomeScore, f.AwayScore); err != nil {
			rollback()
			return fmt.Errorf("fixture %d (%s vs %s): %w", i, f.Home, f.Away, err)
		}
		s, err := r.start(f.Home, f.Away)
		if err != nil {
			rollback()
			return fmt.Errorf("fixture %d (%s vs %s): %w", i, f.Home, f.Away, err)
		}
		s.match.HomeScore = f.HomeScore
		s.match.AwayScore = f.AwayScore
		started = append(started, s.match)
	}
	return nil
}

package registry

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/scoreboard/internal/models"
)

// slot is the arena cell holding one active match.
type slot struct {
	match models.Match
	// seq orders matches by creation; it breaks ties between identical start times.
	seq uint64
}

// Registry is the exclusive owner of all active matches.
type Registry struct {
	mu      sync.Mutex
	arena   map[uuid.UUID]*slot
	index   map[string]uuid.UUID
	nextSeq uint64

	now func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the time source used for StartedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		arena: make(map[uuid.UUID]*slot),
		index: make(map[string]uuid.UUID),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StartMatch creates a match between home and away with a 0-0 score.
func (r *Registry) StartMatch(home, away string) (models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.start(home, away)
	if err != nil {
		return models.Match{}, err
	}
	return s.match, nil
}

// UpdateScore overwrites the score of the match between home and away.
// home must be the match's home participant and away its away participant;
// a reversed pair is reported as ErrNotFound rather than matched.
func (r *Registry) UpdateScore(home, away string, homeScore, awayScore int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.resolve(home, away)
	if err != nil {
		return err
	}
	if err := checkScores(homeScore, awayScore); err != nil {
		return err
	}

	s.match.HomeScore = homeScore
	s.match.AwayScore = awayScore
	return nil
}

// FinishMatch removes the match between home and away and returns its final state.
// Both participants become free to start new matches. As with UpdateScore,
// a reversed home/away pair is ErrNotFound.
func (r *Registry) FinishMatch(home, away string) (models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.resolve(home, away)
	if err != nil {
		return models.Match{}, err
	}
	r.remove(s.match)
	return s.match, nil
}

// ListActiveMatches returns every active match once, in the order they started.
func (r *Registry) ListActiveMatches() []models.Match {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := r.slots()
	slices.SortFunc(slots, func(a, b *slot) int {
		return cmp.Compare(a.seq, b.seq)
	})
	return matches(slots)
}

// SummaryByTotalScore returns every active match ordered by total score,
// highest first. Matches with equal totals are ordered by start time, most
// recently started first.
func (r *Registry) SummaryByTotalScore() []models.Match {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := r.slots()
	slices.SortFunc(slots, func(a, b *slot) int {
		if c := cmp.Compare(b.match.TotalScore(), a.match.TotalScore()); c != 0 {
			return c
		}
		if c := b.match.StartedAt.Compare(a.match.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})
	return matches(slots)
}

// Lookup returns the active match the participant is playing in.
func (r *Registry) Lookup(participant string) (models.Match, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.index[participant]
	if !ok {
		return models.Match{}, false
	}
	return r.arena[id].match, true
}

// Len returns the number of active matches.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.arena)
}

// start validates the pair and inserts a new match. Callers hold r.mu.
func (r *Registry) start(home, away string) (*slot, error) {
	if strings.TrimSpace(home) == "" || strings.TrimSpace(away) == "" {
		return nil, fmt.Errorf("%w: both home and away participants are required", ErrInvalidArgument)
	}
	if home == away {
		return nil, fmt.Errorf("%w: %q cannot play against itself", ErrInvalidArgument, home)
	}
	for _, name := range []string{home, away} {
		if _, playing := r.index[name]; playing {
			return nil, fmt.Errorf("%w: %q", ErrConflict, name)
		}
	}

	s := &slot{
		match: models.Match{
			ID:              uuid.New(),
			HomeParticipant: home,
			AwayParticipant: away,
			StartedAt:       r.now(),
		},
		seq: r.nextSeq,
	}
	r.nextSeq++

	r.arena[s.match.ID] = s
	r.index[home] = s.match.ID
	r.index[away] = s.match.ID
	return s, nil
}

// resolve finds the match indexed under both names with home and away on the
// expected sides. Callers hold r.mu.
func (r *Registry) resolve(home, away string) (*slot, error) {
	homeID, homeOK := r.index[home]
	awayID, awayOK := r.index[away]
	if !homeOK || !awayOK || homeID != awayID {
		return nil, fmt.Errorf("%w: %s vs %s", ErrNotFound, home, away)
	}

	s := r.arena[homeID]
	if s.match.HomeParticipant != home || s.match.AwayParticipant != away {
		return nil, fmt.Errorf("%w: %s vs %s (sides reversed)", ErrNotFound, home, away)
	}
	return s, nil
}

// checkScores rejects negative scores and pairs whose total does not fit in an int.
func checkScores(homeScore, awayScore int) error {
	if homeScore < 0 || awayScore < 0 {
		return fmt.Errorf("%w: scores cannot be negative (got %d-%d)", ErrInvalidArgument, homeScore, awayScore)
	}
	if homeScore > math.MaxInt-awayScore {
		return fmt.Errorf("%w: total score overflows (got %d-%d)", ErrInvalidArgument, homeScore, awayScore)
	}
	return nil
}

// remove drops a match from the arena and both index entries. Callers hold r.mu.
func (r *Registry) remove(m models.Match) {
	delete(r.index, m.HomeParticipant)
	delete(r.index, m.AwayParticipant)
	delete(r.arena, m.ID)
}

func (r *Registry) slots() []*slot {
	out := make([]*slot, 0, len(r.arena))
	for _, s := range r.arena {
		out = append(out, s)
	}
	return out
}

func matches(slots []*slot) []models.Match {
	out := make([]models.Match, len(slots))
	for i, s := range slots {
		out[i] = s.match
	}
	return out
}

package registry

import (
	"errors"
	"math"
	"testing"
)

func TestSeed(t *testing.T) {
	t.Run("seeds fixtures in order", func(t *testing.T) {
		r := newTestRegistry()
		err := r.Seed([]Fixture{
			{Home: "Mexico", Away: "Canada", HomeScore: 0, AwayScore: 5},
			{Home: "Uruguay", Away: "Italy", HomeScore: 6, AwayScore: 6},
			{Home: "Spain", Away: "Brazil", HomeScore: 10, AwayScore: 2},
			{Home: "Argentina", Away: "Australia", HomeScore: 3, AwayScore: 1},
			{Home: "Germany", Away: "France", HomeScore: 2, AwayScore: 2},
		})
		if err != nil {
			t.Fatalf("Seed failed: %v", err)
		}

		assertOrder(t, r.ListActiveMatches(),
			"Mexico-Canada", "Uruguay-Italy", "Spain-Brazil", "Argentina-Australia", "Germany-France")
		assertOrder(t, r.SummaryByTotalScore(),
			"Spain-Brazil", "Uruguay-Italy", "Mexico-Canada", "Germany-France", "Argentina-Australia")
	})

	t.Run("rejected fixture rolls back the whole seed", func(t *testing.T) {
		r := newTestRegistry()
		err := r.Seed([]Fixture{
			{Home: "Mexico", Away: "Canada"},
			{Home: "Spain", Away: "Brazil"},
			{Home: "Canada", Away: "Italy"},
		})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		if r.Len() != 0 {
			t.Errorf("Len() = %d, want 0", r.Len())
		}
		if _, ok := r.Lookup("Mexico"); ok {
			t.Error("Mexico should not remain indexed")
		}
	})

	t.Run("negative fixture score", func(t *testing.T) {
		r := newTestRegistry()
		err := r.Seed([]Fixture{
			{Home: "Mexico", Away: "Canada", HomeScore: 1},
			{Home: "Spain", Away: "Brazil", HomeScore: -2},
		})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
		if r.Len() != 0 {
			t.Errorf("Len() = %d, want 0", r.Len())
		}
	})

	t.Run("fixture total overflows", func(t *testing.T) {
		r := newTestRegistry()
		err := r.Seed([]Fixture{
			{Home: "Mexico", Away: "Canada", HomeScore: math.MaxInt, AwayScore: 1},
		})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
		if r.Len() != 0 {
			t.Errorf("Len() = %d, want 0", r.Len())
		}
	})

	t.Run("seeded registry accepts new matches", func(t *testing.T) {
		r := newTestRegistry()
		if err := r.Seed([]Fixture{{Home: "Mexico", Away: "Canada"}}); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		mustStart(t, r, "Portugal", "Greece")
		if r.Len() != 2 {
			t.Errorf("Len() = %d, want 2", r.Len())
		}
	})
}

// Package fixtures loads the matches used to seed a fresh registry.
//
// A seed file is YAML:
//
//	matches:
//	  - home: Mexico
//	    away: Canada
//	    home_score: 0
//	    away_score: 5
//
// Entries are started in file order, so later entries count as more
// recently started when the summary breaks ties.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/scoreboard/internal/registry"
)

//go:embed default.yaml
var defaultSeed []byte

// ErrInvalidFixture reports a seed entry that can never be started.
var ErrInvalidFixture = errors.New("invalid fixture")

type seedFile struct {
	Matches []entry `yaml:"matches"`
}

type entry struct {
	Home      string `yaml:"home"`
	Away      string `yaml:"away"`
	HomeScore int    `yaml:"home_score"`
	AwayScore int    `yaml:"away_score"`
}

// Default returns the built-in seed set.
func Default() ([]registry.Fixture, error) {
	return Parse(defaultSeed)
}

// Load reads and parses a seed file.
func Load(path string) ([]registry.Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	fixtures, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fixtures, nil
}

// Parse decodes seed YAML and validates each entry.
func Parse(data []byte) ([]registry.Fixture, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	fixtures := make([]registry.Fixture, 0, len(file.Matches))
	for i, e := range file.Matches {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("match %d: %w", i, err)
		}
		fixtures = append(fixtures, registry.Fixture{
			Home:      e.Home,
			Away:      e.Away,
			HomeScore: e.HomeScore,
			AwayScore: e.AwayScore,
		})
	}
	return fixtures, nil
}

func (e entry) validate() error {
	if strings.TrimSpace(e.Home) == "" || strings.TrimSpace(e.Away) == "" {
		return fmt.Errorf("%w: home and away are required", ErrInvalidFixture)
	}
	if e.HomeScore < 0 || e.AwayScore < 0 {
		return fmt.Errorf("%w: %s vs %s has a negative score", ErrInvalidFixture, e.Home, e.Away)
	}
	return nil
}

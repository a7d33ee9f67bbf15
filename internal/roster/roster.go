package roster

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"courtsim/internal/match"
)

// Entry is one team in a league file.
type Entry struct {
	Key            string `yaml:"key"`
	match.TeamSpec `yaml:",inline"`
}

// League is a set of teams loaded from YAML.
type League struct {
	Name  string  `yaml:"name,omitempty"`
	Teams []Entry `yaml:"teams"`
}

// Load reads a YAML league definition from disk and validates every team.
func Load(path string) (*League, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var l League
	if err := yaml.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks every team has a unique key and a legal lineup.
func (l *League) Validate() error {
	seen := make(map[string]bool, len(l.Teams))
	for _, e := range l.Teams {
		if e.Key == "" {
			return fmt.Errorf("team %q has no key", e.Name)
		}
		if seen[e.Key] {
			return fmt.Errorf("team key %q defined twice", e.Key)
		}
		seen[e.Key] = true
		if err := match.ValidateTeam(e.TeamSpec); err != nil {
			return err
		}
	}
	return nil
}

// Lookup resolves a team key. League teams shadow built-in ones; l may be
// nil.
func Lookup(l *League, key string) (match.TeamSpec, error) {
	if l != nil {
		for _, e := range l.Teams {
			if e.Key == key {
				return e.TeamSpec, nil
			}
		}
	}
	if t, ok := BuiltIn()[key]; ok {
		return t, nil
	}
	return match.TeamSpec{}, fmt.Errorf("unknown team %q (known: %v)", key, Keys(l))
}

// Keys lists every resolvable team key in sorted order.
func Keys(l *League) []string {
	set := map[string]bool{}
	for k := range BuiltIn() {
		set[k] = true
	}
	if l != nil {
		for _, e := range l.Teams {
			set[e.Key] = true
		}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

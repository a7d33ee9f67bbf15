// YAML match configuration loader with CUE validation integration
package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"courtsim/internal/match"
	"courtsim/internal/roster"
)

// Export names the GreptimeDB database and tables exports are written to.
type Export struct {
	Database   string `yaml:"database"`
	EventTable string `yaml:"event_table"`
	StatTable  string `yaml:"stat_table"`
}

// MatchConfig is the root configuration of a simulated match
type MatchConfig struct {
	Scale               float64 `yaml:"scale"`
	SecondsPerTick      float64 `yaml:"seconds_per_tick"`
	PeriodSeconds       float64 `yaml:"period_seconds"`
	OvertimeSeconds     float64 `yaml:"overtime_seconds"`
	ShotClockSeconds    float64 `yaml:"shot_clock_seconds"`
	AssistWindowSeconds float64 `yaml:"assist_window_seconds"`
	Tempo               float64 `yaml:"tempo"`
	BallSpeed           float64 `yaml:"ball_speed"`
	UserSpeedBoost      float64 `yaml:"user_speed_boost"`
	// Seed zero means seed from the wall clock.
	Seed        int64  `yaml:"seed"`
	StartInMenu bool   `yaml:"start_in_menu"`
	Home        string `yaml:"home"`
	Away        string `yaml:"away"`
	RosterFile  string `yaml:"roster_file"`
	Export      Export `yaml:"export"`
}

// Default returns the classic exhibition setup.
func Default() *MatchConfig {
	return &MatchConfig{
		Scale:               8,
		SecondsPerTick:      0.05,
		PeriodSeconds:       600,
		OvertimeSeconds:     120,
		ShotClockSeconds:    24,
		AssistWindowSeconds: 2.5,
		Tempo:               50,
		BallSpeed:           60,
		UserSpeedBoost:      1.2,
		Home:                "2012",
		Away:                "1992",
		Export: Export{
			Database:   "public",
			EventTable: "match_events",
			StatTable:  "match_stat_lines",
		},
	}
}

// Load loads YAML config and validates it against a CUE schema. Keys
// missing from the file keep their defaults.
func Load(configPath, cueSchemaPath string) (*MatchConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}
	return cfg, nil
}

// ValidateWithCue validates a YAML configuration file against the #Match
// definition of a CUE schema file.
func ValidateWithCue(configFile, cueFile string) error {
	ctx := cuecontext.New()

	yamlBytes, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("cannot read YAML config: %w", err)
	}
	file, err := cueyaml.Extract(configFile, yamlBytes)
	if err != nil {
		return fmt.Errorf("cannot parse YAML config: %w", err)
	}
	configVal := ctx.BuildFile(file)
	if configVal.Err() != nil {
		return fmt.Errorf("cannot build YAML config: %w", configVal.Err())
	}

	schemaBytes, err := os.ReadFile(cueFile)
	if err != nil {
		return fmt.Errorf("cannot read CUE schema: %w", err)
	}
	schemaVal := ctx.CompileBytes(schemaBytes, cue.Filename(cueFile))
	if schemaVal.Err() != nil {
		return fmt.Errorf("cannot compile CUE schema: %w", schemaVal.Err())
	}
	def := schemaVal.LookupPath(cue.ParsePath("#Match"))
	if !def.Exists() {
		return fmt.Errorf("schema %s has no #Match definition", cueFile)
	}

	final := def.Unify(configVal)
	if err := final.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Settings resolves the configured teams and returns the match settings.
// league may be nil.
func (c *MatchConfig) Settings(league *roster.League) (match.Settings, error) {
	home, err := roster.Lookup(league, c.Home)
	if err != nil {
		return match.Settings{}, fmt.Errorf("home team: %w", err)
	}
	away, err := roster.Lookup(league, c.Away)
	if err != nil {
		return match.Settings{}, fmt.Errorf("away team: %w", err)
	}
	s := match.DefaultSettings(home, away)
	s.Scale = c.Scale
	s.SecondsPerTick = c.SecondsPerTick
	s.PeriodSeconds = c.PeriodSeconds
	s.OvertimeSeconds = c.OvertimeSeconds
	s.ShotClockSeconds = c.ShotClockSeconds
	s.AssistWindowSeconds = c.AssistWindowSeconds
	s.Tempo = c.Tempo
	s.BallSpeed = c.BallSpeed
	s.UserSpeedBoost = c.UserSpeedBoost
	s.StartInMenu = c.StartInMenu
	return s, s.Validate()
}

// League loads the configured roster file, or returns nil when none is set.
func (c *MatchConfig) League() (*roster.League, error) {
	if c.RosterFile == "" {
		return nil, nil
	}
	return roster.Load(c.RosterFile)
}

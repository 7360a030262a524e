// Package config provides YAML (and TOML) configuration loading and
// difficulty presets for Relative Hell.
package config

import (
	"fmt"
	"strings"
)

// RelHellConfig contains all configuration for the game.
type RelHellConfig struct {
	Physics    Physics    `yaml:"physics" toml:"physics"`
	View       View       `yaml:"view" toml:"view"`
	Ship       Ship       `yaml:"ship" toml:"ship"`
	Resources  Resources  `yaml:"resources" toml:"resources"`
	Particles  Particles  `yaml:"particles" toml:"particles"`
	Generation Generation `yaml:"generation" toml:"generation"`
}

// Physics defines how fast time runs and how hard the ship accelerates.
type Physics struct {
	SimSpeed        float64 `yaml:"sim_speed" toml:"sim_speed"`               // Proper time per wall second
	Accel           float64 `yaml:"accel" toml:"accel"`                       // Rapidity gained per unit of proper time
	PauseSpeed      float64 `yaml:"pause_speed" toml:"pause_speed"`           // View rotation speed while paused
	Scale           float64 `yaml:"scale" toml:"scale"`                       // Size of shapes and patterns
	MissileRapidity float64 `yaml:"missile_rapidity" toml:"missile_rapidity"` // Rapidity of fired missiles
}

// View defines which surface is drawn and how far objects are looked up.
type View struct {
	CrossMode         string  `yaml:"cross_mode" toml:"cross_mode"` // "sim", "cone-near" or "cone-far"
	FutureShown       float64 `yaml:"future_shown" toml:"future_shown"`
	FutureShownSpiral float64 `yaml:"future_shown_spiral" toml:"future_shown_spiral"`
	VisibleMinZ       float64 `yaml:"visible_min_z" toml:"visible_min_z"`
	ShipHistoryPeriod float64 `yaml:"ship_history_period" toml:"ship_history_period"`
}

// Ship defines the starting supplies.
type Ship struct {
	Hull          int     `yaml:"hull" toml:"hull"`
	Ammo          int     `yaml:"ammo" toml:"ammo"`
	Fuel          float64 `yaml:"fuel" toml:"fuel"`
	Oxygen        float64 `yaml:"oxygen" toml:"oxygen"`
	Invincibility float64 `yaml:"invincibility" toml:"invincibility"`   // Proper time of invulnerability after a crash or start
	StartDistance float64 `yaml:"start_distance" toml:"start_distance"` // Distance from the home star at start
}

// Resources defines what each pickup gives and the supply caps.
type Resources struct {
	HullGain   int     `yaml:"hull_gain" toml:"hull_gain"`
	HullMax    int     `yaml:"hull_max" toml:"hull_max"`
	GoldGain   int     `yaml:"gold_gain" toml:"gold_gain"`
	AmmoGain   int     `yaml:"ammo_gain" toml:"ammo_gain"`
	AmmoMax    int     `yaml:"ammo_max" toml:"ammo_max"`
	FuelGain   float64 `yaml:"fuel_gain" toml:"fuel_gain"`
	FuelMax    float64 `yaml:"fuel_max" toml:"fuel_max"`
	OxygenGain float64 `yaml:"oxygen_gain" toml:"oxygen_gain"`
	OxygenMax  float64 `yaml:"oxygen_max" toml:"oxygen_max"`
}

// Particles defines crash debris and engine exhaust.
type Particles struct {
	CrashQty      float64 `yaml:"crash_qty" toml:"crash_qty"`
	CrashRapidity float64 `yaml:"crash_rapidity" toml:"crash_rapidity"`
	CrashLife     float64 `yaml:"crash_life" toml:"crash_life"`
	FuelQty       float64 `yaml:"fuel_qty" toml:"fuel_qty"` // Mean particles per unit of rapidity burnt
	FuelRapidity  float64 `yaml:"fuel_rapidity" toml:"fuel_rapidity"`
	FuelLife      float64 `yaml:"fuel_life" toml:"fuel_life"`
	FuelSpread    float64 `yaml:"fuel_spread" toml:"fuel_spread"`
	EngineOffset  float64 `yaml:"engine_offset" toml:"engine_offset"`
}

// Generation controls the procedural generator.
type Generation struct {
	Disabled  bool    `yaml:"disabled" toml:"disabled"`
	Demo      bool    `yaml:"demo" toml:"demo"`             // Start with a fixed warm-up sequence
	Lookahead float64 `yaml:"lookahead" toml:"lookahead"`   // Generated ahead of the observer; 0 means future_shown
}

// Validate checks the values the simulation cannot work with.
func (c RelHellConfig) Validate() error {
	switch c.View.CrossMode {
	case "sim", "cone-near", "cone-far":
	default:
		return fmt.Errorf("config: unknown cross_mode %q", c.View.CrossMode)
	}
	if c.Physics.SimSpeed <= 0 {
		return fmt.Errorf("config: sim_speed must be positive, got %v", c.Physics.SimSpeed)
	}
	if c.Physics.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %v", c.Physics.Scale)
	}
	if c.View.FutureShown <= 0 || c.View.FutureShownSpiral <= 0 {
		return fmt.Errorf("config: future_shown and future_shown_spiral must be positive")
	}
	if c.Ship.Hull <= 0 {
		return fmt.Errorf("config: hull must be positive, got %d", c.Ship.Hull)
	}
	return nil
}

// LookaheadOrDefault returns how far ahead of the observer the generators run.
func (c RelHellConfig) LookaheadOrDefault() float64 {
	if c.Generation.Lookahead > 0 {
		return c.Generation.Lookahead
	}
	return c.View.FutureShown
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

package config

import "math"

// presetScaling is how a preset changes the configured supplies.
type presetScaling struct {
	oxygen        float64 // Multiplier for starting oxygen and its cap
	invincibility float64 // Multiplier for the invincibility window
	hull          int     // Added to starting hull
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {oxygen: 1.5, invincibility: 1.5, hull: 2},
	DifficultyNormal: {oxygen: 1, invincibility: 1, hull: 0},
	DifficultyHard:   {oxygen: 0.6, invincibility: 0.5, hull: -1},
}

// ApplyPreset modifies the config based on a difficulty preset.
// DifficultyFixed and unknown presets leave it unchanged.
func ApplyPreset(cfg *RelHellConfig, preset DifficultyPreset) {
	s, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Ship.Oxygen *= s.oxygen
	cfg.Resources.OxygenMax = math.Max(cfg.Resources.OxygenMax*s.oxygen, cfg.Ship.Oxygen)
	cfg.Ship.Invincibility *= s.invincibility
	cfg.Ship.Hull += s.hull
	if cfg.Ship.Hull < 1 {
		cfg.Ship.Hull = 1
	}
	if cfg.Resources.HullMax < cfg.Ship.Hull {
		cfg.Resources.HullMax = cfg.Ship.Hull
	}
}

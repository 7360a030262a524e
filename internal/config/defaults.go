package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/relhell.yaml
var defaultRelHellYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() RelHellConfig {
	return RelHellConfig{
		Physics: Physics{
			SimSpeed:        math.Pi / 10,
			Accel:           15,
			PauseSpeed:      5,
			Scale:           1,
			MissileRapidity: 3,
		},
		View: View{
			CrossMode:         "sim",
			FutureShown:       5 * 2 * math.Pi,
			FutureShownSpiral: 2 * 2 * math.Pi,
			VisibleMinZ:       0.1,
			ShipHistoryPeriod: 0.2,
		},
		Ship: Ship{
			Hull:          3,
			Ammo:          20,
			Fuel:          100,
			Oxygen:        100,
			Invincibility: 1.5,
			StartDistance: 0.2,
		},
		Resources: Resources{
			HullGain:   1,
			HullMax:    5,
			GoldGain:   1,
			AmmoGain:   20,
			AmmoMax:    50,
			FuelGain:   20,
			FuelMax:    150,
			OxygenGain: 20,
			OxygenMax:  150,
		},
		Particles: Particles{
			CrashQty:      64,
			CrashRapidity: 1,
			CrashLife:     0.5,
			FuelQty:       20,
			FuelRapidity:  1.5,
			FuelLife:      0.3,
			FuelSpread:    0.02,
			EngineOffset:  0.06,
		},
		Generation: Generation{
			Disabled:  false,
			Demo:      false,
			Lookahead: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRelHellYAML
}

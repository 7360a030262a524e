package relhell

import (
	"github.com/vovakirdan/relhell/internal/config"
	"github.com/vovakirdan/relhell/internal/world"
)

// PlayerData holds the ship's supplies and the run's counters.
type PlayerData struct {
	Hull   int
	Ammo   int
	Fuel   float64
	Oxygen float64
	Gold   int

	// Score is the furthest global time reached.
	Score float64

	RocksHit           int
	ResourcesCollected int
}

// newPlayerData returns the starting supplies.
func newPlayerData(cfg config.Ship) PlayerData {
	return PlayerData{
		Hull:   cfg.Hull,
		Ammo:   cfg.Ammo,
		Fuel:   cfg.Fuel,
		Oxygen: cfg.Oxygen,
	}
}

// gain applies a picked-up resource, respecting the caps.
func (p *PlayerData) gain(kind world.ResourceKind, cfg config.Resources) {
	switch kind {
	case world.ResourceHull:
		p.Hull = min(p.Hull+cfg.HullGain, max(cfg.HullMax, p.Hull))
	case world.ResourceGold:
		p.Gold += cfg.GoldGain
	case world.ResourceAmmo:
		p.Ammo = min(p.Ammo+cfg.AmmoGain, max(cfg.AmmoMax, p.Ammo))
	case world.ResourceFuel:
		p.Fuel = min(p.Fuel+cfg.FuelGain, max(cfg.FuelMax, p.Fuel))
	case world.ResourceOxygen:
		p.Oxygen = min(p.Oxygen+cfg.OxygenGain, max(cfg.OxygenMax, p.Oxygen))
	}
}

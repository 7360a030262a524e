// Package world holds the objects living in the relativistic playfield,
// their shared outlines and the per-frame lookup that decides which of
// them the observer sees and which of them touch.
package world

import "github.com/vovakirdan/relhell/internal/core"

// Kind tags what an object is.
type Kind int

const (
	KindRock Kind = iota
	KindMainRock
	KindResource
	KindMissile
	KindParticle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindMainRock:
		return "main-rock"
	case KindResource:
		return "resource"
	case KindMissile:
		return "missile"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Priority is the draw order of the kind; higher is drawn later.
func (k Kind) Priority() int {
	switch k {
	case KindParticle:
		return 1
	case KindResource:
		return 2
	case KindRock:
		return 3
	case KindMainRock:
		return 4
	case KindMissile:
		return 5
	default:
		return 0
	}
}

// ResourceKind is what a Resource object refills.
type ResourceKind int

const (
	ResourceNone ResourceKind = iota
	ResourceHull
	ResourceGold
	ResourceAmmo
	ResourceFuel
	ResourceOxygen
)

// GeneratedResources are the kinds the resource generator draws from.
var GeneratedResources = []ResourceKind{ResourceHull, ResourceGold, ResourceAmmo, ResourceFuel}

// String returns a human-readable name for the resource.
func (r ResourceKind) String() string {
	switch r {
	case ResourceNone:
		return "none"
	case ResourceHull:
		return "hull"
	case ResourceGold:
		return "gold"
	case ResourceAmmo:
		return "ammo"
	case ResourceFuel:
		return "fuel"
	case ResourceOxygen:
		return "oxygen"
	default:
		return "unknown"
	}
}

// Palette of the game.
const (
	ColorRock     core.RGBA = 0xFFFFFFFF
	ColorHomeStar core.RGBA = 0xFFD500FF
	ColorLandmark core.RGBA = 0x000000FF
	ColorShip     core.RGBA = 0x4060FFFF
)

var resourceColors = map[ResourceKind]core.RGBA{
	ResourceNone:   0x808080FF,
	ResourceHull:   0xFF4040FF,
	ResourceGold:   0xFFD500FF,
	ResourceAmmo:   0x40C0FFFF,
	ResourceFuel:   0xFF8000FF,
	ResourceOxygen: 0x80FF80FF,
}

// Color returns the color objects of this resource are drawn with.
// Missiles use the ammo color, engine exhaust the fuel color and crash
// debris of the ship the hull color.
func (r ResourceKind) Color() core.RGBA {
	if c, ok := resourceColors[r]; ok {
		return c
	}
	return resourceColors[ResourceNone]
}

// Shape returns the outline of a resource object.
func (r ResourceKind) Shape() ShapeID {
	switch r {
	case ResourceHull:
		return ShapeHull
	case ResourceGold:
		return ShapeGold
	case ResourceAmmo:
		return ShapeAmmo
	case ResourceFuel:
		return ShapeFuel
	case ResourceOxygen:
		return ShapeOxygen
	default:
		return ShapeDisk
	}
}

package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/spacetime"
)

// ShapeID names one of the shared outlines. Objects hold the ID, never the
// points, and outlines are never modified once built.
type ShapeID int

const (
	ShapeDisk ShapeID = iota
	ShapeGold
	ShapeParticle
	ShapeMissile
	ShapeShip
	ShapeHull
	ShapeAmmo
	ShapeFuel
	ShapeOxygen
	shapeCount
)

// All outlines run clockwise so that a front-facing projection has a
// negative signed area.
var shapes [shapeCount][]core.Point

func init() {
	shapes[ShapeDisk] = disk()
	shapes[ShapeGold] = regular(4, .1, 0)
	shapes[ShapeParticle] = regular(3, .01, 0)
	shapes[ShapeMissile] = []core.Point{{X: .03}, {X: -.02, Y: -.01}, {X: -.02, Y: .01}}
	shapes[ShapeShip] = []core.Point{{X: .05}, {X: -.03, Y: -.03}, {X: -.01}, {X: -.03, Y: .03}}
	shapes[ShapeHull] = regular(4, .07, math.Pi/4)
	shapes[ShapeAmmo] = regular(6, .06, 0)
	shapes[ShapeFuel] = regular(3, .07, 0)
	shapes[ShapeOxygen] = regular(8, .06, 0)
}

// disk samples a circle of radius .1 every 15 degrees, both ends included.
func disk() []core.Point {
	var pts []core.Point
	for d := 0; d <= 360; d += 15 {
		a := spacetime.Degrees(float64(d))
		pts = append(pts, core.Point{X: math.Sin(a) * .1, Y: math.Cos(a) * .1})
	}
	return pts
}

func regular(n int, r, phase float64) []core.Point {
	pts := make([]core.Point, n)
	for i := range pts {
		a := phase + float64(i)*spacetime.Tau/float64(n)
		pts[i] = core.Point{X: math.Sin(a) * r, Y: math.Cos(a) * r}
	}
	return pts
}

// Points returns the shared outline. Callers must not modify it.
func (id ShapeID) Points() []core.Point {
	if id < 0 || id >= shapeCount {
		return nil
	}
	return shapes[id]
}

// String returns the name of the shape.
func (id ShapeID) String() string {
	switch id {
	case ShapeDisk:
		return "disk"
	case ShapeGold:
		return "gold"
	case ShapeParticle:
		return "particle"
	case ShapeMissile:
		return "missile"
	case ShapeShip:
		return "ship"
	case ShapeHull:
		return "hull"
	case ShapeAmmo:
		return "ammo"
	case ShapeFuel:
		return "fuel"
	case ShapeOxygen:
		return "oxygen"
	default:
		return "unknown"
	}
}

// ShipOutline returns the ship's outline in the observer's own tangent
// plane, turned to face ang degrees and scaled by scale.
func ShipOutline(ang, scale float64) []core.Point {
	rot := spacetime.Spin(spacetime.Degrees(ang))
	src := ShapeShip.Points()
	pts := make([]core.Point, len(src))
	for i, p := range src {
		h := rot.Mul4x1(mgl64.Vec4{p.X * scale, p.Y * scale, 1, 0})
		pts[i] = core.Point{X: h[0], Y: h[1]}
	}
	return pts
}

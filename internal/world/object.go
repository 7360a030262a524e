package world

import (
	"math"

	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/spacetime"
)

// Object is anything with a worldline: rocks, the landmarks, resources,
// missiles and particles.
type Object struct {
	Kind     Kind
	Pose     spacetime.Pose
	Shape    ShapeID
	Color    core.RGBA
	Resource ResourceKind

	// Subtype marks generation patterns with a narrower horizon:
	// 1 for divergent and 2 for convergent spiral members.
	Subtype int

	// LifeStart and LifeEnd bound the object's own solved time.
	LifeStart float64
	LifeEnd   float64

	// Refreshed by every Lookup.
	Main spacetime.CrossResult
	Pts  []spacetime.CrossResult
}

// NewObject creates an object that lives forever, outlined as a disk.
func NewObject(kind Kind, pose spacetime.Pose, color core.RGBA) *Object {
	return &Object{
		Kind:      kind,
		Pose:      pose,
		Shape:     ShapeDisk,
		Color:     color,
		LifeStart: math.Inf(-1),
		LifeEnd:   math.Inf(1),
	}
}

// Alive reports whether the object has not been destroyed.
func (o *Object) Alive() bool {
	return math.IsInf(o.LifeEnd, 1)
}

// Kill ends the object's life at local time t. LifeEnd only ever decreases.
func (o *Object) Kill(t float64) {
	if t < o.LifeEnd {
		o.LifeEnd = t
	}
}

// Stereo returns the outline projected stereographically.
func (o *Object) Stereo() []core.Point {
	pts := make([]core.Point, len(o.Pts))
	for i, c := range o.Pts {
		pts[i] = c.Stereo()
	}
	return pts
}

// Klein returns the outline projected onto the observer's tangent plane.
func (o *Object) Klein() []core.Point {
	pts := make([]core.Point, len(o.Pts))
	for i, c := range o.Pts {
		pts[i] = c.Klein()
	}
	return pts
}

// Contains reports whether point p of the observer's tangent plane lies
// inside the object's last solved outline.
func (o *Object) Contains(p core.Point) bool {
	return core.PointInPolygon(p, o.Klein())
}

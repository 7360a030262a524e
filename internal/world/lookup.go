package world

import (
	"math"

	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/spacetime"
)

// View describes the observer for one frame of lookup.
type View struct {
	Observer spacetime.Pose
	Mode     spacetime.Mode
	Scale    float64

	// FutureShown is the horizon half-width around an object's anchor
	// time; FutureShownSpiral replaces it on the far side of spirals.
	FutureShown       float64
	FutureShownSpiral float64

	// MinZ is the smallest x2 of a reference point that still counts for
	// collisions.
	MinZ float64
}

// Default horizons.
const (
	DefaultFutureShown       = 5 * spacetime.Tau
	DefaultFutureShownSpiral = 2 * spacetime.Tau
	DefaultMinZ              = .1
)

// Frame is the result of one lookup.
type Frame struct {
	// Solved have a valid reference point and outline, in registry order.
	Solved []*Object
	// Shown are the solved objects facing the observer.
	Shown []*Object
	// Displayed are the shown objects that take part in collisions.
	Displayed []*Object
}

// InHorizon reports whether an object anchored at o.Pose.Shift is worth
// solving for an observer at time t.
func (v View) InHorizon(o *Object, t float64) bool {
	before := v.FutureShown
	if o.Subtype == 1 {
		before = v.FutureShownSpiral
	}
	after := v.FutureShown
	if o.Subtype == 2 {
		after = v.FutureShownSpiral
	}
	if t < o.Pose.Shift-before {
		return false
	}
	if t > o.Pose.Shift+after {
		return false
	}
	return true
}

// Solve refreshes o.Main and o.Pts for the view. It returns false when the
// object is not visible this frame: off the horizon, numerically invalid,
// outside its life window or with any invalid outline vertex.
func (v View) Solve(o *Object) bool {
	o.Pts = o.Pts[:0]
	if !v.InHorizon(o, v.Observer.Shift) {
		return false
	}

	at := v.Observer.Relative(o.Pose)
	o.Main = spacetime.Cross(at, v.Mode)
	if o.Main.Invalid() {
		return false
	}
	if o.Main.Shift < o.LifeStart || o.Main.Shift > o.LifeEnd {
		return false
	}

	at1 := at.Mul4(spacetime.Lorentz(2, 3, o.Main.Shift))
	for _, p := range o.Shape.Points() {
		cr := spacetime.Cross(at1.Mul4(spacetime.TangentPoint(p.X, p.Y, v.Scale)), v.Mode)
		if cr.Invalid() {
			o.Pts = o.Pts[:0]
			return false
		}
		o.Pts = append(o.Pts, cr)
	}
	return true
}

// Lookup solves every object of the registry against the view. Main rocks
// are first moved to the observer's time so that their shift stays small.
func Lookup(objs *Objects, v View) Frame {
	var f Frame
	for _, o := range objs.All() {
		if o.Kind == KindMainRock {
			o.Pose.Shift = v.Observer.Shift
		}
		if !v.Solve(o) {
			continue
		}
		f.Solved = append(f.Solved, o)

		if core.SignedArea(o.Stereo()) >= 0 {
			continue
		}
		f.Shown = append(f.Shown, o)

		if o.Main.H[2] > v.MinZ && math.IsInf(o.LifeEnd, 1) {
			f.Displayed = append(f.Displayed, o)
		}
	}
	return f
}

// ObjectsAt lists the solved objects, particles excluded, whose outline
// contains p. Once the landmark is found it is the only entry.
func (f Frame) ObjectsAt(p core.Point, landmark *Object) []*Object {
	var under []*Object
	onlyMain := false
	for _, o := range f.Solved {
		if o.Kind == KindParticle || !o.Contains(p) {
			continue
		}
		if onlyMain {
			break
		}
		if o == landmark {
			under = under[:0]
			onlyMain = true
		}
		under = append(under, o)
	}
	return under
}

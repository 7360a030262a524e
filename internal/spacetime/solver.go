package spacetime

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/relhell/internal/core"
)

// Mode selects the surface the solver intersects worldlines with.
type Mode int

const (
	// ModeSim intersects with the observer's simultaneity slice (x3 = 0).
	ModeSim Mode = iota
	// ModeConeNear intersects with the light cone, near branch.
	ModeConeNear
	// ModeConeFar intersects with the light cone, far branch.
	ModeConeFar
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSim:
		return "sim"
	case ModeConeNear:
		return "cone-near"
	case ModeConeFar:
		return "cone-far"
	default:
		return "unknown"
	}
}

// ParseMode converts a config name into a Mode. Unknown names give ModeSim.
func ParseMode(s string) Mode {
	switch s {
	case "cone-near":
		return ModeConeNear
	case "cone-far":
		return ModeConeFar
	default:
		return ModeSim
	}
}

// Tolerances of the post-solve validity check.
const (
	surfaceTolerance = 1e-3
	coneTolerance    = .01
	rootClamp        = 1e-10
)

// CrossResult is where a worldline crosses the view surface: the ambient
// point H at the worldline's own local time Shift.
type CrossResult struct {
	H     mgl64.Vec4
	Shift float64
}

// NoCross is the sentinel for "no intersection".
var NoCross = CrossResult{}

// Invalid reports whether res is off the view surface: either the sentinel
// or a solution that drifted numerically.
func (res CrossResult) Invalid() bool {
	h := res.H
	val := h[0]*h[0] + h[1]*h[1] + h[2]*h[2]
	if math.IsNaN(val) || math.Abs(val-1) > surfaceTolerance {
		return true
	}
	if math.IsNaN(h[3]) || math.Abs(h[3]) > surfaceTolerance {
		return true
	}
	return false
}

// Stereo projects H stereographically from the antipode of the observer.
func (res CrossResult) Stereo() core.Point {
	d := 1 + res.H[2]
	return core.Point{X: res.H[0] / d, Y: res.H[1] / d}
}

// Klein projects H centrally onto the tangent plane at the observer.
func (res CrossResult) Klein() core.Point {
	return core.Point{X: res.H[0] / res.H[2], Y: res.H[1] / res.H[2]}
}

// worldline evaluates T·(0, 0, cosh t, sinh t).
func worldline(t mgl64.Mat4, s float64) mgl64.Vec4 {
	return t.Mul4x1(mgl64.Vec4{0, 0, math.Cosh(s), math.Sinh(s)})
}

// CrossSim solves T[3][2]·cosh t + T[3][3]·sinh t = 0, the crossing of the
// worldline through T·(0,0,1,0) with the simultaneity slice.
func CrossSim(t mgl64.Mat4) CrossResult {
	tt := -t.At(3, 2) / t.At(3, 3)
	if !(tt >= -1 && tt <= 1) {
		return NoCross
	}
	s := math.Atanh(tt)
	return CrossResult{H: worldline(t, s), Shift: s}
}

// CrossCone solves a·cosh t + b·sinh t = 1 with a = T[2][2], b = T[2][3],
// the crossing with the light cone. which (±1) picks the branch.
func CrossCone(t mgl64.Mat4, which float64) CrossResult {
	a := t.At(2, 2)
	b := t.At(2, 3)

	underroot := 1 + b*b - a*a
	if underroot < rootClamp && underroot > -rootClamp {
		underroot = 0
	}
	if underroot < 0 {
		return NoCross
	}

	underlog := (1 + which*math.Sqrt(underroot)) / (a + b)
	if !(underlog > 0) {
		return NoCross
	}

	s := math.Log(underlog)
	h := worldline(t, s)
	if math.Abs(h[2]-1) > coneTolerance {
		return NoCross
	}

	n := math.Sqrt(h[0]*h[0] + h[1]*h[1] + h[2]*h[2])
	h = mgl64.Vec4{h[0] / n, h[1] / n, h[2] / n, 0}
	return CrossResult{H: h, Shift: s}
}

// CrossLight follows the light ray T·(t, 0, 1, t) until it meets the
// simultaneity slice. Division by a vanishing denominator is left to the
// caller's Invalid check.
func CrossLight(t mgl64.Mat4) CrossResult {
	s := t.At(3, 2) / -(t.At(3, 0) + t.At(3, 3))
	return CrossResult{H: t.Mul4x1(mgl64.Vec4{s, 0, 1, s}), Shift: s}
}

// Cross dispatches to the solver for mode.
func Cross(t mgl64.Mat4, mode Mode) CrossResult {
	switch mode {
	case ModeConeNear:
		return CrossCone(t, -1)
	case ModeConeFar:
		return CrossCone(t, 1)
	default:
		return CrossSim(t)
	}
}

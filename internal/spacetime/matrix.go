// Package spacetime holds the transforms of de Sitter space used by the game
// and the solver that intersects worldlines with the observer's view surface.
//
// Points live in R^4 with the form x0²+x1²+x2²-x3² = 1. Coordinates 0 and 1
// are the screen plane, coordinate 2 points at the observer (who sits at
// (0,0,1,0)) and coordinate 3 is time. Matrices are mgl64.Mat4 and are
// indexed as M.At(row, col).
package spacetime

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Dim is the dimension of the ambient space.
const Dim = 4

// Tau is a full turn.
const Tau = 2 * math.Pi

// Identity returns the identity transform.
func Identity() mgl64.Mat4 {
	return mgl64.Ident4()
}

// Lorentz returns the boost of rapidity v mixing axes a and b.
// Lorentz(0, 3, v) moves along x, Lorentz(2, 3, v) shifts time.
func Lorentz(a, b int, v float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	c, s := math.Cosh(v), math.Sinh(v)
	m.Set(a, a, c)
	m.Set(b, b, c)
	m.Set(a, b, s)
	m.Set(b, a, s)
	return m
}

// CSpin returns the rotation by alpha in the plane of axes a and b.
// CSpin(0, 2, d) moves the observer's origin by distance d along x.
func CSpin(a, b int, alpha float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	c, s := math.Cos(alpha), math.Sin(alpha)
	m.Set(a, a, c)
	m.Set(a, b, s)
	m.Set(b, a, -s)
	m.Set(b, b, c)
	return m
}

// Spin rotates the screen plane by alpha.
func Spin(alpha float64) mgl64.Mat4 {
	return CSpin(0, 1, alpha)
}

// Spin90 is Spin(π/2) with exact entries.
func Spin90() mgl64.Mat4 {
	m := mgl64.Ident4()
	m.Set(0, 0, 0)
	m.Set(1, 1, 0)
	m.Set(0, 1, 1)
	m.Set(1, 0, -1)
	return m
}

// Degrees converts degrees to radians.
func Degrees(d float64) float64 {
	return d * math.Pi / 180
}

// sig is the signature of the metric on axis i.
func sig(i int) float64 {
	if i == 3 {
		return -1
	}
	return 1
}

// Inverse inverts a transform of the Lorentz group as η Mᵀ η.
func Inverse(m mgl64.Mat4) mgl64.Mat4 {
	var r mgl64.Mat4
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			r.Set(i, j, sig(i)*sig(j)*m.At(j, i))
		}
	}
	return r
}

// Fix renormalises m back into the Lorentz group by Gram-Schmidt on its
// columns, correcting floating-point drift accumulated by repeated products.
func Fix(m mgl64.Mat4) mgl64.Mat4 {
	for x := 0; x < Dim; x++ {
		for y := 0; y <= x; y++ {
			dp := 0.0
			for z := 0; z < Dim; z++ {
				dp += m.At(z, x) * m.At(z, y) * sig(z)
			}
			if y == x {
				dp = 1 - math.Sqrt(sig(x)/dp)
			}
			for z := 0; z < Dim; z++ {
				m.Set(z, x, m.At(z, x)-dp*m.At(z, y))
			}
		}
	}
	return m
}

// SnapEighths rounds every entry of m to the nearest multiple of 1/8.
func SnapEighths(m mgl64.Mat4) mgl64.Mat4 {
	for i := range m {
		m[i] = math.Floor(m[i]*8+.5) / 8
	}
	return m
}

// Mul composes transforms left to right: Mul(a, b, c) = a·b·c.
func Mul(ms ...mgl64.Mat4) mgl64.Mat4 {
	r := mgl64.Ident4()
	for _, m := range ms {
		r = r.Mul4(m)
	}
	return r
}

// Origin is the observer's own position (0,0,1,0).
func Origin() mgl64.Vec4 {
	return mgl64.Vec4{0, 0, 1, 0}
}

// Form evaluates the quadratic form x0²+x1²+x2²-x3² on h.
func Form(h mgl64.Vec4) float64 {
	return h[0]*h[0] + h[1]*h[1] + h[2]*h[2] - h[3]*h[3]
}

// TangentPoint maps outline coordinates (x, y) to the transform placing the
// origin at that point of the observer's sphere. scale multiplies both.
func TangentPoint(x, y, scale float64) mgl64.Mat4 {
	return CSpin(0, 2, x*scale).Mul4(CSpin(1, 2, y*scale))
}

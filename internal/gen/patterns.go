package gen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/relhell/internal/spacetime"
)

// Pattern is one of the rock formations.
type Pattern int

const (
	DeathCross4 Pattern = iota
	DeathCross3
	StaticField
	ChaoticField
	DivergentSpiral
	ConvergentSpiral
	Rack
	Hyperboloid
	Machinegun
)

// String returns the name reported when the pattern is emitted.
func (p Pattern) String() string {
	switch p {
	case DeathCross4, DeathCross3:
		return "death cross"
	case StaticField:
		return "static starry field"
	case ChaoticField:
		return "chaotic starry field"
	case DivergentSpiral:
		return "divergent spiral"
	case ConvergentSpiral:
		return "convergent spiral"
	case Rack:
		return "rack"
	case Hyperboloid:
		return "hyperboloid"
	case Machinegun:
		return "machinegun"
	default:
		return "unknown"
	}
}

// dispatch is the weighted pattern table. Draws past the last entry emit
// nothing, which spaces the patterns out.
var dispatch = []struct {
	weight  int
	pattern Pattern
}{
	{10, DeathCross4},
	{10, DeathCross3},
	{10, StaticField},
	{10, ChaoticField},
	{10, DivergentSpiral},
	{10, ConvergentSpiral},
	{10, Rack},
	{10, Hyperboloid},
	{10, Machinegun},
}

// dispatchTotal is the size of the draw space, larger than the sum of weights.
const dispatchTotal = 150

// Pick maps a draw in [0, dispatchTotal) to a pattern. ok is false for the
// skip remainder.
func Pick(r int) (p Pattern, ok bool) {
	for _, e := range dispatch {
		if r < e.weight {
			return e.pattern, true
		}
		r -= e.weight
	}
	return 0, false
}

// AddRandom draws from the pattern table and emits the result.
func (g *Generator) AddRandom() {
	p, ok := Pick(g.rng.Intn(dispatchTotal))
	if !ok {
		return
	}
	g.Emit(p)
}

// Emit emits one pattern at the cursor.
func (g *Generator) Emit(p Pattern) {
	switch p {
	case DeathCross4:
		g.deathCross(4)
	case DeathCross3:
		g.deathCross(3)
	case StaticField:
		g.staticField()
	case ChaoticField:
		g.chaoticField()
	case DivergentSpiral:
		g.spiral(p, DivergeMatrix(), 1)
	case ConvergentSpiral:
		g.spiral(p, ConvergeMatrix(), 2)
	case Rack:
		g.rack()
	case Hyperboloid:
		g.hyperboloid()
	case Machinegun:
		g.machinegun()
	}
}

func (g *Generator) deathCross(qty int) {
	rapidity := g.uniform(1, 3)
	g.Cursor += g.uniform(.5, 1)
	alpha := g.angle()
	g.logf(DeathCross4.String(), "qty", qty)
	for a := 0; a < qty; a++ {
		g.Add(spacetime.Spin(float64(a)*spacetime.Tau/float64(qty) + alpha).Mul4(spacetime.Lorentz(0, 3, rapidity)))
	}
	g.Cursor += g.uniform(.5, 1)
}

// randPlace returns a rotation taking the observer's origin to a point
// uniformly distributed on the sphere.
func (g *Generator) randPlace() mgl64.Mat4 {
	z := g.uniform(-1, 1)
	phi := g.angle()
	delta := math.Acos(z)
	return spacetime.Mul(spacetime.Spin(-phi), spacetime.CSpin(0, 2, delta), spacetime.Spin(phi))
}

func (g *Generator) staticField() {
	g.Cursor += g.uniform(1, 2)
	g.logf(StaticField.String())
	for i := 0; i < 100; i++ {
		g.Add(g.randPlace())
	}
	g.Cursor += g.uniform(1, 2)
}

func (g *Generator) chaoticField() {
	g.Cursor += g.uniform(2, 3)
	g.logf(ChaoticField.String())
	for i := 0; i < 50; i++ {
		g.Add(spacetime.Mul(g.randPlace(), spacetime.Spin(g.angle()), spacetime.Lorentz(0, 3, g.uniform(0, 3))))
	}
	g.Cursor += g.uniform(2, 3)
}

// limitMatrix approximates the limit of Lorentz(2,3,-v)·CSpin(0,2,e^-v)·
// Lorentz(2,3,v) as v grows; the entries converge to multiples of 1/8.
func limitMatrix(v float64) mgl64.Mat4 {
	return spacetime.SnapEighths(spacetime.Mul(
		spacetime.Lorentz(2, 3, -v),
		spacetime.CSpin(0, 2, math.Exp(-math.Abs(v))),
		spacetime.Lorentz(2, 3, v),
	))
}

// DivergeMatrix is the step of the divergent spiral.
func DivergeMatrix() mgl64.Mat4 {
	return limitMatrix(5)
}

// ConvergeMatrix is the step of the convergent spiral.
func ConvergeMatrix() mgl64.Mat4 {
	return limitMatrix(-5)
}

func (g *Generator) spiral(p Pattern, step mgl64.Mat4, subtype int) {
	g.logf(p.String())
	g.Cursor += g.uniform(.3, .7)
	alpha := g.angle()
	dt := g.uniform(.17, .23)
	for i := 0; i < 45; i++ {
		g.Cursor += dt
		o := g.Add(spacetime.Spin(alpha + float64(i)*spacetime.Tau/30).Mul4(step))
		o.Subtype = subtype
	}
	g.Cursor += g.uniform(.3, .7)
}

func (g *Generator) rack() {
	g.logf(Rack.String())
	qty := 3 + g.rng.Intn(4)
	rapidity := g.uniform(1, 3)
	step := g.uniform(.45, .75) * g.scale
	alpha := g.uniform(0, spacetime.Tau)
	spinv := g.uniform(0, spacetime.Tau)
	for i := 0; i < qty; i++ {
		g.Cursor++
		for j := -3; j <= 3; j++ {
			g.Add(spacetime.Mul(
				spacetime.Spin(alpha+float64(i)*spinv),
				spacetime.CSpin(0, 2, float64(j)*step),
				spacetime.Spin90(),
				spacetime.Lorentz(0, 3, rapidity),
			))
		}
	}
}

func (g *Generator) hyperboloid() {
	g.logf(Hyperboloid.String())
	alpha := g.angle()
	r1 := g.uniform(.15, .25) * g.scale
	r2 := g.uniform(.35, .45) * g.scale
	g.Cursor += g.uniform(2, 3)
	rapidity := g.uniform(-3, 3)
	qty := 20 + g.rng.Intn(10)
	for i := 0; i < qty; i++ {
		g.Add(spacetime.Mul(
			spacetime.Spin(alpha),
			spacetime.CSpin(0, 2, r1),
			spacetime.Spin(float64(i)*spacetime.Tau/float64(qty)),
			spacetime.CSpin(0, 2, r2),
			spacetime.Lorentz(1, 3, rapidity),
		))
	}
	g.Cursor += g.uniform(2, 3)
}

func (g *Generator) machinegun() {
	g.logf(Machinegun.String())
	alpha := g.angle()
	qty := 10 + int(1/(.05+g.rng.Float64()))
	rapidity := g.uniform(3, 6)
	step := g.uniform(.1, .15)
	for i := 0; i < qty; i++ {
		g.Cursor += step
		g.Add(spacetime.Spin(alpha).Mul4(spacetime.Lorentz(1, 3, rapidity)))
	}
}

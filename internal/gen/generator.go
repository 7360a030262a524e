// Package gen populates the timeline ahead of the observer with rocks and
// resources.
package gen

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/relhell/internal/spacetime"
	"github.com/vovakirdan/relhell/internal/world"
)

// Generator emits objects into a registry while advancing its cursor, the
// time up to which the timeline has been generated. The cursor never
// decreases.
type Generator struct {
	Cursor   float64
	Disabled bool

	objs   *world.Objects
	rng    *rand.Rand
	scale  float64
	logger *log.Logger
	report rate.Sometimes
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger pattern reports go to.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithScale sets the scale of spatial pattern parameters.
func WithScale(s float64) Option {
	return func(g *Generator) {
		if s > 0 {
			g.scale = s
		}
	}
}

// Disabled turns ExtendTo and ExtendResourcesTo into no-ops.
func Disabled(d bool) Option {
	return func(g *Generator) {
		g.Disabled = d
	}
}

// New creates a generator appending to objs and drawing from rng.
func New(objs *world.Objects, rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		objs:   objs,
		rng:    rng,
		scale:  1,
		logger: log.New(io.Discard),
		report: rate.Sometimes{First: 8, Interval: time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset moves the cursor back to zero.
func (g *Generator) Reset() {
	g.Cursor = 0
}

// Advance moves the cursor forward by dt.
func (g *Generator) Advance(dt float64) {
	g.Cursor += dt
}

// Add creates a white rock anchored at the cursor.
func (g *Generator) Add(t mgl64.Mat4) *world.Object {
	return g.objs.Add(world.NewObject(world.KindRock, spacetime.NewPose(t, g.Cursor), world.ColorRock))
}

func (g *Generator) logf(name string, keyvals ...interface{}) {
	g.report.Do(func() {
		g.logger.Debug(name, append([]interface{}{"cursor", g.Cursor}, keyvals...)...)
	})
}

func (g *Generator) uniform(a, b float64) float64 {
	return a + (b-a)*g.rng.Float64()
}

func (g *Generator) angle() float64 {
	return g.rng.Float64() * spacetime.Tau
}

// ExtendTo emits random patterns until the cursor reaches t.
func (g *Generator) ExtendTo(t float64) {
	if g.Disabled {
		return
	}
	for g.Cursor < t {
		g.AddRandom()
	}
}

// ExtendResourcesTo emits single resources until the cursor reaches t.
// Steps grow with the cursor, so resources thin out over time.
func (g *Generator) ExtendResourcesTo(t float64) {
	if g.Disabled {
		return
	}
	for g.Cursor < t {
		rapidity := g.uniform(0, 3)
		step := g.uniform(.2, .5)
		alpha := g.uniform(0, spacetime.Tau)
		g.Cursor += g.uniform(.5, 1) * (1 + g.Cursor/10)

		o := g.Add(spacetime.Mul(
			spacetime.Spin(alpha),
			spacetime.CSpin(0, 2, step),
			spacetime.Spin90(),
			spacetime.Lorentz(0, 3, rapidity),
		))
		kind := world.GeneratedResources[g.rng.Intn(len(world.GeneratedResources))]
		o.Kind = world.KindResource
		o.Resource = kind
		o.Shape = kind.Shape()
		o.Color = kind.Color()
	}
}

// Demo emits the fixed warm-up sequence used by demo sessions.
func (g *Generator) Demo() {
	g.Emit(StaticField)
	g.Emit(Hyperboloid)
	g.Emit(ChaoticField)
	g.Emit(Rack)
}

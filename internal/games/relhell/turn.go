package relhell

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/spacetime"
	"github.com/vovakirdan/relhell/internal/world"
)

// historyWindow bounds how far from the present history entries are solved.
const historyWindow = 4 * spacetime.Tau

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.tickCount++

	g.handleCrashes()

	if in.Has(core.ActionFire) && !g.paused && !g.gameOver {
		g.fire()
	}
	if in.Has(core.ActionPause) {
		g.switchPause()
	}
	if in.Has(core.ActionToggleTimes) {
		g.viewTimes = !g.viewTimes
	}
	if in.Has(core.ActionToggleSpin) {
		g.autoRotate = !g.autoRotate
	}
	if in.Has(core.ActionMenu) {
		g.emit(core.EventMenu, "")
	}

	delta := g.runtime.TickSeconds()
	pt := delta * g.cfg.Physics.SimSpeed

	mul, heading := in.Move()
	if mul > 0 {
		g.ang = heading
	}
	if g.player.Fuel <= 0 {
		mul = 0
	}
	dv := pt * g.cfg.Physics.Accel * mul

	turn := spacetime.Spin(spacetime.Degrees(g.ang))
	unturn := spacetime.Spin(-spacetime.Degrees(g.ang))
	if g.paused && in.Has(core.ActionRotateView) {
		g.current.T = spacetime.Mul(turn, spacetime.CSpin(0, 2, mul*delta*-g.cfg.Physics.PauseSpeed), unturn, g.current.T)
	} else {
		g.current.T = spacetime.Mul(turn, spacetime.Lorentz(0, 3, -dv), unturn, g.current.T)
	}

	if !g.paused {
		g.player.Fuel = math.Max(g.player.Fuel-dv, 0)
		p := g.cfg.Particles
		engine := spacetime.Mul(
			spacetime.Inverse(g.current.T),
			spacetime.Spin(spacetime.Degrees(g.ang)+math.Pi),
			spacetime.Lorentz(0, 3, p.EngineOffset*g.cfg.Physics.Scale),
		)
		g.particles(g.poisson(dv*p.FuelQty), engine, g.current.Shift, world.ResourceFuel.Color(), p.FuelRapidity, p.FuelLife, p.FuelSpread)
	}

	tc := 0.0
	switch {
	case !g.paused:
		tc = pt
	case in.Has(core.ActionScrubFuture):
		tc = pt
	case in.Has(core.ActionScrubPast):
		tc = -pt
	}

	if !g.paused && !g.gameOver {
		g.history = append(g.history, ShipState{
			At:       spacetime.NewPose(g.current.Anchor(g.ang), g.current.Shift),
			Start:    g.shipPT,
			Duration: pt,
			Ang:      g.ang,
		})
	}

	g.current.T = spacetime.Lorentz(2, 3, -tc).Mul4(g.current.T)

	g.pacemaker()
	g.current.T = spacetime.Fix(g.current.T)

	lookahead := g.cfg.LookaheadOrDefault()
	g.rocks.ExtendTo(g.current.Shift + lookahead)
	g.resources.ExtendResourcesTo(g.current.Shift + lookahead)

	if !g.paused {
		g.shipPT += pt
		g.player.Oxygen -= pt
		if g.player.Oxygen <= 0 {
			g.player.Oxygen = 0
			g.endGame("suffocated")
		}
	} else {
		g.viewPT += tc
	}

	g.frame = world.Lookup(g.objs, g.view())

	return core.StepResult{State: g.State(), Events: g.events}
}

// pacemaker moves the landmark's local time into the global clock so that
// the observer transform never accumulates a large time shift. It returns
// the amount moved.
func (g *Game) pacemaker() float64 {
	g.landmark.Pose.Shift = g.current.Shift
	g.landmark.Main = spacetime.Cross(g.current.Relative(g.landmark.Pose), g.mode)

	m := g.landmark.Main.Shift
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0
	}
	g.current.Shift += m
	g.current.T = g.current.T.Mul4(spacetime.Lorentz(2, 3, m))
	g.landmark.Main.Shift = 0
	g.player.Score = math.Max(g.player.Score, g.current.Shift)
	return m
}

// switchPause toggles pause. The ship pose is kept aside while the view
// is scrubbed and restored on resume.
func (g *Game) switchPause() {
	g.paused = !g.paused
	if g.paused {
		g.shipPose = g.current
		g.viewPT = 0
		g.logger.Info("paused", "proper_time", g.shipPT)
	} else {
		g.current = g.shipPose
		g.logger.Info("resumed", "proper_time", g.shipPT)
	}
}

// handleCrashes applies the collisions found in the last frame.
func (g *Game) handleCrashes() {
	if g.paused {
		return
	}

	var ship []core.Point
	if !g.gameOver {
		ship = world.ShipOutline(g.ang, g.cfg.Physics.Scale)
	}
	c := world.Collide(g.frame.Displayed, ship)
	p := g.cfg.Particles

	for _, h := range c.Hits {
		m, r := h.Missile, h.Rock
		m.Kill(m.Main.Shift)
		g.player.RocksHit++
		if r.Kind != world.KindMainRock {
			r.Kill(r.Main.Shift)
		}
		g.particles(g.poisson(p.CrashQty), m.Pose.T.Mul4(spacetime.Lorentz(2, 3, m.LifeEnd)), m.Pose.Shift,
			world.ResourceAmmo.Color(), p.CrashRapidity, p.CrashLife, 1)
		if r.Kind != world.KindMainRock {
			g.particles(g.poisson(p.CrashQty), r.Pose.T.Mul4(spacetime.Lorentz(2, 3, r.LifeEnd)), r.Pose.Shift,
				r.Color, p.CrashRapidity, p.CrashLife, 1)
		}
		g.sound.Play(SoundHit)
		g.emit(core.EventRockHit, r.Kind.String())
	}

	for _, r := range c.Crashes {
		if r.Kind == world.KindMainRock {
			g.crashShip("crashed into the home star")
		} else {
			g.crashShip("crashed into a star")
		}
	}

	for _, r := range c.Pickups {
		r.Kill(r.Main.Shift)
		g.player.ResourcesCollected++
		g.player.gain(r.Resource, g.cfg.Resources)
		g.sound.Play(SoundPickup)
		g.emit(core.EventPickup, r.Resource.String())
	}
}

// crashShip damages the ship unless it is still invincible.
func (g *Game) crashShip(reason string) {
	if g.shipPT < g.invincibleUntil {
		return
	}
	g.player.Hull--
	g.invincibleUntil = g.shipPT + g.cfg.Ship.Invincibility
	p := g.cfg.Particles
	g.particles(g.poisson(2*p.CrashQty), g.current.Anchor(g.ang), g.current.Shift,
		world.ResourceHull.Color(), p.CrashRapidity, p.CrashLife, 1)
	g.sound.Play(SoundExplosion)
	g.emit(core.EventCrash, reason)
	g.logger.Debug("crash", "reason", reason, "hull", g.player.Hull)

	if g.player.Hull <= 0 {
		g.endGame(reason)
	}
}

// fire launches a missile along the ship's heading. Without ammo nothing
// happens.
func (g *Game) fire() {
	if g.player.Ammo <= 0 {
		return
	}
	g.player.Ammo--
	g.sound.Play(SoundFire)

	t := g.current.Anchor(g.ang).Mul4(spacetime.Lorentz(0, 3, g.cfg.Physics.MissileRapidity))
	m := g.objs.Add(world.NewObject(world.KindMissile, spacetime.NewPose(t, g.current.Shift), world.ResourceAmmo.Color()))
	m.Shape = world.ShapeMissile
	m.LifeStart = 0
	g.emit(core.EventFire, "")
}

// particles scatters qty short-lived particles from the given anchor.
func (g *Game) particles(qty int, from mgl64.Mat4, shift float64, col core.RGBA, spd, life, spread float64) {
	for i := 0; i < qty; i++ {
		t := spacetime.Mul(
			from,
			spacetime.Spin(g.rng.Float64()*spacetime.Tau*spread),
			spacetime.Lorentz(0, 3, (.5+g.rng.Float64()*.5)*spd),
		)
		o := g.objs.Add(world.NewObject(world.KindParticle, spacetime.NewPose(t, shift), col))
		o.Shape = world.ShapeParticle
		o.LifeStart = 0
		o.LifeEnd = g.rng.Float64() * life
	}
}

// poisson draws from a Poisson distribution with mean lambda.
func (g *Game) poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	l := math.Exp(-lambda)
	k := 0
	for p := 1.0; ; k++ {
		p *= g.rng.Float64()
		if p <= l {
			return k
		}
	}
}

// endGame moves the session to its terminal state.
func (g *Game) endGame(reason string) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.reason = reason
	g.emit(core.EventGameOver, reason)
	g.logger.Info("game over", "reason", reason, "score", g.player.Score, "proper_time", g.shipPT)
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail})
}

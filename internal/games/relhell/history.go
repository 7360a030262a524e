package relhell

import (
	"github.com/vovakirdan/relhell/internal/flightlog"
	"github.com/vovakirdan/relhell/internal/spacetime"
	"github.com/vovakirdan/relhell/internal/world"
)

// ghostEpsilon widens each history entry's time window when matching it
// against the view surface.
const ghostEpsilon = 1e-4

// ShipState is one history entry: the ship's worldline segment during a
// single unpaused tick.
type ShipState struct {
	At       spacetime.Pose // Ship anchor, already turned to its heading
	Start    float64        // Ship proper time at the start of the tick
	Duration float64
	Ang      float64
}

// History returns the recorded ship states.
func (g *Game) History() []ShipState {
	return g.history
}

// Ghost is a past ship position crossing the current view surface.
type Ghost struct {
	Main       spacetime.CrossResult
	Pts        []spacetime.CrossResult
	ProperTime float64
}

// Ghosts returns where the ship's past worldline crosses the view while
// paused. Entries are thinned to one per ship_history_period of proper time.
func (g *Game) Ghosts() []Ghost {
	if !g.paused {
		return nil
	}
	var ghosts []Ghost
	lastShown := -100.0
	period := g.cfg.View.ShipHistoryPeriod
	for _, ss := range g.history {
		if ss.Start < lastShown+period {
			continue
		}
		lastShown = ss.Start
		if ss.At.Shift < g.current.Shift-historyWindow || ss.At.Shift > g.current.Shift+historyWindow {
			continue
		}

		at := g.current.Relative(ss.At)
		cr := spacetime.Cross(at, g.mode)
		if cr.Invalid() || cr.Shift < ghostEpsilon || cr.Shift > ss.Duration+ghostEpsilon {
			continue
		}

		at1 := at.Mul4(spacetime.Lorentz(2, 3, cr.Shift))
		ghost := Ghost{Main: cr, ProperTime: cr.Shift + ss.Start}
		ok := true
		for _, p := range world.ShapeShip.Points() {
			v := spacetime.Cross(at1.Mul4(spacetime.TangentPoint(p.X, p.Y, g.cfg.Physics.Scale)), g.mode)
			if v.Invalid() {
				ok = false
				break
			}
			ghost.Pts = append(ghost.Pts, v)
		}
		if ok {
			ghosts = append(ghosts, ghost)
		}
	}
	return ghosts
}

// LightCone traces 361 light rays leaving the paused ship and returns where
// they meet the current slice. complete is true when every ray lies in the
// future of the ship. Only available while paused in simultaneity mode.
func (g *Game) LightCone() (pts []spacetime.CrossResult, complete bool) {
	if !g.paused || g.gameOver || g.mode != spacetime.ModeSim {
		return nil, false
	}
	bad := 0
	for i := 0; i <= 360; i++ {
		h := g.shipPose.Anchor(float64(i))
		cr := spacetime.CrossLight(g.current.Relative(spacetime.NewPose(h, g.shipPose.Shift)))
		pts = append(pts, cr)
		if !(cr.Shift > 0) {
			bad++
		}
	}
	return pts, bad == 0
}

// Record exports the history as a flight log.
func (g *Game) Record() flightlog.Log {
	l := flightlog.Log{
		Variant: g.id,
		Seed:    g.runtime.Seed,
		Mode:    g.mode.String(),
		Score:   g.player.Score,
		Reason:  g.reason,
	}
	for _, ss := range g.history {
		l.Entries = append(l.Entries, flightlog.NewEntry(ss.At, ss.Start, ss.Duration, ss.Ang))
	}
	return l
}

package relhell

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/relhell/internal/config"
	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/spacetime"
	"github.com/vovakirdan/relhell/internal/world"
)

// newTestGame returns a reset game on an empty timeline.
func newTestGame(t *testing.T, edit func(*config.RelHellConfig)) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Generation.Disabled = true
	if edit != nil {
		edit(&cfg)
	}
	g := New(WithConfig(cfg))
	g.Reset(core.RuntimeConfig{Seed: 7, TickRate: 60, ScreenW: 80, ScreenH: 24})
	return g
}

func tickPT(g *Game) float64 {
	return g.runtime.TickSeconds() * g.cfg.Physics.SimSpeed
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetPlacesHomeStarAndLandmark(t *testing.T) {
	g := newTestGame(t, nil)

	if g.Objects().Len() != 2 {
		t.Fatalf("Expected only the home star and the landmark, got %d objects", g.Objects().Len())
	}
	if g.Objects().Count(world.KindMainRock) != 2 {
		t.Errorf("Expected 2 main rocks, got %d", g.Objects().Count(world.KindMainRock))
	}
	if g.Landmark().Color != world.ColorLandmark {
		t.Errorf("Landmark color = %#x", uint32(g.Landmark().Color))
	}
	p := g.Player()
	if p.Hull != 3 || p.Ammo != 20 || p.Fuel != 100 || p.Oxygen != 100 {
		t.Errorf("Unexpected starting supplies: %+v", p)
	}
	if len(g.Frame().Solved) == 0 {
		t.Error("Expected the home star to be solved after reset")
	}
}

func TestResetWithGeneration(t *testing.T) {
	cfg := config.DefaultConfig()
	g := New(WithConfig(cfg))
	g.Reset(core.RuntimeConfig{Seed: 3, TickRate: 60})

	if g.Objects().Count(world.KindRock) == 0 {
		t.Error("Expected generated rocks")
	}
	if g.Objects().Count(world.KindResource) == 0 {
		t.Error("Expected generated resources")
	}
	if g.rocks.Cursor < cfg.LookaheadOrDefault() {
		t.Errorf("Rock cursor %f behind lookahead %f", g.rocks.Cursor, cfg.LookaheadOrDefault())
	}
}

func TestMissileHitsRockAhead(t *testing.T) {
	g := newTestGame(t, nil)
	g.homeStar.Kill(math.Inf(-1))
	g.landmark.Kill(math.Inf(-1))

	rock := g.objs.Add(world.NewObject(world.KindRock,
		spacetime.NewPose(g.current.Anchor(0).Mul4(spacetime.CSpin(0, 2, .3)), g.current.Shift),
		world.ColorRock))
	g.frame = world.Lookup(g.objs, g.view())

	res := g.Step(input(core.ActionFire))
	if !hasEvent(res.Events, core.EventFire) {
		t.Fatal("Expected a fire event")
	}
	if g.Player().Ammo != 19 {
		t.Errorf("Expected ammo 19, got %d", g.Player().Ammo)
	}
	if g.Objects().Count(world.KindMissile) != 1 {
		t.Fatalf("Expected 1 missile, got %d", g.Objects().Count(world.KindMissile))
	}

	hit := false
	for i := 0; i < 300 && !hit; i++ {
		res = g.Step(core.NewInputFrame())
		hit = hasEvent(res.Events, core.EventRockHit)
	}
	if !hit {
		t.Fatal("Missile never hit the rock")
	}
	if math.IsInf(rock.LifeEnd, 1) {
		t.Error("Expected the rock to be destroyed")
	}
	for _, o := range g.Objects().All() {
		if o.Kind == world.KindMissile && math.IsInf(o.LifeEnd, 1) {
			t.Error("Expected the missile to be destroyed")
		}
	}
	if g.Player().RocksHit != 1 {
		t.Errorf("Expected 1 rock hit, got %d", g.Player().RocksHit)
	}
	if g.Objects().Count(world.KindParticle) == 0 {
		t.Error("Expected debris particles")
	}
}

func TestNoFireWithoutAmmo(t *testing.T) {
	g := newTestGame(t, func(c *config.RelHellConfig) { c.Ship.Ammo = 0 })

	res := g.Step(input(core.ActionFire))
	if hasEvent(res.Events, core.EventFire) {
		t.Error("Fired without ammo")
	}
	if g.Objects().Count(world.KindMissile) != 0 {
		t.Error("Expected no missile")
	}
	if g.Player().Ammo != 0 {
		t.Errorf("Ammo went to %d", g.Player().Ammo)
	}
}

func TestPacemakerMovesLocalTimeToGlobalClock(t *testing.T) {
	g := newTestGame(t, nil)
	g.current.T = spacetime.Lorentz(2, 3, -.5).Mul4(g.current.T)

	before := g.current.Shift
	lm := g.landmark.Pose
	lm.Shift = g.current.Shift
	want := spacetime.Cross(g.current.Relative(lm), g.mode).Shift

	m := g.pacemaker()
	if math.Abs(m-want) > 1e-12 {
		t.Errorf("pacemaker moved %f, want %f", m, want)
	}
	if m <= 0 {
		t.Errorf("Expected a positive move, got %f", m)
	}
	if g.current.Shift != before+m {
		t.Errorf("Shift = %f, want %f", g.current.Shift, before+m)
	}
	if g.landmark.Main.Shift != 0 {
		t.Errorf("Landmark main shift = %f, want 0", g.landmark.Main.Shift)
	}
	if g.Player().Score != g.current.Shift {
		t.Errorf("Score = %f, want %f", g.Player().Score, g.current.Shift)
	}

	lm.Shift = g.current.Shift
	if again := spacetime.Cross(g.current.Relative(lm), g.mode).Shift; math.Abs(again) > 1e-9 {
		t.Errorf("Landmark still at local time %g after pacemaker", again)
	}
}

func TestScoreFollowsGlobalClock(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Player().Score <= 0 {
		t.Fatalf("Expected a positive score, got %f", g.Player().Score)
	}
	if math.Abs(g.Player().Score-g.current.Shift) > 1e-12 {
		t.Errorf("Score %f differs from shift %f", g.Player().Score, g.current.Shift)
	}
	if g.State().Score != int(math.Floor(g.Player().Score)) {
		t.Errorf("State score = %d", g.State().Score)
	}
}

func TestSuffocation(t *testing.T) {
	g := newTestGame(t, func(c *config.RelHellConfig) { c.Ship.Oxygen = .01 })

	sawGameOver := false
	for i := 0; i < 10 && !g.gameOver; i++ {
		res := g.Step(core.NewInputFrame())
		sawGameOver = sawGameOver || hasEvent(res.Events, core.EventGameOver)
	}
	if !g.State().GameOver {
		t.Fatal("Expected game over")
	}
	if !sawGameOver {
		t.Error("Expected a game-over event")
	}
	if g.State().Reason != "suffocated" {
		t.Errorf("Reason = %q, want suffocated", g.State().Reason)
	}
	if g.Player().Oxygen != 0 {
		t.Errorf("Oxygen = %f, want 0", g.Player().Oxygen)
	}

	n := len(g.History())
	g.Step(core.NewInputFrame())
	if len(g.History()) != n {
		t.Error("History grew after game over")
	}
}

func TestThrustConsumesFuel(t *testing.T) {
	tests := []struct {
		name     string
		fuel     float64
		wantMove bool
	}{
		{"with fuel", 100, true},
		{"empty tank", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, func(c *config.RelHellConfig) { c.Ship.Fuel = tt.fuel })
			in := core.NewInputFrame()
			in.SetMove(0, 1)
			g.Step(in)

			if math.Abs(g.Heading()-90) > 1e-9 {
				t.Errorf("Heading = %f, want 90", g.Heading())
			}
			used := tt.fuel - g.Player().Fuel
			if tt.wantMove && used <= 0 {
				t.Error("Expected fuel to be consumed")
			}
			if !tt.wantMove && g.Player().Fuel != 0 {
				t.Errorf("Fuel = %f, want 0", g.Player().Fuel)
			}
		})
	}
}

func TestPauseFreezesShip(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(core.NewInputFrame())
	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Expected paused")
	}

	oxygen := g.Player().Oxygen
	pt := g.ShipProperTime()
	n := len(g.History())
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionFire, core.ActionScrubFuture))
	}
	if g.Player().Oxygen != oxygen {
		t.Error("Oxygen consumed while paused")
	}
	if g.ShipProperTime() != pt {
		t.Error("Proper time advanced while paused")
	}
	if len(g.History()) != n {
		t.Error("History grew while paused")
	}
	if g.Objects().Count(world.KindMissile) != 0 {
		t.Error("Fired while paused")
	}
	if math.Abs(g.viewPT-10*tickPT(g)) > 1e-12 {
		t.Errorf("View offset = %f, want %f", g.viewPT, 10*tickPT(g))
	}
}

func TestUnpauseRestoresPose(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(core.NewInputFrame())
	g.switchPause()
	saved := g.current

	in := input(core.ActionScrubPast, core.ActionRotateView)
	in.SetMove(1, 0)
	for i := 0; i < 20; i++ {
		g.Step(in)
	}
	if g.current == saved {
		t.Fatal("Expected the view to move while paused")
	}

	g.switchPause()
	if g.current != saved {
		t.Error("Pose not restored on resume")
	}
}

func TestHistoryGrowsWhileFlying(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 15; i++ {
		g.Step(core.NewInputFrame())
	}
	h := g.History()
	if len(h) != 15 {
		t.Fatalf("Expected 15 history entries, got %d", len(h))
	}
	pt := tickPT(g)
	for i, ss := range h {
		if math.Abs(ss.Start-float64(i)*pt) > 1e-9 {
			t.Errorf("Entry %d starts at %f, want %f", i, ss.Start, float64(i)*pt)
		}
		if ss.Duration != pt {
			t.Errorf("Entry %d lasts %f, want %f", i, ss.Duration, pt)
		}
	}

	rec := g.Record()
	if len(rec.Entries) != 15 || rec.Variant != IDCanvas || rec.Seed != 7 {
		t.Errorf("Unexpected record: %d entries, variant %q, seed %d", len(rec.Entries), rec.Variant, rec.Seed)
	}
}

func TestLightConeAfterScrubbingFuture(t *testing.T) {
	g := newTestGame(t, nil)
	if pts, _ := g.LightCone(); pts != nil {
		t.Fatal("Light cone shown while flying")
	}

	g.Step(input(core.ActionPause))
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionScrubFuture))
	}
	pts, complete := g.LightCone()
	if len(pts) != 361 {
		t.Fatalf("Expected 361 rays, got %d", len(pts))
	}
	if !complete {
		t.Error("Expected every ray to lie in the future")
	}
}

func TestLightConeOnlyInSimMode(t *testing.T) {
	g := newTestGame(t, func(c *config.RelHellConfig) { c.View.CrossMode = "cone-near" })
	g.Step(input(core.ActionPause))
	if pts, _ := g.LightCone(); pts != nil {
		t.Error("Light cone shown outside simultaneity mode")
	}
}

func TestGhostsWhileScrubbingPast(t *testing.T) {
	g := newTestGame(t, func(c *config.RelHellConfig) { c.View.ShipHistoryPeriod = 0 })
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Ghosts() != nil {
		t.Fatal("Ghosts shown while flying")
	}

	g.Step(input(core.ActionPause))
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionScrubPast))
	}

	want := g.ShipProperTime() - 10*tickPT(g)
	ghosts := g.Ghosts()
	if len(ghosts) == 0 {
		t.Fatal("Expected a ghost")
	}
	found := false
	for _, gh := range ghosts {
		if math.Abs(gh.ProperTime-want) < 1e-3 {
			found = true
		}
		if len(gh.Pts) != len(world.ShapeShip.Points()) {
			t.Errorf("Ghost outline has %d points", len(gh.Pts))
		}
	}
	if !found {
		t.Errorf("No ghost near proper time %f: %+v", want, ghosts[0].ProperTime)
	}
}

func TestCrashInvincibility(t *testing.T) {
	g := newTestGame(t, nil)

	g.crashShip("test")
	if g.Player().Hull != 3 {
		t.Errorf("Hull damaged during invincibility: %d", g.Player().Hull)
	}

	g.shipPT = 2
	g.crashShip("test")
	if g.Player().Hull != 2 {
		t.Errorf("Expected hull 2, got %d", g.Player().Hull)
	}
	if g.invincibleUntil != 2+g.cfg.Ship.Invincibility {
		t.Errorf("invincibleUntil = %f", g.invincibleUntil)
	}
	g.crashShip("test")
	if g.Player().Hull != 2 {
		t.Error("Hull damaged twice in a row")
	}

	g.shipPT = 10
	g.player.Hull = 1
	g.crashShip("crashed into a star")
	if !g.State().GameOver || g.State().Reason != "crashed into a star" {
		t.Errorf("Expected game over, got %+v", g.State())
	}
}

func TestGainRespectsCaps(t *testing.T) {
	res := config.DefaultConfig().Resources
	tests := []struct {
		name  string
		start PlayerData
		kind  world.ResourceKind
		check func(PlayerData) bool
	}{
		{"hull", PlayerData{Hull: 2}, world.ResourceHull, func(p PlayerData) bool { return p.Hull == 3 }},
		{"hull capped", PlayerData{Hull: res.HullMax}, world.ResourceHull, func(p PlayerData) bool { return p.Hull == res.HullMax }},
		{"hull over cap kept", PlayerData{Hull: res.HullMax + 2}, world.ResourceHull, func(p PlayerData) bool { return p.Hull == res.HullMax+2 }},
		{"gold", PlayerData{Gold: 4}, world.ResourceGold, func(p PlayerData) bool { return p.Gold == 4+res.GoldGain }},
		{"ammo capped", PlayerData{Ammo: 45}, world.ResourceAmmo, func(p PlayerData) bool { return p.Ammo == res.AmmoMax }},
		{"fuel", PlayerData{Fuel: 10}, world.ResourceFuel, func(p PlayerData) bool { return p.Fuel == 10+res.FuelGain }},
		{"oxygen capped", PlayerData{Oxygen: 149}, world.ResourceOxygen, func(p PlayerData) bool { return p.Oxygen == res.OxygenMax }},
		{"none", PlayerData{Hull: 1}, world.ResourceNone, func(p PlayerData) bool { return p == PlayerData{Hull: 1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.start
			p.gain(tt.kind, res)
			if !tt.check(p) {
				t.Errorf("Unexpected supplies after %s: %+v", tt.kind, p)
			}
		})
	}
}

func TestPoisson(t *testing.T) {
	g := newTestGame(t, nil)
	if g.poisson(0) != 0 || g.poisson(-1) != 0 {
		t.Error("Expected 0 for non-positive mean")
	}
	sum := 0
	for i := 0; i < 2000; i++ {
		sum += g.poisson(4)
	}
	if mean := float64(sum) / 2000; math.Abs(mean-4) > .3 {
		t.Errorf("Sample mean %f far from 4", mean)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultConfig()
	run := func() *Game {
		g := New(WithConfig(cfg))
		g.Reset(core.RuntimeConfig{Seed: 12345, TickRate: 60})
		for i := 0; i < 200; i++ {
			in := core.NewInputFrame()
			if i%7 == 0 {
				in.SetMove(math.Cos(float64(i)), math.Sin(float64(i)))
			}
			if i%25 == 0 {
				in.Set(core.ActionFire)
			}
			g.Step(in)
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.Observer() != g2.Observer() {
		t.Error("Observer pose mismatch")
	}
	if g1.Player() != g2.Player() {
		t.Errorf("Player mismatch: %+v vs %+v", g1.Player(), g2.Player())
	}
	if g1.Objects().Len() != g2.Objects().Len() {
		t.Errorf("Object count mismatch: %d vs %d", g1.Objects().Len(), g2.Objects().Len())
	}
}

func TestResetRestartsSession(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 30; i++ {
		g.Step(input(core.ActionFire))
	}
	g.Reset(g.runtime)

	fresh := newTestGame(t, nil)
	if g.Player() != fresh.Player() {
		t.Errorf("Player not reset: %+v", g.Player())
	}
	if g.Objects().Len() != fresh.Objects().Len() {
		t.Errorf("Expected %d objects, got %d", fresh.Objects().Len(), g.Objects().Len())
	}
	if len(g.History()) != 0 || g.ShipProperTime() != 0 {
		t.Error("History not cleared")
	}
}

func TestToggles(t *testing.T) {
	g := newTestGame(t, nil)
	res := g.Step(input(core.ActionToggleTimes, core.ActionToggleSpin, core.ActionMenu))
	if !g.ViewTimes() || !g.AutoRotate() {
		t.Error("Expected both toggles on")
	}
	if !hasEvent(res.Events, core.EventMenu) {
		t.Error("Expected a menu event")
	}
	g.Step(input(core.ActionToggleTimes, core.ActionToggleSpin))
	if g.ViewTimes() || g.AutoRotate() {
		t.Error("Expected both toggles off")
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		setup   func(*Game)
		want    string
		notWant string
	}{
		{"flying", nil, func(*Game) {}, "Hull 3", "PAUSED"},
		{"paused", nil, func(g *Game) { g.Step(input(core.ActionPause)) }, "PAUSED", "GAME OVER"},
		{"game over", []Option{Bare()}, func(g *Game) { g.endGame("suffocated") }, "GAME OVER", "PAUSED"},
		{"times", nil, func(g *Game) { g.Step(input(core.ActionToggleTimes, core.ActionToggleSpin)) }, "Score", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			g := New(append([]Option{WithConfig(cfg)}, tt.opts...)...)
			g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60})
			tt.setup(g)

			scr := core.NewScreen(80, 24)
			g.Render(scr)
			out := scr.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %q in output:\n%s", tt.want, out)
			}
			if tt.notWant != "" && strings.Contains(out, tt.notWant) {
				t.Errorf("Unexpected %q in output", tt.notWant)
			}
		})
	}
}

func TestObjectsAtLandmark(t *testing.T) {
	g := newTestGame(t, nil)
	g.current = spacetime.NewPose(spacetime.Identity(), 0)
	g.frame = world.Lookup(g.objs, g.view())

	under := g.ObjectsAt(core.Point{})
	if len(under) != 1 || under[0] != g.Landmark() {
		t.Errorf("Expected only the landmark under the ship, got %d objects", len(under))
	}
}

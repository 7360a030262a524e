// Package relhell implements Relative Hell, a shooter in de Sitter space.
// The ship flies among stars whose worldlines are fixed in spacetime; what
// the player sees is where those worldlines cross the ship's present.
package relhell

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/relhell/internal/config"
	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/gen"
	"github.com/vovakirdan/relhell/internal/registry"
	"github.com/vovakirdan/relhell/internal/spacetime"
	"github.com/vovakirdan/relhell/internal/world"
)

// Variant IDs.
const (
	IDCanvas = "relhell"
	IDBare   = "relhell-bare"
)

// Sound receives fire-and-forget cue notifications.
type Sound interface {
	Play(name string)
}

// Sound cues.
const (
	SoundFire      = "fire"
	SoundHit       = "hit-crush"
	SoundExplosion = "explosion"
	SoundPickup    = "pickup"
)

type silence struct{}

func (silence) Play(string) {}

// Game is one play session.
type Game struct {
	id     string
	canvas bool

	runtime core.RuntimeConfig
	cfg     config.RelHellConfig
	fixed   *config.RelHellConfig // Set by WithConfig, skips loading
	logger  *log.Logger
	sound   Sound
	rng     *rand.Rand
	mode    spacetime.Mode

	objs      *world.Objects
	rocks     *gen.Generator
	resources *gen.Generator
	homeStar  *world.Object
	landmark  *world.Object
	frame     world.Frame

	current  spacetime.Pose // Observer
	shipPose spacetime.Pose // Observer at the moment of pausing
	ang      float64        // Ship heading in degrees

	shipPT          float64 // Ship proper time
	viewPT          float64 // Scrub offset while paused
	invincibleUntil float64
	history         []ShipState

	player     PlayerData
	paused     bool
	gameOver   bool
	reason     string
	viewTimes  bool
	autoRotate bool
	tickCount  int
	events     []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading the configuration on Reset.
func WithConfig(cfg config.RelHellConfig) Option {
	return func(g *Game) {
		g.fixed = &cfg
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSound sets the audio sink.
func WithSound(s Sound) Option {
	return func(g *Game) {
		if s != nil {
			g.sound = s
		}
	}
}

// Bare drops the canvas: no backdrop grid.
func Bare() Option {
	return func(g *Game) {
		g.id = IDBare
		g.canvas = false
	}
}

// configPath, difficultyPreset, defaultLogger and defaultSound are set via
// CLI flags and apply to games created by the registry.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	defaultLogger    *log.Logger
	defaultSound     Sound
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger of games created by the registry.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

// SetSound sets the audio sink of games created by the registry.
func SetSound(s Sound) {
	defaultSound = s
}

// New creates a new game instance.
func New(opts ...Option) *Game {
	g := &Game{
		id:     IDCanvas,
		canvas: true,
		logger: log.New(io.Discard),
		sound:  silence{},
		objs:   world.NewObjects(),
	}
	if defaultLogger != nil {
		g.logger = defaultLogger
	}
	if defaultSound != nil {
		g.sound = defaultSound
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.canvas {
		return "Relative Hell"
	}
	return "Relative Hell (bare)"
}

// Description summarises the variant for listings.
func (g *Game) Description() string {
	if g.canvas {
		return "field drawn over distance rings around the ship"
	}
	return "objects and HUD only, without the distance rings"
}

// loadConfig resolves the configuration for a new session.
func (g *Game) loadConfig() config.RelHellConfig {
	if g.fixed != nil {
		return *g.fixed
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.mode = spacetime.ParseMode(g.cfg.View.CrossMode)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.objs.Clear()
	g.history = nil
	g.frame = world.Frame{}
	g.events = nil

	scale := g.cfg.Physics.Scale
	g.current = spacetime.NewPose(spacetime.CSpin(0, 2, g.cfg.Ship.StartDistance*scale), 0)
	g.shipPose = g.current
	g.ang = 0
	g.invincibleUntil = g.cfg.Ship.Invincibility
	g.shipPT = 0
	g.viewPT = 0

	g.player = newPlayerData(g.cfg.Ship)
	g.paused = false
	g.gameOver = false
	g.reason = ""
	g.tickCount = 0

	opts := []gen.Option{
		gen.WithLogger(g.logger),
		gen.WithScale(scale),
		gen.Disabled(g.cfg.Generation.Disabled),
	}
	g.rocks = gen.New(g.objs, g.rng, opts...)
	g.resources = gen.New(g.objs, g.rng, opts...)
	g.initWorld()

	g.frame = world.Lookup(g.objs, g.view())
	g.logger.Info("session reset", "variant", g.id, "seed", runtime.Seed, "mode", g.mode, "objects", g.objs.Len())
}

// initWorld places the home star and the landmark and generates the
// first stretch of the timeline.
func (g *Game) initWorld() {
	g.rocks.Reset()
	g.resources.Reset()

	g.homeStar = g.rocks.Add(spacetime.Identity())
	g.homeStar.Kind = world.KindMainRock
	g.homeStar.Color = world.ColorHomeStar

	g.landmark = g.rocks.Add(spacetime.Identity())
	g.landmark.Kind = world.KindMainRock
	g.landmark.Color = world.ColorLandmark
	g.landmark.Shape = world.ShapeGold
	g.landmark.Main.Shift = 0

	lookahead := g.cfg.LookaheadOrDefault()
	g.rocks.Advance(2)
	if g.cfg.Generation.Demo {
		g.rocks.Demo()
	}
	g.rocks.ExtendTo(lookahead)

	g.resources.Advance(1)
	g.resources.ExtendResourcesTo(lookahead)
}

// view describes the observer for object lookup.
func (g *Game) view() world.View {
	return world.View{
		Observer:          g.current,
		Mode:              g.mode,
		Scale:             g.cfg.Physics.Scale,
		FutureShown:       g.cfg.View.FutureShown,
		FutureShownSpiral: g.cfg.View.FutureShownSpiral,
		MinZ:              g.cfg.View.VisibleMinZ,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(math.Floor(g.player.Score)),
		GameOver: g.gameOver,
		Paused:   g.paused,
		Reason:   g.reason,
	}
}

// Stats reports the run for persistence.
func (g *Game) Stats() core.RunStats {
	return core.RunStats{
		Score:      g.player.Score,
		RocksHit:   g.player.RocksHit,
		Resources:  g.player.ResourcesCollected,
		Gold:       g.player.Gold,
		ProperTime: g.shipPT,
		Reason:     g.reason,
	}
}

// Player returns the ship's supplies and counters.
func (g *Game) Player() PlayerData {
	return g.player
}

// Observer returns the observer's pose.
func (g *Game) Observer() spacetime.Pose {
	return g.current
}

// Heading returns the ship heading in degrees.
func (g *Game) Heading() float64 {
	return g.ang
}

// ShipProperTime returns the ship's accumulated proper time.
func (g *Game) ShipProperTime() float64 {
	return g.shipPT
}

// Objects returns the session's object registry.
func (g *Game) Objects() *world.Objects {
	return g.objs
}

// Landmark returns the object that keeps the global clock.
func (g *Game) Landmark() *world.Object {
	return g.landmark
}

// Frame returns the result of the last lookup.
func (g *Game) Frame() world.Frame {
	return g.frame
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.RelHellConfig {
	return g.cfg
}

// ObjectsAt lists the objects under point p of the observer's tangent plane.
func (g *Game) ObjectsAt(p core.Point) []*world.Object {
	return g.frame.ObjectsAt(p, g.landmark)
}

// ViewTimes reports whether proper times are displayed.
func (g *Game) ViewTimes() bool {
	return g.viewTimes
}

// AutoRotate reports whether the view turns with the ship.
func (g *Game) AutoRotate() bool {
	return g.autoRotate
}

// Register both variants with the registry
func init() {
	registry.Register(IDCanvas, func() registry.Game {
		return New()
	})
	registry.Register(IDBare, func() registry.Game {
		return New(Bare())
	})
}

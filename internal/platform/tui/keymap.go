package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/relhell/internal/core"
)

// holdTicks is how long a movement key counts as held after its last
// press. Terminals only report presses and auto-repeat, not releases.
const holdTicks = 10

// GameKeyMap defines the key bindings used during play.
type GameKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Rotate      key.Binding
	Fire        key.Binding
	Pause       key.Binding
	Times       key.Binding
	Spin        key.Binding
	ScrubFuture key.Binding
	ScrubPast   key.Binding
	Restart     key.Binding
	Menu        key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Fire, k.Pause, k.Times, k.Spin, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Fire},
		{k.Pause, k.ScrubFuture, k.ScrubPast, k.Rotate},
		{k.Times, k.Spin, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("wasd/arrows", "thrust")),
		Down:        key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("down/s", "thrust down")),
		Left:        key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("left/a", "thrust left")),
		Right:       key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("right/d", "thrust right")),
		Rotate:      key.NewBinding(key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right", "W", "A", "S", "D"), key.WithHelp("shift+move", "turn view (paused)")),
		Fire:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Pause:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Times:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "proper times")),
		Spin:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "auto-rotate")),
		ScrubFuture: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "look ahead (paused)")),
		ScrubPast:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "look back (paused)")),
		Restart:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Menu:        key.NewBinding(key.WithKeys("esc")),
		Screenshot:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// direction returns the unit movement of a movement key and whether it
// turns the view instead of thrusting.
func direction(k string) (x, y float64, rotate, ok bool) {
	switch k {
	case "up", "w":
		return 0, 1, false, true
	case "down", "s":
		return 0, -1, false, true
	case "left", "a":
		return -1, 0, false, true
	case "right", "d":
		return 1, 0, false, true
	case "shift+up", "W":
		return 0, 1, true, true
	case "shift+down", "S":
		return 0, -1, true, true
	case "shift+left", "A":
		return -1, 0, true, true
	case "shift+right", "D":
		return 1, 0, true, true
	}
	return 0, 0, false, false
}

// Input accumulates key presses between ticks. Movement keys stay held
// for holdTicks ticks; scrubbing keys likewise, other actions fire once.
type Input struct {
	keys GameKeyMap

	frame  core.InputFrame
	moveX  float64
	moveY  float64
	rotate bool
	hold   int
	scrub  core.Action
	scrubT int
}

// NewInput creates an input accumulator with the given bindings.
func NewInput(keys GameKeyMap) *Input {
	return &Input{keys: keys, frame: core.NewInputFrame()}
}

// HandleKey records a key press. It returns true for a quit request.
func (in *Input) HandleKey(msg tea.KeyMsg) (quit bool) {
	k := msg.String()
	if x, y, rotate, ok := direction(k); ok {
		// Perpendicular presses within the hold window combine into a diagonal.
		if in.hold > 0 && (in.moveX == 0 || in.moveY == 0) && (x == 0) != (in.moveX == 0) {
			x, y = x+in.moveX, y+in.moveY
		}
		in.moveX, in.moveY = x, y
		in.rotate = rotate
		in.hold = holdTicks
		return false
	}

	switch {
	case key.Matches(msg, in.keys.Quit):
		in.frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, in.keys.Fire):
		in.frame.Set(core.ActionFire)
	case key.Matches(msg, in.keys.Pause):
		in.frame.Set(core.ActionPause)
	case key.Matches(msg, in.keys.Times):
		in.frame.Set(core.ActionToggleTimes)
	case key.Matches(msg, in.keys.Spin):
		in.frame.Set(core.ActionToggleSpin)
	case key.Matches(msg, in.keys.Menu):
		in.frame.Set(core.ActionMenu)
	case key.Matches(msg, in.keys.Restart):
		in.frame.Set(core.ActionRestart)
	case key.Matches(msg, in.keys.ScrubFuture):
		in.scrub, in.scrubT = core.ActionScrubFuture, holdTicks
	case key.Matches(msg, in.keys.ScrubPast):
		in.scrub, in.scrubT = core.ActionScrubPast, holdTicks
	}
	return false
}

// Frame returns the input for the next tick and ages held keys.
func (in *Input) Frame() core.InputFrame {
	f := in.frame.Clone()
	in.frame.Clear()

	if in.hold > 0 {
		f.SetMove(in.moveX, in.moveY)
		if in.rotate {
			f.Set(core.ActionRotateView)
		}
		in.hold--
	}
	if in.scrubT > 0 {
		f.Set(in.scrub)
		in.scrubT--
	}
	return f
}

// Reset drops every pending and held key.
func (in *Input) Reset() {
	in.frame.Clear()
	in.hold = 0
	in.scrubT = 0
}

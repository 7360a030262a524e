package core

import "math"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionFire               // Space - fire a missile
	ActionPause              // P - pause/unpause
	ActionToggleTimes        // T - show proper times
	ActionToggleSpin         // O - auto-rotate view
	ActionMenu               // Esc - open menu
	ActionScrubFuture        // ] - while paused, look into the future
	ActionScrubPast          // [ - while paused, look into the past
	ActionRotateView         // Shift - while paused, movement rotates the view
	ActionRestart            // R - restart after game over
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionToggleTimes:
		return "ToggleTimes"
	case ActionToggleSpin:
		return "ToggleSpin"
	case ActionMenu:
		return "Menu"
	case ActionScrubFuture:
		return "ScrubFuture"
	case ActionScrubPast:
		return "ScrubPast"
	case ActionRotateView:
		return "RotateView"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// Actions are the discrete triggers; MoveX/MoveY is the continuous movement vector
// (unit length at most, +X right, +Y up).
type InputFrame struct {
	Actions map[Action]bool
	MoveX   float64
	MoveY   float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetMove sets the movement vector, clamping its length to 1.
func (f *InputFrame) SetMove(x, y float64) {
	l := math.Hypot(x, y)
	if l > 1 {
		x, y = x/l, y/l
	}
	f.MoveX, f.MoveY = x, y
}

// Move returns the movement magnitude in [0, 1] and its heading in degrees.
// The heading is only meaningful when the magnitude is positive.
func (f InputFrame) Move() (mag, headingDeg float64) {
	mag = math.Min(math.Hypot(f.MoveX, f.MoveY), 1)
	if mag == 0 {
		return 0, 0
	}
	return mag, math.Atan2(f.MoveY, f.MoveX) * 180 / math.Pi
}

// Clear resets all actions and the movement vector for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.MoveX, f.MoveY = 0, 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.MoveX, clone.MoveY = f.MoveX, f.MoveY
	return clone
}

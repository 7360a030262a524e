package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/relhell/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInputActions(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"fire", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{"pause", runes("p"), core.ActionPause},
		{"times", runes("t"), core.ActionToggleTimes},
		{"spin", runes("o"), core.ActionToggleSpin},
		{"menu", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionMenu},
		{"restart", runes("r"), core.ActionRestart},
		{"scrub future", runes("]"), core.ActionScrubFuture},
		{"scrub past", runes("["), core.ActionScrubPast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput(DefaultGameKeyMap())
			if in.HandleKey(tt.msg) {
				t.Fatal("Unexpected quit")
			}
			if f := in.Frame(); !f.Has(tt.want) {
				t.Errorf("Expected %v in frame", tt.want)
			}
		})
	}
}

func TestInputQuit(t *testing.T) {
	in := NewInput(DefaultGameKeyMap())
	if !in.HandleKey(runes("q")) {
		t.Error("Expected q to quit")
	}
	if !in.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}) {
		t.Error("Expected ctrl+c to quit")
	}
}

func TestInputOneShotActionsClear(t *testing.T) {
	in := NewInput(DefaultGameKeyMap())
	in.HandleKey(tea.KeyMsg{Type: tea.KeySpace})
	in.Frame()
	if in.Frame().Has(core.ActionFire) {
		t.Error("Fire repeated on the next tick")
	}
}

func TestInputMovementIsHeld(t *testing.T) {
	in := NewInput(DefaultGameKeyMap())
	in.HandleKey(tea.KeyMsg{Type: tea.KeyUp})

	for i := 0; i < holdTicks; i++ {
		f := in.Frame()
		mag, heading := f.Move()
		if mag != 1 || math.Abs(heading-90) > 1e-9 {
			t.Fatalf("Tick %d: move (%f, %f), want (1, 90)", i, mag, heading)
		}
		if f.Has(core.ActionRotateView) {
			t.Fatal("Plain movement should not rotate the view")
		}
	}
	if mag, _ := in.Frame().Move(); mag != 0 {
		t.Error("Movement held past the hold window")
	}
}

func TestInputDiagonal(t *testing.T) {
	in := NewInput(DefaultGameKeyMap())
	in.HandleKey(runes("d"))
	in.HandleKey(runes("w"))

	mag, heading := in.Frame().Move()
	if math.Abs(mag-1) > 1e-9 || math.Abs(heading-45) > 1e-9 {
		t.Errorf("Expected unit move at 45°, got (%f, %f)", mag, heading)
	}
}

func TestInputRotateView(t *testing.T) {
	in := NewInput(DefaultGameKeyMap())
	in.HandleKey(tea.KeyMsg{Type: tea.KeyShiftLeft})

	f := in.Frame()
	if !f.Has(core.ActionRotateView) {
		t.Error("Expected the rotate action")
	}
	if _, heading := f.Move(); math.Abs(heading-180) > 1e-9 {
		t.Errorf("Heading = %f, want 180", heading)
	}
}

func TestInputScrubIsHeld(t *testing.T) {
	in := NewInput(DefaultGameKeyMap())
	in.HandleKey(runes("["))
	for i := 0; i < holdTicks; i++ {
		if !in.Frame().Has(core.ActionScrubPast) {
			t.Fatalf("Scrub released at tick %d", i)
		}
	}
	if in.Frame().Has(core.ActionScrubPast) {
		t.Error("Scrub held past the hold window")
	}

	in.HandleKey(runes("]"))
	in.Reset()
	if in.Frame().Has(core.ActionScrubFuture) {
		t.Error("Reset kept the scrub")
	}
}

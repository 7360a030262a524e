package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/flightlog"
	"github.com/vovakirdan/relhell/internal/storage"
)

// stubGame ends after a fixed number of ticks.
type stubGame struct {
	ticks   int
	endAt   int
	resets  int
	history []flightlog.Entry
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.ticks = 0
	g.resets++
}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.ticks++
	g.history = append(g.history, flightlog.Entry{Start: float64(g.ticks)})
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.ticks, GameOver: g.ticks >= g.endAt, Reason: "done"}
}

func (g *stubGame) Stats() core.RunStats {
	return core.RunStats{Score: float64(g.ticks) + .5, RocksHit: 2, Reason: "done"}
}

func (g *stubGame) Record() flightlog.Log {
	return flightlog.Log{Variant: g.ID(), Entries: g.history}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{endAt: 3}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 5}, Options{})
	m.Init()

	for i := 0; i < 6; i++ {
		next, _ := m.handleTick()
		m = next.(Model)
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Score != 3.5 || runs[0].RocksHit != 2 || runs[0].Seed != 5 {
		t.Errorf("Unexpected run: %+v", runs[0])
	}
	if m.runID != runs[0].ID {
		t.Errorf("Model run ID %q, stored %q", m.runID, runs[0].ID)
	}
	if v := m.View(); !strings.Contains(v, "saved as run "+shortID(runs[0].ID)) {
		t.Errorf("Game over view does not name the saved run:\n%s", v)
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"6f1c2a9e-0b4d-4e1a-9c3f-2d7e8a5b1c40", "6f1c2a9e"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shortID(tt.id); got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &stubGame{endAt: 1}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})
	m.Init()

	next, _ := m.handleTick()
	m = next.(Model)
	if !m.gameState.GameOver {
		t.Fatal("Expected game over")
	}

	m.input.HandleKey(runes("r"))
	next, _ = m.handleTick()
	m = next.(Model)
	if game.resets != 2 {
		t.Errorf("Expected a second reset, got %d", game.resets)
	}
	if m.saved {
		t.Error("Saved flag not cleared on restart")
	}
	if m.runID != "" {
		t.Error("Run ID not cleared on restart")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{endAt: 100}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})
	if v := m.View(); v == "" {
		t.Error("Expected a rendered view")
	}
}

func TestSaveFlightLog(t *testing.T) {
	game := &stubGame{endAt: 100}
	game.Step(core.NewInputFrame())
	game.Step(core.NewInputFrame())

	if err := saveFlightLog(game, ""); err != nil {
		t.Errorf("Empty path should be a no-op, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "flight.msgpack")
	if err := saveFlightLog(game, path); err != nil {
		t.Fatalf("saveFlightLog() failed: %v", err)
	}
	l, err := flightlog.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(l.Entries) != 2 || l.Variant != "stub" {
		t.Errorf("Unexpected log: %d entries, variant %q", len(l.Entries), l.Variant)
	}
}

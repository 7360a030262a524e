package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/flightlog"
	"github.com/vovakirdan/relhell/internal/registry"
	"github.com/vovakirdan/relhell/internal/storage"
)

// Recorder is implemented by games that export their flight history.
type Recorder interface {
	Record() flightlog.Log
}

// Options tunes a play session.
type Options struct {
	// RecordPath receives the flight log when the session ends. Empty
	// disables recording.
	RecordPath string
	Logger     *log.Logger
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	input     *Input
	keys      GameKeyMap
	help      help.Model
	gameState core.GameState
	logger    *log.Logger
	quitting  bool
	saved     bool // Whether the run has been saved for the current game over
	runID     string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultGameKeyMap()

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:  store,
		config: cfg,
		input:  NewInput(keys),
		keys:   keys,
		help:   help.New(),
		logger: logger,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if m.input.HandleKey(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.input.Frame()

	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.runID = ""
		m.input.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State
	for _, e := range result.Events {
		if e.Kind == core.EventMenu {
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	if m.gameState.GameOver && !m.saved {
		m.saveRun()
		m.saved = true
	}
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Failures are logged, play goes on.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	st := core.RunStats{Score: float64(m.gameState.Score), Reason: m.gameState.Reason}
	if r, ok := m.game.(registry.StatsReporter); ok {
		st = r.Stats()
	}
	id, err := m.store.SaveRun(m.game.ID(), m.config.Seed, st)
	if err != nil {
		m.logger.Error("could not save run", "err", err)
		return
	}
	m.runID = id
	m.logger.Info("run saved", "id", id, "score", st.Score)
}

// saveScreenshot saves the current screen to ~/.relhell/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".relhell", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
	}
}

// View renders the game above a one-line help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	footer := m.help.View(m.keys)
	if m.gameState.GameOver && m.runID != "" {
		footer = fmt.Sprintf("saved as run %s  %s", shortID(m.runID), footer)
	}
	return RenderFrame(m.screen, footer)
}

// shortID is the first block of a run ID, enough to find it in the scoreboard.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// Run starts a local play session and blocks until it ends. The flight
// log is written on exit when opts.RecordPath is set.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return saveFlightLog(game, opts.RecordPath)
}

// saveFlightLog writes the game's history to path when both are present.
func saveFlightLog(game registry.Game, path string) error {
	if path == "" {
		return nil
	}
	rec, ok := game.(Recorder)
	if !ok {
		return fmt.Errorf("tui: game %q cannot record its flight", game.ID())
	}
	return flightlog.Save(path, rec.Record())
}

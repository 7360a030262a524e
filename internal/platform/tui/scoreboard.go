package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/relhell/internal/registry"
	"github.com/vovakirdan/relhell/internal/storage"
)

const (
	// Below this width the run pane goes under the table.
	minWidthForPane = 96
	paneWidth       = 30
	maxScores       = 100
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev, k.Refresh}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev run")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next run")),
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next variant")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev variant")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses stored runs one variant at a time. The pane
// beside the table shows the variant's totals and the selected run.
type ScoreboardModel struct {
	store    *storage.Store
	variants []registry.GameInfo
	current  int
	variant  string

	runs     []storage.Run
	stats    map[string]*storage.VariantStats
	selected *storage.Run
	err      error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard opened on the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = newRunTable(m.tableWidth(), m.tableHeight())
	m.loadStats()
	if len(m.variants) > 0 {
		m.loadRuns(m.variants[0].ID)
	}
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForPane
}

func (m ScoreboardModel) tableWidth() int {
	w := m.width - 4
	if m.wide() {
		w -= paneWidth + 4
	}
	return max(w, 30)
}

func (m ScoreboardModel) tableHeight() int {
	h := m.height - 7
	if !m.wide() {
		h -= 10
	}
	return max(h, 3)
}

// newRunTable builds the run table; the date column takes what is left.
func newRunTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "τ", Width: 7},
		{Title: "Hits", Width: 5},
		{Title: "Gold", Width: 5},
		{Title: "Date", Width: 12},
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := width - used; extra > 0 {
		columns[len(columns)-1].Width += min(extra, 8)
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithStyles(s),
	)
}

// loadStats reads the per-variant totals.
func (m *ScoreboardModel) loadStats() {
	m.stats = nil
	if m.store == nil {
		return
	}
	stats, err := m.store.Stats()
	if err != nil {
		m.err = err
		return
	}
	m.stats = stats
}

// loadRuns switches the board to variant and reads its best runs.
func (m *ScoreboardModel) loadRuns(variant string) {
	m.variant = variant
	m.runs = nil
	m.err = nil
	if m.store != nil {
		runs, err := m.store.TopRuns(variant, maxScores)
		if err != nil {
			m.err = err
		}
		m.runs = runs
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", r.Score),
			fmt.Sprintf("%.1f", r.ProperTime),
			fmt.Sprintf("%d", r.RocksHit),
			fmt.Sprintf("%d", r.Gold),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.selectRun()
}

// selectRun fetches the run under the table cursor for the detail pane.
func (m *ScoreboardModel) selectRun() {
	m.selected = nil
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.runs) {
		return
	}
	r, err := m.store.RunByID(m.runs[i].ID)
	if err != nil {
		m.err = err
		return
	}
	m.selected = r
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.variants) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.variants)) % len(m.variants)
	m.loadRuns(m.variants[m.current].ID)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.loadStats()
			m.loadRuns(m.variant)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cursor := m.table.Cursor()
		rows := m.table.Rows()
		m.table = newRunTable(m.tableWidth(), m.tableHeight())
		m.table.SetRows(rows)
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	before := m.table.Cursor()
	m.table, cmd = m.table.Update(msg)
	if m.table.Cursor() != before {
		m.selectRun()
	}
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := boardTitleStyle.Render(centerText("FURTHEST FLIGHTS", m.width))
	board := boxStyle.Render(m.tableView())
	pane := m.paneView()

	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, board, " ", boxStyle.Width(paneWidth).Render(pane))
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, board, pane)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.tabsView(),
		body,
		labelStyle.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) tabsView() string {
	if len(m.variants) == 0 {
		return tabStyle.Render(m.variant)
	}
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(v.Title)
		} else {
			tabs[i] = tabStyle.Render(v.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width {
		line = activeTabStyle.Render("< " + m.variants[m.current].Title + " >")
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	switch {
	case m.err != nil:
		return mutedStyle.Render("Cannot read runs: " + m.err.Error())
	case len(m.runs) == 0:
		return mutedStyle.Padding(1, 2).Render("No runs recorded yet.\nFly further than anyone to set a high score!")
	}
	return m.table.View()
}

// paneView lists the variant totals followed by the selected run.
func (m ScoreboardModel) paneView() string {
	var b strings.Builder
	field := func(label, format string, args ...any) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", label)))
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\n")
	}

	b.WriteString(boardTitleStyle.Render("Variant"))
	b.WriteString("\n")
	if st, ok := m.stats[m.variant]; ok {
		field("Runs", "%d", st.Runs)
		field("Best", "%.2f", st.HighScore)
		field("Average", "%.2f", st.AvgScore)
		field("Hits", "%d", st.RocksHit)
		if !st.LastPlayed.IsZero() {
			field("Last", "%s", st.LastPlayed.Format("Jan 02 15:04"))
		}
	} else {
		b.WriteString(mutedStyle.Render("never flown"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(boardTitleStyle.Render("Selected run"))
	b.WriteString("\n")
	r := m.selected
	if r == nil {
		b.WriteString(mutedStyle.Render("none"))
		return b.String()
	}
	field("ID", "%s", shortID(r.ID))
	field("Seed", "%d", r.Seed)
	field("Score", "%.3f", r.Score)
	field("τ", "%.3f", r.ProperTime)
	field("Rocks hit", "%d", r.RocksHit)
	field("Picked up", "%d (gold %d)", r.Resources, r.Gold)
	b.WriteString(labelStyle.Render("Ended"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(paneWidth - 2).Render(r.Reason))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen until the user leaves it.
// goBack reports whether the user asked to go back rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

// centerText left-pads text to center it in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/storage"
)

func openRunStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardLoadsRuns(t *testing.T) {
	store := openRunStore(t)
	store.SaveRun("relhell", 1, core.RunStats{Score: 2.5, Reason: "suffocated"})
	store.SaveRun("relhell", 2, core.RunStats{Score: 4, RocksHit: 3, Reason: "crashed into a star"})
	store.SaveRun("relhell-bare", 3, core.RunStats{Score: 9, Reason: "suffocated"})

	m := NewScoreboardModel(store, 120, 30)
	m.loadRuns("relhell")

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "4.00" || rows[0][3] != "3" {
		t.Errorf("Unexpected first row: %v", rows[0])
	}
	if m.selected == nil || m.selected.Reason != "crashed into a star" {
		t.Errorf("Expected the best run selected, got %+v", m.selected)
	}
}

func TestScoreboardSelectionFollowsCursor(t *testing.T) {
	store := openRunStore(t)
	store.SaveRun("relhell", 11, core.RunStats{Score: 4, Reason: "crashed into a star"})
	store.SaveRun("relhell", 22, core.RunStats{Score: 2, Reason: "suffocated"})

	m := NewScoreboardModel(store, 120, 30)
	m.loadRuns("relhell")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(ScoreboardModel)
	if m.selected == nil || m.selected.Seed != 22 {
		t.Fatalf("Expected the second run selected, got %+v", m.selected)
	}
	if v := m.View(); !strings.Contains(v, "suffocated") {
		t.Errorf("Detail pane does not show the selected run:\n%s", v)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(ScoreboardModel)
	if m.selected == nil || m.selected.Seed != 11 {
		t.Errorf("Expected the first run selected again, got %+v", m.selected)
	}
}

func TestScoreboardPane(t *testing.T) {
	store := openRunStore(t)
	store.SaveRun("relhell", 1, core.RunStats{Score: 2, RocksHit: 1, Reason: "suffocated"})
	store.SaveRun("relhell", 2, core.RunStats{Score: 4, RocksHit: 5, Reason: "suffocated"})

	tests := []struct {
		name    string
		variant string
		want    []string
	}{
		{"played", "relhell", []string{"Runs", "2", "Best", "4.00", "Average", "3.00", "Hits", "6"}},
		{"never played", "relhell-bare", []string{"never flown", "none"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(store, 120, 30)
			m.loadRuns(tt.variant)
			pane := m.paneView()
			for _, w := range tt.want {
				if !strings.Contains(pane, w) {
					t.Errorf("Pane missing %q:\n%s", w, pane)
				}
			}
		})
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	m.loadRuns("relhell")
	if len(m.table.Rows()) != 0 {
		t.Error("Expected no rows without a store")
	}
	if m.selected != nil {
		t.Error("Expected no selected run without a store")
	}
	if !strings.Contains(m.tableView(), "No runs recorded yet") {
		t.Error("Expected the empty message")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("Expected esc to leave the scoreboard")
	}
	if m.View() != "" {
		t.Error("Expected an empty view after leaving")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abcdef", 4, "abcdef"},
		{"τ", 3, " τ"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invasion/internal/storage"
)

func TestScoreRows(t *testing.T) {
	when := time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreEntry{
		{Score: 12500, Level: 4, Difficulty: "hard", Outcome: "victory", CreatedAt: when},
		{Score: 50, Level: 1, Difficulty: "easy", Outcome: "lost", CreatedAt: when},
	})

	if len(rows) != 2 {
		t.Fatalf("len(ScoreRows()) = %d, expected 2", len(rows))
	}
	expected := []string{"#1", "12,500", "4", "hard", "victory", "Mar 14 09:05"}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("rows[1][0] = %q, expected #2", rows[1][0])
	}
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, e := range []storage.ScoreEntry{
		{Score: 100, Level: 1, Difficulty: "easy", Outcome: "lost"},
		{Score: 300, Level: 2, Difficulty: "easy", Outcome: "lost"},
		{Score: 200, Level: 1, Difficulty: "medium", Outcome: "abandoned"},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 3 {
		t.Errorf("All tab shows %d scores, expected 3", len(m.scores))
	}

	tests := []struct {
		expectedTab    int
		expectedScores int
	}{
		{1, 2}, // easy
		{2, 1}, // medium
		{3, 0}, // hard
		{0, 3}, // wraps to all
	}
	for _, tc := range tests {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
		if m.tab != tc.expectedTab {
			t.Errorf("tab = %d, expected %d", m.tab, tc.expectedTab)
		}
		if len(m.scores) != tc.expectedScores {
			t.Errorf("tab %d shows %d scores, expected %d", m.tab, len(m.scores), tc.expectedScores)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.tab != len(scoreTabs)-1 {
		t.Errorf("shift+tab from first tab = %d, expected %d", m.tab, len(scoreTabs)-1)
	}

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") {
		t.Errorf("View() should contain the title, got %q", view)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.scores) != 0 || m.err != nil {
		t.Errorf("scoreboard without store: scores = %v, err = %v", m.scores, m.err)
	}
	if m.showSidebar {
		t.Error("sidebar should be hidden below the minimum width")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the scoreboard")
	}
}

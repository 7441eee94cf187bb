package invasion

import (
	"testing"

	"github.com/vovakirdan/tui-invasion/internal/config"
)

func TestMenuToggle(t *testing.T) {
	tests := []struct {
		name            string
		presses         []config.Difficulty
		expectedPressed config.Difficulty
		expectedMode    config.Difficulty
		expectedShips   int
	}{
		{"easy", []config.Difficulty{config.Easy}, config.Easy, config.Easy, 3},
		{"hard", []config.Difficulty{config.Hard}, config.Hard, config.Hard, 1},
		{"easy twice reverts", []config.Difficulty{config.Easy, config.Easy}, 0, config.Medium, 2},
		{"easy then hard", []config.Difficulty{config.Easy, config.Hard}, config.Hard, config.Hard, 1},
		{"medium", []config.Difficulty{config.Medium}, config.Medium, config.Medium, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := testSettings()
			m := NewMenu(80, 24)
			for _, mode := range tc.presses {
				m.Toggle(mode, s)
			}
			if m.Pressed() != tc.expectedPressed {
				t.Errorf("Pressed() = %v, expected %v", m.Pressed(), tc.expectedPressed)
			}
			if s.Difficulty != tc.expectedMode {
				t.Errorf("Difficulty = %v, expected %v", s.Difficulty, tc.expectedMode)
			}
			if s.ShipsLimit != tc.expectedShips {
				t.Errorf("ShipsLimit = %d, expected %d", s.ShipsLimit, tc.expectedShips)
			}
		})
	}
}

func TestMenuSelect(t *testing.T) {
	s := testSettings()
	m := NewMenu(80, 24)

	m.Select(config.Hard, s)
	if m.Pressed() != config.Hard || s.Difficulty != config.Hard {
		t.Errorf("Select(Hard) pressed = %v, mode = %v", m.Pressed(), s.Difficulty)
	}

	// Selecting the held mode again keeps it
	m.Select(config.Hard, s)
	if m.Pressed() != config.Hard {
		t.Errorf("Select(Hard) twice pressed = %v, expected %v", m.Pressed(), config.Hard)
	}

	m.Select(config.Medium, s)
	if m.Pressed() != 0 {
		t.Errorf("Select(Medium) pressed = %v, expected none", m.Pressed())
	}
}

func TestMenuButtonAt(t *testing.T) {
	m := NewMenu(80, 24)
	// Buttons are 20 wide, centred: x in [30, 50); play starts at row 6
	tests := []struct {
		name     string
		phase    Phase
		x, y     int
		expected ButtonID
		ok       bool
	}{
		{"play", PhaseMenu, 40, 6, ButtonPlay, true},
		{"settings", PhaseMenu, 30, 9, ButtonSettings, true},
		{"help", PhaseMenu, 49, 13, ButtonHelp, true},
		{"exit", PhaseMenu, 40, 15, ButtonExit, true},
		{"easy", PhaseSettings, 40, 6, ButtonEasy, true},
		{"back", PhaseSettings, 40, 17, ButtonBack, true},
		{"right of buttons", PhaseMenu, 50, 6, 0, false},
		{"between sections", PhaseMenu, 40, 5, 0, false},
		{"no buttons while playing", PhaseActive, 40, 6, 0, false},
		{"no buttons in help", PhaseHelp, 40, 6, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := m.ButtonAt(tc.phase, tc.x, tc.y)
			if ok != tc.ok || id != tc.expected {
				t.Errorf("ButtonAt(%v, %d, %d) = %v, %v, expected %v, %v",
					tc.phase, tc.x, tc.y, id, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestMenuLayoutFollowsResize(t *testing.T) {
	m := NewMenu(80, 24)
	m.Layout(120, 40)

	if _, ok := m.ButtonAt(PhaseMenu, 40, 6); ok {
		t.Error("old button position should miss after Layout")
	}
	if id, ok := m.ButtonAt(PhaseMenu, 60, 14); !ok || id != ButtonPlay {
		t.Errorf("ButtonAt(60, 14) = %v, %v, expected play", id, ok)
	}
}

func TestStats(t *testing.T) {
	var s Stats
	s.Reset(3)
	if s.Score != 0 || s.Level != 1 || s.Lives != 3 {
		t.Errorf("Reset(3) = %+v", s)
	}

	s.AddScore(50)
	s.AddScore(25)
	if s.Score != 75 || s.HighScore != 75 {
		t.Errorf("after AddScore score = %d, high = %d, expected 75, 75", s.Score, s.HighScore)
	}

	s.Reset(2)
	s.AddScore(10)
	if s.HighScore != 75 {
		t.Errorf("HighScore = %d, expected 75 to survive Reset", s.HighScore)
	}

	s.SeedHighScore(40)
	if s.HighScore != 75 {
		t.Errorf("SeedHighScore(40) lowered the high score to %d", s.HighScore)
	}
	s.SeedHighScore(900)
	if s.HighScore != 900 {
		t.Errorf("SeedHighScore(900) = %d, expected 900", s.HighScore)
	}
}

func TestPhase(t *testing.T) {
	tests := []struct {
		phase          Phase
		name           string
		inGame, inMenu bool
	}{
		{PhaseMenu, "menu", false, true},
		{PhaseSettings, "settings", false, true},
		{PhaseHelp, "help", false, true},
		{PhaseActive, "active", true, false},
		{PhasePaused, "paused", true, false},
		{PhaseComplete, "complete", false, false},
	}

	for _, tc := range tests {
		if tc.phase.String() != tc.name {
			t.Errorf("String() = %q, expected %q", tc.phase.String(), tc.name)
		}
		if tc.phase.InGame() != tc.inGame {
			t.Errorf("%v.InGame() = %v, expected %v", tc.phase, tc.phase.InGame(), tc.inGame)
		}
		if tc.phase.InMenu() != tc.inMenu {
			t.Errorf("%v.InMenu() = %v, expected %v", tc.phase, tc.phase.InMenu(), tc.inMenu)
		}
	}
}

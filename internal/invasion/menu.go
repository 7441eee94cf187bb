package invasion

import (
	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/core"
)

// ButtonID identifies a clickable menu button.
type ButtonID int

const (
	ButtonPlay ButtonID = iota
	ButtonSettings
	ButtonHelp
	ButtonExit
	ButtonEasy
	ButtonMedium
	ButtonHard
	ButtonBack
)

// Button dimensions in cells.
const (
	buttonWidth  = 20
	buttonHeight = 3
)

// Vertical offsets of the four buttons of a section, relative to the screen centre.
var buttonOffsets = [4]int{-6, -3, 0, 3}

// Button is a labelled rectangle on the menu screen.
type Button struct {
	ID    ButtonID
	Label string
	Rect  core.Rect
}

// Menu holds the buttons of the menu and settings sections and which difficulty
// button is currently held down.
type Menu struct {
	main     [4]Button
	settings [4]Button
	pressed  config.Difficulty // 0 when no difficulty button is held
}

// NewMenu lays out the buttons for a screen of the given size.
func NewMenu(screenW, screenH int) *Menu {
	m := &Menu{}
	m.Layout(screenW, screenH)
	return m
}

// Layout recomputes button positions, keeping the pressed state.
func (m *Menu) Layout(screenW, screenH int) {
	mainIDs := [4]ButtonID{ButtonPlay, ButtonSettings, ButtonHelp, ButtonExit}
	mainLabels := [4]string{"Play", "Settings", "Help", "Exit"}
	settingsIDs := [4]ButtonID{ButtonEasy, ButtonMedium, ButtonHard, ButtonBack}
	settingsLabels := [4]string{config.Easy.Label(), config.Medium.Label(), config.Hard.Label(), "Back"}

	x := (screenW - buttonWidth) / 2
	for i, off := range buttonOffsets {
		r := core.NewRect(x, screenH/2+off, buttonWidth, buttonHeight)
		m.main[i] = Button{ID: mainIDs[i], Label: mainLabels[i], Rect: r}
		m.settings[i] = Button{ID: settingsIDs[i], Label: settingsLabels[i], Rect: r}
	}
}

// Buttons returns the buttons that can be pressed in the given phase.
func (m *Menu) Buttons(p Phase) []Button {
	switch p {
	case PhaseMenu:
		return m.main[:]
	case PhaseSettings:
		return m.settings[:]
	default:
		return nil
	}
}

// ButtonAt returns the button under the cell (x, y) in the given phase.
// Buttons of other sections never match.
func (m *Menu) ButtonAt(p Phase, x, y int) (ButtonID, bool) {
	for _, b := range m.Buttons(p) {
		if b.Rect.Contains(x, y) {
			return b.ID, true
		}
	}
	return 0, false
}

// Pressed returns the difficulty whose button is held down, or 0.
func (m *Menu) Pressed() config.Difficulty {
	return m.pressed
}

// Toggle presses the button of the given mode and applies it. Pressing the held
// button again releases it and restores Medium.
func (m *Menu) Toggle(mode config.Difficulty, s *config.Settings) {
	if m.pressed == mode {
		m.pressed = 0
		s.ResetDifficulty()
		return
	}
	s.SwitchDifficulty(mode)
	m.pressed = mode
}

// Select applies a mode without toggling. Medium leaves no button held.
func (m *Menu) Select(mode config.Difficulty, s *config.Settings) {
	s.SwitchDifficulty(mode)
	m.pressed = 0
	if mode != config.Medium {
		m.pressed = mode
	}
}

func difficultyForButton(id ButtonID) config.Difficulty {
	switch id {
	case ButtonEasy:
		return config.Easy
	case ButtonHard:
		return config.Hard
	default:
		return config.Medium
	}
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/invasion"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{"g", runeKey('g'), core.ActionStart},
		{"s", runeKey('s'), core.ActionSettings},
		{"h", runeKey('h'), core.ActionHelp},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionReset},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"1", runeKey('1'), core.ActionEasy},
		{"2", runeKey('2'), core.ActionMedium},
		{"3", runeKey('3'), core.ActionHard},
		{"unbound", runeKey('z'), core.ActionNone},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestPhaseKeysHelp(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		phase    invasion.Phase
		expected string
	}{
		{invasion.PhaseMenu, "play"},
		{invasion.PhaseSettings, "difficulty"},
		{invasion.PhaseActive, "fire"},
		{invasion.PhasePaused, "pause"},
		{invasion.PhaseHelp, "back"},
		{invasion.PhaseComplete, "back"},
	}

	for _, tc := range tests {
		found := false
		for _, b := range (phaseKeys{keys: keys, phase: tc.phase}).ShortHelp() {
			if b.Help().Desc == tc.expected {
				found = true
			}
		}
		if !found {
			t.Errorf("ShortHelp() for %v misses %q", tc.phase, tc.expected)
		}
	}
}

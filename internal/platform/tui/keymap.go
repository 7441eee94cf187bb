package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/invasion"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Start      key.Binding
	Settings   key.Binding
	Help       key.Binding
	Back       key.Binding
	Pause      key.Binding
	Reset      key.Binding
	Quit       key.Binding
	Easy       key.Binding
	Medium     key.Binding
	Hard       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "steer"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "play"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "abort"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1/2/3", "difficulty"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// phaseKeys is the help.KeyMap for one game phase.
type phaseKeys struct {
	keys  KeyMap
	phase invasion.Phase
}

// ShortHelp returns the bindings that do something in the current phase.
func (p phaseKeys) ShortHelp() []key.Binding {
	k := p.keys
	switch p.phase {
	case invasion.PhaseMenu:
		return []key.Binding{k.Start, k.Settings, k.Help, k.Quit}
	case invasion.PhaseSettings:
		return []key.Binding{k.Easy, k.Back, k.Quit}
	case invasion.PhaseActive:
		return []key.Binding{k.Left, k.Fire, k.Pause, k.Reset, k.Quit}
	case invasion.PhasePaused:
		return []key.Binding{k.Pause, k.Quit}
	default:
		return []key.Binding{k.Back, k.Quit}
	}
}

// FullHelp returns every binding grouped by purpose.
func (p phaseKeys) FullHelp() [][]key.Binding {
	k := p.keys
	return [][]key.Binding{
		{k.Left, k.Fire, k.Pause, k.Reset},
		{k.Start, k.Settings, k.Help, k.Back},
		{k.Easy, k.Screenshot, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings of the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action. Keys without a game
// meaning map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Settings):
		return core.ActionSettings
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Easy):
		return core.ActionEasy
	case key.Matches(msg, k.Medium):
		return core.ActionMedium
	case key.Matches(msg, k.Hard):
		return core.ActionHard
	}
	return core.ActionNone
}

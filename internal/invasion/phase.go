package invasion

// Phase is the single state the game is in.
type Phase int

const (
	PhaseMenu     Phase = iota // Title with Play/Settings/Help/Exit
	PhaseSettings              // Difficulty selection
	PhaseHelp                  // Story and key reference
	PhaseActive                // Gameplay running
	PhasePaused                // Gameplay frozen by the player
	PhaseComplete              // General defeated
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseSettings:
		return "settings"
	case PhaseHelp:
		return "help"
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// InGame reports whether a playthrough is underway, paused or not.
func (p Phase) InGame() bool {
	return p == PhaseActive || p == PhasePaused
}

// InMenu reports whether one of the menu sections is shown.
func (p Phase) InMenu() bool {
	return p == PhaseMenu || p == PhaseSettings || p == PhaseHelp
}

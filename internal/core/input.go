package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // Left arrow pressed - start moving left
	ActionLeftRelease         // Left arrow released - stop moving left
	ActionRight               // Right arrow pressed - start moving right
	ActionRightRelease        // Right arrow released - stop moving right
	ActionFire                // Space - fire a bullet
	ActionStart               // G - start a playthrough from the menu
	ActionSettings            // S - open the settings section
	ActionHelp                // H - open the help section
	ActionBack                // Escape - return to the menu
	ActionPause               // P - pause/unpause
	ActionReset               // R - abandon the playthrough
	ActionQuit                // Q, Ctrl+C - exit
	ActionEasy                // 1 - easy difficulty (settings only)
	ActionMedium              // 2 - medium difficulty (settings only)
	ActionHard                // 3 - hard difficulty (settings only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionLeftRelease:
		return "LeftRelease"
	case ActionRight:
		return "Right"
	case ActionRightRelease:
		return "RightRelease"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionSettings:
		return "Settings"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Click is a mouse button press at a screen cell.
type Click struct {
	X, Y int
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions and mouse clicks that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
	// Clicks holds mouse presses in arrival order.
	Clicks []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddClick records a mouse press at the given cell.
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Empty reports whether the frame carries no actions and no clicks.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}

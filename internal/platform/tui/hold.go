package tui

import (
	"time"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// Default hold timeouts. Terminals report key presses only, repeating them while a key
// is held: first after the auto-repeat delay (660ms on a stock X server), then at the
// repeat rate.
const (
	DefaultInitialHold = 750 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

type hold struct {
	last      time.Time
	repeating bool
}

// HoldTracker synthesizes key releases for terminals. A held key stays down while its
// auto-repeat keeps refreshing it and is released once the refreshes stop.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Action]*hold
}

// NewHoldTracker creates a tracker. initial covers the gap before auto-repeat starts,
// repeat the gap between two repeats.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Action]*hold),
	}
}

// Press records a press of a movement action at now. It returns true when the press
// starts a new hold and false when it is an auto-repeat of a held key.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	if st, ok := h.held[a]; ok {
		st.last = now
		st.repeating = true
		return false
	}
	h.held[a] = &hold{last: now}
	return true
}

// Expire releases every hold not refreshed in time and returns the matching
// release actions.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, st := range h.held {
		timeout := h.initial
		if st.repeating {
			timeout = h.repeat
		}
		if now.Sub(st.last) > timeout {
			delete(h.held, a)
			released = append(released, releaseOf(a))
		}
	}
	return released
}

// ReleaseAll ends every hold at once and returns the matching release actions.
func (h *HoldTracker) ReleaseAll() []core.Action {
	released := make([]core.Action, 0, len(h.held))
	for a := range h.held {
		released = append(released, releaseOf(a))
	}
	clear(h.held)
	return released
}

func releaseOf(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionLeftRelease
	case core.ActionRight:
		return core.ActionRightRelease
	default:
		return core.ActionNone
	}
}

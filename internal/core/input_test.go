package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionFire) {
		t.Error("Has() on empty frame should be false")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Has() should report actions that were Set")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) = true, expected false")
	}
}

func TestInputFrameClicks(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("NewInputFrame() should be empty")
	}

	f.AddClick(3, 4)
	f.AddClick(10, 2)
	if f.Empty() {
		t.Error("frame with clicks should not be empty")
	}
	if len(f.Clicks) != 2 || f.Clicks[0] != (Click{X: 3, Y: 4}) {
		t.Errorf("Clicks = %v, expected [{3 4} {10 2}]", f.Clicks)
	}

	f.Set(ActionFire)
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should remove actions and clicks")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionLeftRelease, "LeftRelease"},
		{ActionFire, "Fire"},
		{ActionHard, "Hard"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

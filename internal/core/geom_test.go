package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "bullet inside alien",
			a:        NewRect(4, 3, 3, 1),
			b:        NewRect(5, 3, 1, 1),
			expected: true,
		},
		{
			name:     "single cell overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
		{"negative point", -1, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectAnchors(t *testing.T) {
	r := NewRect(5, 10, 5, 2)

	if x, y := r.MidTop(); x != 7 || y != 10 {
		t.Errorf("MidTop() = (%d, %d), expected (7, 10)", x, y)
	}
	if x, y := r.MidBottom(); x != 7 || y != 12 {
		t.Errorf("MidBottom() = (%d, %d), expected (7, 12)", x, y)
	}

	moved := r.CenteredAt(40)
	if moved.CenterX() != 40 {
		t.Errorf("CenteredAt(40).CenterX() = %d, expected 40", moved.CenterX())
	}
	if moved.Y != r.Y || moved.W != r.W {
		t.Error("CenteredAt should only move horizontally")
	}
}

func TestRectAtSide(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		dir      int
		expected bool
	}{
		{"left edge moving left", NewRect(0, 5, 3, 1), -1, true},
		{"past left edge moving left", NewRect(-1, 5, 3, 1), -1, true},
		{"left edge moving right", NewRect(0, 5, 3, 1), 1, false},
		{"right edge moving right", NewRect(77, 5, 3, 1), 1, true},
		{"right edge moving left", NewRect(77, 5, 3, 1), -1, false},
		{"inside", NewRect(10, 5, 3, 1), 1, false},
		{"one cell from right", NewRect(76, 5, 3, 1), 1, false},
		{"no direction", NewRect(0, 5, 3, 1), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.AtSide(80, tc.dir); got != tc.expected {
				t.Errorf("AtSide(80, %d) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}

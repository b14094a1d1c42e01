package core

import "testing"

func TestRectContains(t *testing.T) {
	r := Square(10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"far corner", 9, 9, true},
		{"middle", 4, 6, true},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
		{"x at extent", 10, 0, false},
		{"y at extent", 0, 10, false},
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

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectClampPoint(t *testing.T) {
	r := Square(10)

	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside", 3, 4, 3, 4},
		{"below origin", -1, -1, 0, 0},
		{"past extent", 10, 12, 9, 9},
		{"one axis only", -1, 5, 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := r.ClampPoint(tc.x, tc.y)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("ClampPoint(%d, %d) = (%d, %d), expected (%d, %d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 9, 5},  // within range
		{-1, 0, 9, 0}, // below min
		{10, 0, 9, 9}, // above max
		{0, 0, 9, 0},  // at min
		{9, 0, 9, 9},  // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		in, expected int
	}{
		{-7, -1},
		{0, 0},
		{3, 1},
	}

	for _, tc := range tests {
		if got := Sign(tc.in); got != tc.expected {
			t.Errorf("Sign(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

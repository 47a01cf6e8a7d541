package core

import "testing"

func TestRectContainsRect(t *testing.T) {
	bounds := NewRect(0, 0, 64, 64)

	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"first tile", NewRect(0, 0, 8, 8), true},
		{"last tile", NewRect(56, 56, 8, 8), true},
		{"whole buffer", bounds, true},
		{"one pixel past right", NewRect(57, 0, 8, 8), false},
		{"one pixel past bottom", NewRect(0, 57, 8, 8), false},
		{"negative origin", NewRect(-8, 0, 8, 8), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := bounds.ContainsRect(tc.r); got != tc.expected {
				t.Errorf("ContainsRect(%+v) = %v, expected %v", tc.r, got, tc.expected)
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
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestColorRGB(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if c != 0x123456 {
		t.Errorf("RGB() = %#06x, expected 0x123456", uint32(c))
	}

	r, g, b := c.RGB()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("RGB() channels = (%d, %d, %d)", r, g, b)
	}

	if c.Hex() != "#123456" {
		t.Errorf("Hex() = %q, expected #123456", c.Hex())
	}
	if Black.Hex() != "#000000" {
		t.Errorf("Black.Hex() = %q", Black.Hex())
	}
}

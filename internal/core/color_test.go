package core

import "testing"

func TestColorTransparent(t *testing.T) {
	if !RGBA(255, 0, 0, 0).Transparent() {
		t.Error("alpha 0 should be transparent")
	}
	if ColorRed.Transparent() {
		t.Error("opaque red should not be transparent")
	}
}

func TestColorANSI256(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected uint8
	}{
		{"pure red", ColorRed, 196},
		{"pure green", ColorGreen, 46},
		{"pure blue", ColorBlue, 21},
		{"black", ColorBlack, 16},
		{"white", ColorWhite, 231},
		{"mid gray", ColorGray, 244},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.color.ANSI256(); got != tc.expected {
				t.Errorf("ANSI256() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

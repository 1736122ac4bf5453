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
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10.5, 10.5),
			b:        NewRect(10.25, 10.25, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	if !r.Contains(10, 10) {
		t.Error("Contains(10, 10) should include the top-left corner")
	}
	if r.Contains(30, 30) {
		t.Error("Contains(30, 30) should exclude the bottom-right edge")
	}
	if !r.Contains(20, 25) {
		t.Error("Contains(20, 25) should be inside")
	}
	if r.Contains(5, 15) {
		t.Error("Contains(5, 15) should be outside")
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(400, 300, 50, 50)

	if r.X != 375 || r.Y != 275 {
		t.Errorf("RectAround top-left = (%v, %v), expected (375, 275)", r.X, r.Y)
	}
	if r.W != 50 || r.H != 50 {
		t.Errorf("RectAround size = (%v, %v), expected (50, 50)", r.W, r.H)
	}

	cx, cy := r.Center()
	if cx != 400 || cy != 300 {
		t.Errorf("Center() = (%v, %v), expected (400, 300)", cx, cy)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 30)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 40 {
		t.Errorf("Bottom() = %v, expected 40", r.Bottom())
	}
}

func TestVec2(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: 2}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != 6 {
		t.Errorf("Add() = %+v, expected {4 6}", sum)
	}

	diff := a.Sub(b)
	if diff.X != 2 || diff.Y != 2 {
		t.Errorf("Sub() = %+v, expected {2 2}", diff)
	}

	scaled := a.Scale(2)
	if scaled.X != 6 || scaled.Y != 8 {
		t.Errorf("Scale(2) = %+v, expected {6 8}", scaled)
	}

	if a.Length() != 5 {
		t.Errorf("Length() = %v, expected 5", a.Length())
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}

	if ClampInt(15, 0, 10) != 10 {
		t.Error("ClampInt should lower values above max")
	}
	if ClampInt(-5, 0, 10) != 0 {
		t.Error("ClampInt should raise values below min")
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 {
		t.Errorf("Min(3, 7) = %d, expected 3", Min(3, 7))
	}
	if Max(3, 7) != 7 {
		t.Errorf("Max(3, 7) = %d, expected 7", Max(3, 7))
	}
}

package chomp

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected Vec2
	}{
		{"unit x", Vec2{X: 1, Y: 0}, Vec2{X: 1, Y: 0}},
		{"half left", Vec2{X: -0.5, Y: 0}, Vec2{X: -1, Y: 0}},
		{"diagonal", Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}},
		{"zero stays zero", Vec2{}, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Normalize()
			if math.Abs(got.X-tc.expected.X) > 1e-12 || math.Abs(got.Y-tc.expected.Y) > 1e-12 {
				t.Errorf("Normalize() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectCorners(t *testing.T) {
	r := Rect{Center: Vec2{X: 10, Y: -20}, Size: Vec2{X: 4, Y: 6}}

	if min := r.Min(); min.X != 8 || min.Y != -23 {
		t.Errorf("Min() = %+v, expected (8, -23)", min)
	}
	if max := r.Max(); max.X != 12 || max.Y != -17 {
		t.Errorf("Max() = %+v, expected (12, -17)", max)
	}
}

func TestRectOverlaps(t *testing.T) {
	base := Rect{Center: Vec2{}, Size: Vec2{X: 20, Y: 20}}

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"same rect", base, true},
		{"partial overlap", Rect{Center: Vec2{X: 15, Y: 15}, Size: Vec2{X: 20, Y: 20}}, true},
		{"contained", Rect{Center: Vec2{X: 2, Y: 2}, Size: Vec2{X: 4, Y: 4}}, true},
		{"separated horizontally", Rect{Center: Vec2{X: 40, Y: 0}, Size: Vec2{X: 20, Y: 20}}, false},
		{"separated vertically", Rect{Center: Vec2{X: 0, Y: -40}, Size: Vec2{X: 20, Y: 20}}, false},
		{"touching edges do not overlap", Rect{Center: Vec2{X: 20, Y: 0}, Size: Vec2{X: 20, Y: 20}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Overlap must be symmetric in its arguments.
			if got := tc.other.Overlaps(base); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollideSides(t *testing.T) {
	// The probe is a 20x20 player-sized rectangle at the origin.
	a := Rect{Center: Vec2{}, Size: Vec2{X: 20, Y: 20}}

	tests := []struct {
		name     string
		b        Rect
		side     Side
		expected bool
	}{
		{
			name:     "hits left side of b",
			b:        Rect{Center: Vec2{X: 15, Y: 0}, Size: Vec2{X: 20, Y: 20}},
			side:     SideLeft,
			expected: true,
		},
		{
			name:     "hits right side of b",
			b:        Rect{Center: Vec2{X: -15, Y: 0}, Size: Vec2{X: 20, Y: 20}},
			side:     SideRight,
			expected: true,
		},
		{
			name:     "hits bottom side of b",
			b:        Rect{Center: Vec2{X: 0, Y: 15}, Size: Vec2{X: 20, Y: 20}},
			side:     SideBottom,
			expected: true,
		},
		{
			name:     "hits top side of b",
			b:        Rect{Center: Vec2{X: 0, Y: -15}, Size: Vec2{X: 20, Y: 20}},
			side:     SideTop,
			expected: true,
		},
		{
			name:     "deeper x overlap resolves to vertical side",
			b:        Rect{Center: Vec2{X: 5, Y: 15}, Size: Vec2{X: 20, Y: 20}},
			side:     SideBottom,
			expected: true,
		},
		{
			name:     "deeper y overlap resolves to horizontal side",
			b:        Rect{Center: Vec2{X: 15, Y: 5}, Size: Vec2{X: 20, Y: 20}},
			side:     SideLeft,
			expected: true,
		},
		{
			name:     "equal overlaps favor the vertical side",
			b:        Rect{Center: Vec2{X: 15, Y: 15}, Size: Vec2{X: 20, Y: 20}},
			side:     SideBottom,
			expected: true,
		},
		{
			name:     "fully containing b reports inside",
			b:        Rect{Center: Vec2{X: 0, Y: 0}, Size: Vec2{X: 100, Y: 100}},
			side:     SideInside,
			expected: true,
		},
		{
			name:     "no overlap",
			b:        Rect{Center: Vec2{X: 40, Y: 0}, Size: Vec2{X: 20, Y: 20}},
			side:     SideNone,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, hit := Collide(a, tc.b)
			if hit != tc.expected {
				t.Fatalf("Collide() hit = %v, expected %v", hit, tc.expected)
			}
			if side != tc.side {
				t.Errorf("Collide() side = %s, expected %s", side, tc.side)
			}
			// Overlap detection itself is symmetric even though the
			// reported side is relative to the second argument.
			if _, reverse := Collide(tc.b, a); reverse != tc.expected {
				t.Errorf("Collide() (reversed) hit = %v, expected %v", reverse, tc.expected)
			}
		})
	}
}

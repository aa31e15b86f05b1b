// Package chomp implements the chomp simulation core: a single player
// rectangle chasing food inside four static walls, advanced on a fixed
// timestep. The package is pure game logic; scheduling, input polling and
// rendering belong to the platform layer.
package chomp

import "math"

// Vec2 is a 2D vector in world coordinates (+y up).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector's length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in v's direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect is an axis-aligned rectangle given by its center and size,
// matching the transform representation the entities carry.
type Rect struct {
	Center Vec2
	Size   Vec2
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{X: r.Center.X - r.Size.X/2, Y: r.Center.Y - r.Size.Y/2}
}

// Max returns the top-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.Center.X + r.Size.X/2, Y: r.Center.Y + r.Size.Y/2}
}

// Overlaps reports whether two rectangles overlap. Touching edges do not
// count as overlap. The test is symmetric in its arguments.
func (r Rect) Overlaps(o Rect) bool {
	rMin, rMax := r.Min(), r.Max()
	oMin, oMax := o.Min(), o.Max()
	return rMin.X < oMax.X && rMax.X > oMin.X &&
		rMin.Y < oMax.Y && rMax.Y > oMin.Y
}

// Side identifies which side of the second rectangle was penetrated in a
// collision, or that the first rectangle is fully inside the second.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
	SideInside
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Collide tests a against b and, on overlap, reports which side of b was
// penetrated. The penetrated axis is the one with the smaller overlap
// depth; equal depths resolve to the vertical side. When a does not cross
// any single edge of b (fully contained or spanning), SideInside is
// reported.
func Collide(a, b Rect) (Side, bool) {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	if !(aMin.X < bMax.X && aMax.X > bMin.X && aMin.Y < bMax.Y && aMax.Y > bMin.Y) {
		return SideNone, false
	}

	// Depths are negative when a crosses an edge of b; the magnitude is
	// how far a has penetrated past that edge.
	xSide, xDepth := SideInside, math.Inf(-1)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xDepth = SideLeft, bMin.X-aMax.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xDepth = SideRight, aMin.X-bMax.X
	}

	ySide, yDepth := SideInside, math.Inf(-1)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = SideBottom, bMin.Y-aMax.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yDepth = SideTop, aMin.Y-bMax.Y
	}

	if math.Abs(yDepth) <= math.Abs(xDepth) {
		return ySide, true
	}
	return xSide, true
}

package chomp

import "fmt"

// WallSide enumerates the four arena walls.
type WallSide int

const (
	WallLeft WallSide = iota
	WallRight
	WallBottom
	WallTop
)

// String returns a human-readable name for the wall side.
func (s WallSide) String() string {
	switch s {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// wallPosition returns the center of the wall on the given side.
func wallPosition(p Params, side WallSide) Vec2 {
	switch side {
	case WallLeft:
		return Vec2{X: p.LeftWall, Y: 0}
	case WallRight:
		return Vec2{X: p.RightWall, Y: 0}
	case WallBottom:
		return Vec2{X: 0, Y: p.BottomWall}
	case WallTop:
		return Vec2{X: 0, Y: p.TopWall}
	}
	panic(fmt.Sprintf("chomp: invalid wall side %d", side))
}

// wallSize returns the extent of the wall on the given side. The thickness
// is added to the long axis so the four walls close at the corners with no
// gaps or double coverage.
func wallSize(p Params, side WallSide) Vec2 {
	// Constants are validated before world construction; a non-positive
	// arena here is a programming error.
	if p.ArenaWidth() <= 0 || p.ArenaHeight() <= 0 {
		panic(fmt.Sprintf("chomp: arena dimensions must be positive, got %.1fx%.1f",
			p.ArenaWidth(), p.ArenaHeight()))
	}

	switch side {
	case WallLeft, WallRight:
		return Vec2{X: p.WallThickness, Y: p.ArenaHeight() + p.WallThickness}
	case WallBottom, WallTop:
		return Vec2{X: p.ArenaWidth() + p.WallThickness, Y: p.WallThickness}
	}
	panic(fmt.Sprintf("chomp: invalid wall side %d", side))
}

// newWall builds a fully-populated wall entity for the given side.
func newWall(p Params, side WallSide) Entity {
	return Entity{
		Kind:     KindWall,
		Pos:      wallPosition(p, side),
		Size:     wallSize(p, side),
		Collider: true,
	}
}

package chomp

import (
	"fmt"

	"github.com/chomp-tui/chomp/internal/config"
)

// Params are the simulation constants: arena geometry, player and food
// parameters, and the fixed timestep. Defaults reproduce the classic
// 900x600 arena.
type Params struct {
	LeftWall      float64 // Center line of the left wall
	RightWall     float64
	BottomWall    float64
	TopWall       float64
	WallThickness float64

	PlayerSize  Vec2
	PlayerSpeed float64
	// InitialDirection is normalized and scaled by PlayerSpeed to seed the
	// player's velocity vector.
	InitialDirection Vec2
	// BoundsShrink divides the player extent when computing the movement
	// clamp against the walls.
	BoundsShrink float64

	FoodSize Vec2

	TickRate int
}

// DefaultParams returns the default simulation constants.
func DefaultParams() Params {
	return paramsFromConfig(config.DefaultChompConfig())
}

// paramsFromConfig maps a validated config onto simulation parameters.
func paramsFromConfig(cfg config.ChompConfig) Params {
	return Params{
		LeftWall:         cfg.Arena.Left,
		RightWall:        cfg.Arena.Right,
		BottomWall:       cfg.Arena.Bottom,
		TopWall:          cfg.Arena.Top,
		WallThickness:    cfg.Arena.WallThickness,
		PlayerSize:       Vec2{X: cfg.Player.Width, Y: cfg.Player.Height},
		PlayerSpeed:      cfg.Player.Speed,
		InitialDirection: Vec2{X: cfg.Player.InitialDirection.X, Y: cfg.Player.InitialDirection.Y},
		BoundsShrink:     cfg.Player.BoundsShrink,
		FoodSize:         Vec2{X: cfg.Food.Width, Y: cfg.Food.Height},
		TickRate:         cfg.Timing.TickRate,
	}
}

// Dt returns the fixed timestep in seconds.
func (p Params) Dt() float64 {
	return 1.0 / float64(p.TickRate)
}

// ArenaWidth returns the distance between the left and right wall centers.
func (p Params) ArenaWidth() float64 {
	return p.RightWall - p.LeftWall
}

// ArenaHeight returns the distance between the bottom and top wall centers.
func (p Params) ArenaHeight() float64 {
	return p.TopWall - p.BottomWall
}

// Bounds is a per-axis clamp range.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// PlayerBounds returns the clamp range for the player's center: wall center
// line plus thickness plus a shrunk player extent on each side.
func (p Params) PlayerBounds() Bounds {
	return Bounds{
		MinX: p.LeftWall + p.WallThickness + p.PlayerSize.X/p.BoundsShrink,
		MaxX: p.RightWall - p.WallThickness - p.PlayerSize.X/p.BoundsShrink,
		MinY: p.BottomWall + p.WallThickness + p.PlayerSize.Y/p.BoundsShrink,
		MaxY: p.TopWall - p.WallThickness - p.PlayerSize.Y/p.BoundsShrink,
	}
}

// Validate rejects constants that cannot form an arena. A failure here is a
// fatal startup error; the simulation never starts half-configured.
func (p Params) Validate() error {
	if p.ArenaWidth() <= 0 {
		return fmt.Errorf("chomp: arena width must be positive, got %.1f", p.ArenaWidth())
	}
	if p.ArenaHeight() <= 0 {
		return fmt.Errorf("chomp: arena height must be positive, got %.1f", p.ArenaHeight())
	}
	if p.WallThickness <= 0 {
		return fmt.Errorf("chomp: wall thickness must be positive, got %.1f", p.WallThickness)
	}
	if p.PlayerSpeed <= 0 {
		return fmt.Errorf("chomp: player speed must be positive, got %.1f", p.PlayerSpeed)
	}
	if p.BoundsShrink <= 0 {
		return fmt.Errorf("chomp: bounds shrink must be positive, got %.2f", p.BoundsShrink)
	}
	if p.TickRate <= 0 {
		return fmt.Errorf("chomp: tick rate must be positive, got %d", p.TickRate)
	}
	return nil
}

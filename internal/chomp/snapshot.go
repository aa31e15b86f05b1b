package chomp

// Snapshot captures the observable simulation state at a tick boundary,
// used for determinism verification in tests.
type Snapshot struct {
	Tick      uint64
	Score     int
	PlayerX   float64
	PlayerY   float64
	VelX      float64
	VelY      float64
	FoodX     float64
	FoodY     float64
	FoodCount int
	Paused    bool
	Faulted   bool
}

// Snapshot returns the current snapshot. A faulted or uninitialized game
// reports zero positions.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Paused:  g.paused,
		Faulted: g.err != nil,
	}
	if g.world == nil {
		return s
	}

	s.Tick = g.world.Tick()
	s.Score = g.world.FoodEaten()
	s.FoodCount = g.world.FoodCount()

	if p, err := g.world.Player(); err == nil {
		s.PlayerX, s.PlayerY = p.Pos.X, p.Pos.Y
		s.VelX, s.VelY = p.Vel.X, p.Vel.Y
	}
	if f := g.world.Food(); f != nil {
		s.FoodX, s.FoodY = f.Pos.X, f.Pos.Y
	}
	return s
}

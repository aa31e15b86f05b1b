package chomp

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	w, err := NewWorld(DefaultParams(), seed)
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	return w
}

func TestNewWorldInitialState(t *testing.T) {
	w := newTestWorld(t, 1)

	if len(w.Entities()) != 6 {
		t.Fatalf("expected 6 entities (player, food, 4 walls), got %d", len(w.Entities()))
	}

	p, err := w.Player()
	if err != nil {
		t.Fatalf("Player() failed: %v", err)
	}
	if p.Pos != (Vec2{}) {
		t.Errorf("player starts at %+v, expected origin", p.Pos)
	}
	// normalize((-0.5, 0)) * 700 = (-700, 0)
	if p.Vel.X != -700 || p.Vel.Y != 0 {
		t.Errorf("player velocity = %+v, expected (-700, 0)", p.Vel)
	}
	if p.Collider {
		t.Error("player must not be part of the collidable set")
	}

	f := w.Food()
	if f == nil {
		t.Fatal("expected one food entity at startup")
	}
	params := w.Params()
	if f.Pos.X < params.LeftWall || f.Pos.X >= params.RightWall ||
		f.Pos.Y < params.BottomWall || f.Pos.Y >= params.TopWall {
		t.Errorf("initial food at %+v outside [%.0f, %.0f) x [%.0f, %.0f)",
			f.Pos, params.LeftWall, params.RightWall, params.BottomWall, params.TopWall)
	}
	if !f.Collider {
		t.Error("food must be collidable")
	}
	if w.FoodCount() != 1 {
		t.Errorf("FoodCount() = %d, expected 1", w.FoodCount())
	}
}

func TestNewWorldRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"inverted horizontal walls", func(p *Params) { p.LeftWall, p.RightWall = p.RightWall, p.LeftWall }},
		{"inverted vertical walls", func(p *Params) { p.BottomWall, p.TopWall = p.TopWall, p.BottomWall }},
		{"zero-width arena", func(p *Params) { p.RightWall = p.LeftWall }},
		{"zero wall thickness", func(p *Params) { p.WallThickness = 0 }},
		{"zero player speed", func(p *Params) { p.PlayerSpeed = 0 }},
		{"zero bounds shrink", func(p *Params) { p.BoundsShrink = 0 }},
		{"zero tick rate", func(p *Params) { p.TickRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := DefaultParams()
			tc.mutate(&params)
			if _, err := NewWorld(params, 1); err == nil {
				t.Error("NewWorld() succeeded, expected a configuration error")
			}
		})
	}
}

func TestWallGeometryTilesArenaBorder(t *testing.T) {
	params := DefaultParams()

	tests := []struct {
		side                   WallSide
		minX, minY, maxX, maxY float64
	}{
		{WallLeft, -455, -305, -445, 305},
		{WallRight, 445, -305, 455, 305},
		{WallBottom, -455, -305, 455, -295},
		{WallTop, -455, 295, 455, 305},
	}

	for _, tc := range tests {
		t.Run(tc.side.String(), func(t *testing.T) {
			wall := newWall(params, tc.side)
			min, max := wall.Rect().Min(), wall.Rect().Max()
			if min.X != tc.minX || min.Y != tc.minY || max.X != tc.maxX || max.Y != tc.maxY {
				t.Errorf("%s wall spans (%.1f,%.1f)-(%.1f,%.1f), expected (%.1f,%.1f)-(%.1f,%.1f)",
					tc.side, min.X, min.Y, max.X, max.Y, tc.minX, tc.minY, tc.maxX, tc.maxY)
			}
		})
	}
}

func TestWallFactoryPanicsOnBadConstants(t *testing.T) {
	params := DefaultParams()
	params.RightWall = params.LeftWall - 1

	defer func() {
		if recover() == nil {
			t.Error("wallSize() did not panic on a non-positive arena")
		}
	}()
	wallSize(params, WallLeft)
}

func TestIdlePlayerNeverMoves(t *testing.T) {
	w := newTestWorld(t, 7)

	for i := 0; i < 120; i++ {
		if err := w.Step(Input{}); err != nil {
			t.Fatalf("Step() failed at tick %d: %v", i, err)
		}
	}

	p, err := w.Player()
	if err != nil {
		t.Fatalf("Player() failed: %v", err)
	}
	// The stored velocity is only the sign-flip register: with no keys
	// held the player stays put, it does not drift.
	if p.Pos != (Vec2{}) {
		t.Errorf("idle player moved to %+v, expected origin", p.Pos)
	}
	if p.Vel.X != -700 {
		t.Errorf("idle player velocity changed to %+v", p.Vel)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	w := newTestWorld(t, 42)
	b := w.Params().PlayerBounds()
	inputRng := rand.New(rand.NewSource(99))

	for i := 0; i < 1000; i++ {
		in := Input{
			Up:    inputRng.Intn(2) == 0,
			Down:  inputRng.Intn(2) == 0,
			Left:  inputRng.Intn(2) == 0,
			Right: inputRng.Intn(2) == 0,
		}
		if err := w.Step(in); err != nil {
			t.Fatalf("Step() failed at tick %d: %v", i, err)
		}

		p, err := w.Player()
		if err != nil {
			t.Fatalf("Player() failed: %v", err)
		}
		if p.Pos.X < b.MinX || p.Pos.X > b.MaxX || p.Pos.Y < b.MinY || p.Pos.Y > b.MaxY {
			t.Fatalf("tick %d: player at %+v escaped bounds [%.4f,%.4f]x[%.4f,%.4f]",
				i, p.Pos, b.MinX, b.MaxX, b.MinY, b.MaxY)
		}
	}
}

func TestPlayerBoundValues(t *testing.T) {
	// With LEFT_WALL=-450, WALL_THICKNESS=10 and a 20-wide player the
	// clamp lands at -450+10+20/2.75.
	b := DefaultParams().PlayerBounds()

	want := -450.0 + 10.0 + 20.0/2.75
	if math.Abs(b.MinX-want) > 1e-9 {
		t.Errorf("MinX = %.6f, expected %.6f", b.MinX, want)
	}
	if math.Abs(b.MaxX+want) > 1e-9 {
		t.Errorf("MaxX = %.6f, expected %.6f", b.MaxX, -want)
	}

	wantY := -300.0 + 10.0 + 20.0/2.75
	if math.Abs(b.MinY-wantY) > 1e-9 {
		t.Errorf("MinY = %.6f, expected %.6f", b.MinY, wantY)
	}
}

func TestHoldingLeftClampsAtBound(t *testing.T) {
	w := newTestWorld(t, 3)
	b := w.Params().PlayerBounds()

	// 700 units/s covers the half-arena in well under 60 ticks.
	for i := 0; i < 60; i++ {
		if err := w.Step(Input{Left: true}); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
	}

	p, _ := w.Player()
	if p.Pos.X != b.MinX {
		t.Errorf("player x = %.6f, expected clamp at %.6f", p.Pos.X, b.MinX)
	}
}

func TestVelocitySignFlipQuirk(t *testing.T) {
	w := newTestWorld(t, 3)
	p, _ := w.Player()

	// Holding Left negates vx on every tick it is held.
	if err := w.Step(Input{Left: true}); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if p.Vel.X != 700 {
		t.Errorf("after one Left tick vx = %.1f, expected 700", p.Vel.X)
	}
	if err := w.Step(Input{Left: true}); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if p.Vel.X != -700 {
		t.Errorf("after two Left ticks vx = %.1f, expected -700", p.Vel.X)
	}

	// Right leaves the sign untouched.
	if err := w.Step(Input{Right: true}); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if p.Vel.X != -700 {
		t.Errorf("Right must not flip vx, got %.1f", p.Vel.X)
	}
}

func TestFoodConsumptionRespawns(t *testing.T) {
	w := newTestWorld(t, 11)
	p, _ := w.Player()

	old := w.Food()
	old.Pos = p.Pos // force an overlap this tick

	if err := w.Step(Input{}); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if got := len(w.DrainEvents()); got < 1 {
		t.Errorf("expected at least one collision event, got %d", got)
	}
	if w.FoodEaten() != 1 {
		t.Errorf("FoodEaten() = %d, expected 1", w.FoodEaten())
	}

	// Consuming and respawning nets out to exactly one food, and the
	// replacement is a new entity.
	if w.FoodCount() != 1 {
		t.Fatalf("FoodCount() = %d, expected 1 after respawn", w.FoodCount())
	}
	replacement := w.Food()
	if replacement.ID == old.ID {
		t.Error("respawned food reused the consumed entity's identity")
	}
	if replacement.Size != old.Size {
		t.Errorf("respawned food size %+v differs from %+v", replacement.Size, old.Size)
	}
}

func TestFoodRespawnPositionRange(t *testing.T) {
	w := newTestWorld(t, 23)
	params := w.Params()

	for i := 0; i < 200; i++ {
		p, _ := w.Player()
		w.Food().Pos = p.Pos
		if err := w.Step(Input{}); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}

		f := w.Food()
		if f.Pos.X < params.LeftWall || f.Pos.X >= params.RightWall {
			t.Fatalf("respawn %d: food x = %.2f outside [%.0f, %.0f)", i, f.Pos.X, params.LeftWall, params.RightWall)
		}
		if f.Pos.Y < params.BottomWall || f.Pos.Y >= params.TopWall {
			t.Fatalf("respawn %d: food y = %.2f outside [%.0f, %.0f)", i, f.Pos.Y, params.BottomWall, params.TopWall)
		}
	}

	if w.FoodEaten() != 200 {
		t.Errorf("FoodEaten() = %d, expected 200", w.FoodEaten())
	}
}

func TestWallOverlapEmitsEventWithoutCorrection(t *testing.T) {
	w := newTestWorld(t, 5)
	p, _ := w.Player()

	// Inside the clamp the player can never reach a wall, so place it
	// there directly and run the detector alone.
	p.Pos = Vec2{X: -444, Y: 0}
	if err := w.checkCollisions(); err != nil {
		t.Fatalf("checkCollisions() failed: %v", err)
	}

	if got := len(w.DrainEvents()); got != 1 {
		t.Errorf("expected 1 collision event against the left wall, got %d", got)
	}
	// No positional response: keeping the player inside is the clamp's job.
	if p.Pos.X != -444 {
		t.Errorf("wall collision moved the player to %.1f", p.Pos.X)
	}
}

func TestStepFailsWithoutExactlyOnePlayer(t *testing.T) {
	t.Run("no player", func(t *testing.T) {
		w := newTestWorld(t, 8)
		p, _ := w.Player()
		w.despawn(p.ID)

		if err := w.Step(Input{}); !errors.Is(err, ErrNoPlayer) {
			t.Errorf("Step() = %v, expected ErrNoPlayer", err)
		}
	})

	t.Run("two players", func(t *testing.T) {
		w := newTestWorld(t, 8)
		w.spawn(Entity{Kind: KindPlayer, Size: w.Params().PlayerSize})

		if err := w.Step(Input{}); !errors.Is(err, ErrMultiplePlayers) {
			t.Errorf("Step() = %v, expected ErrMultiplePlayers", err)
		}
	})
}

func TestIntegratorMovesVelocityCarriers(t *testing.T) {
	w := newTestWorld(t, 9)

	drifter := w.spawn(Entity{
		Kind:   KindFood,
		Pos:    Vec2{X: 100, Y: 100},
		Size:   Vec2{X: 20, Y: 20},
		Vel:    Vec2{X: 60, Y: -30},
		HasVel: true,
	})

	if err := w.Step(Input{}); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	// pos += vel * dt with dt = 1/60.
	if math.Abs(drifter.Pos.X-101) > 1e-9 || math.Abs(drifter.Pos.Y-99.5) > 1e-9 {
		t.Errorf("drifter at %+v, expected (101, 99.5)", drifter.Pos)
	}
}

func TestWorldDeterminism(t *testing.T) {
	script := func(i int) Input {
		return Input{
			Left:  i%3 == 0,
			Right: i%5 == 0,
			Up:    i%7 == 0,
			Down:  i%2 == 0,
		}
	}

	run := func() (*World, error) {
		w, err := NewWorld(DefaultParams(), 12345)
		if err != nil {
			return nil, err
		}
		for i := 0; i < 500; i++ {
			if err := w.Step(script(i)); err != nil {
				return nil, err
			}
		}
		return w, nil
	}

	w1, err := run()
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	w2, err := run()
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	p1, _ := w1.Player()
	p2, _ := w2.Player()
	if p1.Pos != p2.Pos || p1.Vel != p2.Vel {
		t.Errorf("player diverged: %+v/%+v vs %+v/%+v", p1.Pos, p1.Vel, p2.Pos, p2.Vel)
	}
	if w1.Food().Pos != w2.Food().Pos {
		t.Errorf("food diverged: %+v vs %+v", w1.Food().Pos, w2.Food().Pos)
	}
	if w1.FoodEaten() != w2.FoodEaten() {
		t.Errorf("score diverged: %d vs %d", w1.FoodEaten(), w2.FoodEaten())
	}
}

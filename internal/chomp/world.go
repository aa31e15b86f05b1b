package chomp

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/chomp-tui/chomp/internal/core"
)

// Input is the keyboard state consumed by one tick: whether each
// directional key is held. Opposing keys may be held simultaneously.
type Input struct {
	Up, Down, Left, Right bool
}

// CollisionEvent is a zero-payload notification that the player overlapped
// a collidable this tick. Nothing in the platform consumes these yet; the
// queue is the seam for scoring, audio and similar reactions.
type CollisionEvent struct{}

// Invariant violations around the single live player. A tick that hits one
// of these is aborted; there is no recovery beyond terminating the session.
var (
	ErrNoPlayer        = errors.New("chomp: no player entity")
	ErrMultiplePlayers = errors.New("chomp: more than one player entity")
)

// World owns all simulation state. It is advanced synchronously by Step;
// exactly one logical thread owns it during a tick, so no locking exists.
type World struct {
	params Params
	rng    *rand.Rand
	tick   uint64
	nextID ID

	entities []*Entity
	events   []CollisionEvent

	foodEaten int
}

// NewWorld validates the parameters and builds the initial world: one
// player at the origin, one food pickup at a random arena position, four
// walls.
func NewWorld(params Params, seed int64) (*World, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}

	w.spawn(Entity{
		Kind:   KindPlayer,
		Pos:    Vec2{},
		Size:   params.PlayerSize,
		Vel:    params.InitialDirection.Normalize().Scale(params.PlayerSpeed),
		HasVel: true,
	})
	w.spawn(Entity{
		Kind:     KindFood,
		Pos:      w.randomFoodPos(),
		Size:     params.FoodSize,
		Collider: true,
	})
	for _, side := range []WallSide{WallLeft, WallRight, WallBottom, WallTop} {
		w.spawn(newWall(params, side))
	}

	return w, nil
}

// Params returns the world's simulation constants.
func (w *World) Params() Params {
	return w.params
}

// Tick returns the number of completed simulation steps.
func (w *World) Tick() uint64 {
	return w.tick
}

// FoodEaten returns how many food pickups were consumed this session.
func (w *World) FoodEaten() int {
	return w.foodEaten
}

// Entities returns the live entities. The slice is shared; callers must
// not retain it across a Step.
func (w *World) Entities() []*Entity {
	return w.entities
}

// spawn adds an entity and assigns it a fresh ID.
func (w *World) spawn(e Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	ent := &e
	w.entities = append(w.entities, ent)
	return ent
}

// despawn removes the entity with the given ID, if present.
func (w *World) despawn(id ID) {
	for i, e := range w.entities {
		if e.ID == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return
		}
	}
}

// Player returns the single live player entity. Zero or multiple players
// is an invariant violation and fails loudly rather than picking one.
func (w *World) Player() (*Entity, error) {
	var player *Entity
	for _, e := range w.entities {
		if e.Kind != KindPlayer {
			continue
		}
		if player != nil {
			return nil, ErrMultiplePlayers
		}
		player = e
	}
	if player == nil {
		return nil, ErrNoPlayer
	}
	return player, nil
}

// FoodCount returns the number of live food entities.
func (w *World) FoodCount() int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == KindFood {
			n++
		}
	}
	return n
}

// Food returns the live food entity, or nil if none exists. The world is
// transiently food-free only inside a consuming tick.
func (w *World) Food() *Entity {
	for _, e := range w.entities {
		if e.Kind == KindFood {
			return e
		}
	}
	return nil
}

// Step advances the simulation by one fixed tick. The system order is
// fixed and load-bearing: input-driven movement, then velocity
// integration, then collision detection and reaction.
func (w *World) Step(in Input) error {
	if err := w.movePlayer(in); err != nil {
		return fmt.Errorf("tick %d: %w", w.tick, err)
	}
	w.applyVelocity()
	if err := w.checkCollisions(); err != nil {
		return fmt.Errorf("tick %d: %w", w.tick, err)
	}
	w.tick++
	return nil
}

// movePlayer maps held directional keys to movement and clamps the result
// into the inner arena.
//
// The velocity sign manipulation reproduces the legacy behavior exactly:
// holding Left negates vx every tick it is held, holding Down negates vy,
// while Right and Up leave the sign untouched. The stored velocity acts
// only as this sign register; actual movement comes from the direction
// deltas. Do not "fix" this - it is observable behavior.
func (w *World) movePlayer(in Input) error {
	p, err := w.Player()
	if err != nil {
		return err
	}

	var dirX, dirY float64
	if in.Left {
		dirX--
		p.Vel.X = -p.Vel.X
	}
	if in.Right {
		dirX++
	}
	if in.Up {
		dirY++
	}
	if in.Down {
		dirY--
		p.Vel.Y = -p.Vel.Y
	}

	dt := w.params.Dt()
	newX := p.Pos.X + dirX*w.params.PlayerSpeed*dt
	newY := p.Pos.Y + dirY*w.params.PlayerSpeed*dt

	b := w.params.PlayerBounds()
	p.Pos.X = core.ClampF(newX, b.MinX, b.MaxX)
	p.Pos.Y = core.ClampF(newY, b.MinY, b.MaxY)
	return nil
}

// applyVelocity integrates pos += vel * dt for every entity carrying a
// kinematic velocity. The player is excluded: its position is owned by the
// bounds-clamped input mapper and its velocity vector is only the sign
// register, so an idle player never drifts.
func (w *World) applyVelocity() {
	dt := w.params.Dt()
	for _, e := range w.entities {
		if !e.HasVel || e.Kind == KindPlayer {
			continue
		}
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	}
}

// checkCollisions tests the player against every collidable. Each overlap
// appends one collision event; overlapping food is consumed and replaced
// by a fresh pickup at a uniformly random arena position. Wall overlaps
// produce events only - keeping the player inside is the clamp's job, and
// that redundancy is part of the observable behavior.
func (w *World) checkCollisions() error {
	p, err := w.Player()
	if err != nil {
		return err
	}
	playerRect := p.Rect()

	// Snapshot the collidable set first: food spawned during this tick's
	// reaction must not be tested until the next tick.
	colliders := make([]*Entity, 0, len(w.entities))
	for _, e := range w.entities {
		if e.Collider && e.Kind != KindPlayer {
			colliders = append(colliders, e)
		}
	}

	for _, e := range colliders {
		if _, hit := Collide(playerRect, e.Rect()); !hit {
			continue
		}
		w.events = append(w.events, CollisionEvent{})

		if e.Kind == KindFood {
			w.despawn(e.ID)
			w.spawn(Entity{
				Kind:     KindFood,
				Pos:      w.randomFoodPos(),
				Size:     w.params.FoodSize,
				Collider: true,
			})
			w.foodEaten++
		}
	}
	return nil
}

// randomFoodPos draws a position uniformly per axis from the half-open
// arena range [left, right) x [bottom, top). Both the initial spawn and
// every respawn use it.
func (w *World) randomFoodPos() Vec2 {
	return Vec2{
		X: w.params.LeftWall + w.rng.Float64()*w.params.ArenaWidth(),
		Y: w.params.BottomWall + w.rng.Float64()*w.params.ArenaHeight(),
	}
}

// DrainEvents returns the collision events accumulated since the last
// drain and clears the queue. Downstream consumption is an extension
// point; tests and future scoring/audio systems poll it after Step.
func (w *World) DrainEvents() []CollisionEvent {
	evs := w.events
	w.events = nil
	return evs
}

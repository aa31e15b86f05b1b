package chomp

// Kind tags an entity with its gameplay role. Collidables are a tagged
// variant over {Wall, Food}; the player is tested against them every tick.
type Kind int

const (
	KindPlayer Kind = iota
	KindWall
	KindFood
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindWall:
		return "wall"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// ID identifies a live entity within a world. IDs are never reused; a
// respawned food is a new entity.
type ID uint64

// Entity is a world object: a positioned rectangle with an optional
// kinematic velocity and a collider tag.
type Entity struct {
	ID   ID
	Kind Kind
	Pos  Vec2
	Size Vec2

	// Vel is the entity's velocity vector. For the player it doubles as
	// the legacy sign-flip register consumed by the input mapper and is
	// not integrated (see World.applyVelocity).
	Vel    Vec2
	HasVel bool

	// Collider marks the entity as collision-participating. The player is
	// the probe and is never part of the collidable set itself.
	Collider bool
}

// Rect returns the entity's bounding rectangle.
func (e *Entity) Rect() Rect {
	return Rect{Center: e.Pos, Size: e.Size}
}

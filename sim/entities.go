package sim

const (
	// PlayerRadius is the radius of the ball; its collision AABB is 2r x 2r.
	PlayerRadius = 20.0
	// CoinRadius is the radius of a coin; its collision AABB is 2r x 2r.
	CoinRadius = 10.0

	// ObstacleSpeed is the patrol speed magnitude of every obstacle.
	ObstacleSpeed = 2.0
)

// Player is the ball. Rect is the bounding box of the circle, so X/Y is the
// top-left of the box, not the circle center.
type Player struct {
	Rect
	VelX, VelY float64
	Grounded   bool
}

func NewPlayer(x, y float64) Player {
	return Player{
		Rect: Rect{X: x, Y: y, Width: PlayerRadius * 2, Height: PlayerRadius * 2},
	}
}

// ColliderKind selects the resolution policy for a static collider.
type ColliderKind uint8

const (
	// OneWaySupport stops downward motion only: the player lands on top and
	// bounces. Platforms and the floor use this.
	OneWaySupport ColliderKind = iota
	// TwoSidedBlock stops horizontal motion from either side and has no
	// vertical effect. Walls use this.
	TwoSidedBlock
)

// Collider is a static axis-aligned rectangle the player collides with.
type Collider struct {
	Rect
	Kind ColliderKind
}

// Platform is a one-way support the player can land on from above.
type Platform struct {
	Rect
}

func NewPlatform(width, height, x, y float64) Platform {
	return Platform{Rect{X: x, Y: y, Width: width, Height: height}}
}

func (p Platform) Collider() Collider { return Collider{Rect: p.Rect, Kind: OneWaySupport} }

// Wall blocks horizontal motion for the player and reverses obstacles.
type Wall struct {
	Rect
}

func NewWall(width, height, x, y float64) Wall {
	return Wall{Rect{X: x, Y: y, Width: width, Height: height}}
}

func (w Wall) Collider() Collider { return Collider{Rect: w.Rect, Kind: TwoSidedBlock} }

// Obstacle patrols horizontally between LeftLimit and RightLimit. Touching it
// kills the player.
type Obstacle struct {
	Rect
	VelX       float64
	LeftLimit  float64
	RightLimit float64
}

func NewObstacle(width, height, x, y, leftLimit, rightLimit float64) Obstacle {
	return Obstacle{
		Rect:       Rect{X: x, Y: y, Width: width, Height: height},
		VelX:       ObstacleSpeed,
		LeftLimit:  leftLimit,
		RightLimit: rightLimit,
	}
}

// Move advances the obstacle one step and reverses direction at a patrol
// limit. The limit check runs after the move, so the obstacle can overshoot
// the limit by up to one step's velocity before turning around.
func (o *Obstacle) Move() {
	o.X += o.VelX
	if o.X <= o.LeftLimit || o.Right() >= o.RightLimit {
		o.VelX = -o.VelX
	}
}

// BounceOffWall reverses the obstacle when it overlaps the wall. This is
// independent of the limit check in Move; if both trigger on the same step
// the two flips cancel out.
func (o *Obstacle) BounceOffWall(w Wall) {
	if o.Rect.Intersects(w.Rect) {
		o.VelX = -o.VelX
	}
}

// Coin is a collectible. X/Y is the top-left of its bounding box.
type Coin struct {
	X, Y   float64
	Radius float64
}

func NewCoin(radius, x, y float64) Coin {
	return Coin{X: x, Y: y, Radius: radius}
}

func (c Coin) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Radius * 2, Height: c.Radius * 2}
}

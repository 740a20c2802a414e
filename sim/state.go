package sim

const (
	gravity        = 0.5
	jumpStrength   = -12.0
	groundFriction = 0.9
	moveSpeed      = 5.0
	// bounceRetention is the fraction of vertical speed kept when landing.
	bounceRetention = 0.7
)

// Frame is one frame of input. Left/Right/Jump are held-key states, Reset is
// an edge-triggered press.
type Frame struct {
	Left  bool
	Right bool
	Jump  bool
	Reset bool
}

// State is the full mutable simulation state for one run of a layout.
type State struct {
	Player    Player
	Obstacles []Obstacle
	Coins     []Coin
	CoinCount int
	Completed bool

	layout    *Layout
	colliders []Collider
}

// NewState builds a fresh run of the given layout.
func NewState(layout *Layout) *State {
	s := &State{
		layout:    layout,
		colliders: layout.colliders(),
		Obstacles: append([]Obstacle(nil), layout.Obstacles...),
	}
	s.Reset()
	return s
}

// Layout returns the layout this state runs.
func (s *State) Layout() *Layout { return s.layout }

// Reset restores the player to the spawn point with zero velocity, clears the
// completion latch and the coin counter and rebuilds the coin set. Obstacles
// keep patrolling where they are; they are not part of the reset. Calling
// Reset twice in a row leaves the same state as calling it once.
func (s *State) Reset() {
	s.Player = NewPlayer(s.layout.Spawn.X, s.layout.Spawn.Y)
	s.Completed = false
	s.CoinCount = 0
	s.Coins = s.Coins[:0]
	for _, p := range s.layout.Coins {
		s.Coins = append(s.Coins, NewCoin(CoinRadius, p.X, p.Y))
	}
}

// CameraTarget is the world point the view should center on: a little ahead
// of the player, at fixed height.
func (s *State) CameraTarget() (x, y float64) {
	return s.Player.X + 200, 300
}

// Step advances the simulation by one frame. It reports whether a reset
// happened during the step, either from the reset input or from touching an
// obstacle. While Completed is set only the reset input does anything.
func (s *State) Step(in Frame) (didReset bool) {
	if in.Reset {
		s.Reset()
		didReset = true
	}
	if s.Completed {
		return didReset
	}

	p := &s.Player

	if in.Left {
		p.VelX = -moveSpeed
	} else if in.Right {
		p.VelX = moveSpeed
	} else {
		p.VelX *= groundFriction
	}

	if in.Jump && p.Grounded {
		p.VelY = jumpStrength
		p.Grounded = false
	}

	p.VelY += gravity

	p.X += p.VelX
	p.Y += p.VelY

	for _, c := range s.colliders {
		resolveCollider(p, c)
	}

	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		o.Move()
		for _, w := range s.layout.Walls {
			o.BounceOffWall(w)
		}
		// Lethal contact. The original keeps processing the rest of the
		// frame after the reset, so this loop does not break.
		if p.Rect.Intersects(o.Rect) {
			s.Reset()
			didReset = true
		}
	}

	kept := s.Coins[:0]
	for _, c := range s.Coins {
		if c.Bounds().Intersects(p.Rect) {
			s.CoinCount++
			continue
		}
		kept = append(kept, c)
	}
	s.Coins = kept

	if len(s.Coins) == 0 && p.Rect.Intersects(s.layout.Goal) {
		s.Completed = true
	}

	return didReset
}

// resolveCollider pushes the player out of a static collider according to its
// kind. OneWaySupport only acts on a falling player: it snaps the player's
// bottom to the collider's top and bounces with partial energy loss.
// TwoSidedBlock only acts horizontally: it snaps the player flush against the
// side being entered and zeroes horizontal speed.
func resolveCollider(p *Player, c Collider) {
	if !p.Rect.Intersects(c.Rect) {
		return
	}
	switch c.Kind {
	case OneWaySupport:
		if p.VelY > 0 {
			p.Y = c.Y - p.Height
			p.VelY = -p.VelY * bounceRetention
			p.Grounded = true
		}
	case TwoSidedBlock:
		if p.VelX > 0 && p.Right() > c.X && p.X < c.X {
			p.X = c.X - p.Width
			p.VelX = 0
		} else if p.VelX < 0 && p.X < c.Right() && p.Right() > c.Right() {
			p.X = c.Right()
			p.VelX = 0
		}
	}
}

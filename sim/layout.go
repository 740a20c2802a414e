package sim

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// Layout is the immutable description of a level: static geometry, obstacle
// starting placements, coin spots and the goal. A State copies the mutable
// parts out of it, so a Layout can back any number of runs.
type Layout struct {
	Spawn     Point
	Platforms []Platform
	Floor     Platform
	Walls     []Wall
	Obstacles []Obstacle
	Coins     []Point
	Goal      Rect
}

// colliders returns the static colliders in resolution order: platforms
// first, then the floor, then the walls. The order matters: later colliders
// can override earlier corrections within the same step.
func (l *Layout) colliders() []Collider {
	cs := make([]Collider, 0, len(l.Platforms)+1+len(l.Walls))
	for _, p := range l.Platforms {
		cs = append(cs, p.Collider())
	}
	cs = append(cs, l.Floor.Collider())
	for _, w := range l.Walls {
		cs = append(cs, w.Collider())
	}
	return cs
}

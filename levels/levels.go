// Package levels loads level layouts from YAML, either the embedded default
// or a file on disk.
package levels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bounce/sim"
)

type pointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type rectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type obstacleSpec struct {
	rectSpec `yaml:",inline"`
	Left     float64 `yaml:"left"`
	Right    float64 `yaml:"right"`
}

type layoutSpec struct {
	Spawn     pointSpec      `yaml:"spawn"`
	Floor     rectSpec       `yaml:"floor"`
	Goal      rectSpec       `yaml:"goal"`
	Platforms []rectSpec     `yaml:"platforms"`
	Walls     []rectSpec     `yaml:"walls"`
	Obstacles []obstacleSpec `yaml:"obstacles"`
	Coins     []pointSpec    `yaml:"coins"`
}

// Load reads and parses a level layout from a YAML file at path.
func Load(path string) (*sim.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	layout, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	return layout, nil
}

func parse(data []byte) (*sim.Layout, error) {
	var spec layoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal layout: %w", err)
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}

	layout := &sim.Layout{
		Spawn: sim.Point{X: spec.Spawn.X, Y: spec.Spawn.Y},
		Floor: sim.NewPlatform(spec.Floor.W, spec.Floor.H, spec.Floor.X, spec.Floor.Y),
		Goal:  sim.Rect{X: spec.Goal.X, Y: spec.Goal.Y, Width: spec.Goal.W, Height: spec.Goal.H},
	}
	for _, p := range spec.Platforms {
		layout.Platforms = append(layout.Platforms, sim.NewPlatform(p.W, p.H, p.X, p.Y))
	}
	for _, w := range spec.Walls {
		layout.Walls = append(layout.Walls, sim.NewWall(w.W, w.H, w.X, w.Y))
	}
	for _, o := range spec.Obstacles {
		layout.Obstacles = append(layout.Obstacles, sim.NewObstacle(o.W, o.H, o.X, o.Y, o.Left, o.Right))
	}
	for _, c := range spec.Coins {
		layout.Coins = append(layout.Coins, sim.Point{X: c.X, Y: c.Y})
	}
	return layout, nil
}

func (s *layoutSpec) validate() error {
	if s.Floor.W <= 0 || s.Floor.H <= 0 {
		return fmt.Errorf("floor must have positive size, got %vx%v", s.Floor.W, s.Floor.H)
	}
	if s.Goal.W <= 0 || s.Goal.H <= 0 {
		return fmt.Errorf("goal must have positive size, got %vx%v", s.Goal.W, s.Goal.H)
	}
	for i, p := range s.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("platform %d has non-positive size %vx%v", i, p.W, p.H)
		}
	}
	for i, w := range s.Walls {
		if w.W <= 0 || w.H <= 0 {
			return fmt.Errorf("wall %d has non-positive size %vx%v", i, w.W, w.H)
		}
	}
	for i, o := range s.Obstacles {
		if o.W <= 0 || o.H <= 0 {
			return fmt.Errorf("obstacle %d has non-positive size %vx%v", i, o.W, o.H)
		}
		if o.Left >= o.Right {
			return fmt.Errorf("obstacle %d has patrol limits out of order: left %v, right %v", i, o.Left, o.Right)
		}
	}
	return nil
}

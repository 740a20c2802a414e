package levels

import (
	"strings"
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	layout, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if got := len(layout.Platforms); got != 11 {
		t.Errorf("platforms = %d, want 11", got)
	}
	if got := len(layout.Walls); got != 4 {
		t.Errorf("walls = %d, want 4", got)
	}
	if got := len(layout.Obstacles); got != 5 {
		t.Errorf("obstacles = %d, want 5", got)
	}
	if got := len(layout.Coins); got != 3 {
		t.Errorf("coins = %d, want 3", got)
	}

	if layout.Spawn.X != 400 || layout.Spawn.Y != 300 {
		t.Errorf("spawn = (%v,%v), want (400,300)", layout.Spawn.X, layout.Spawn.Y)
	}
	if layout.Floor.Width != 9000 || layout.Floor.Y != 580 {
		t.Errorf("floor = %+v, want 9000 wide at y=580", layout.Floor.Rect)
	}
	if layout.Goal.X != 4700 || layout.Goal.Y != 250 {
		t.Errorf("goal at (%v,%v), want (4700,250)", layout.Goal.X, layout.Goal.Y)
	}

	for i, o := range layout.Obstacles {
		if o.LeftLimit >= o.RightLimit {
			t.Errorf("obstacle %d limits out of order: %v >= %v", i, o.LeftLimit, o.RightLimit)
		}
		if o.VelX == 0 {
			t.Errorf("obstacle %d has no initial velocity", i)
		}
	}
}

func TestParseRejectsBadLayouts(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "not_yaml",
			yaml:    "{platforms: [",
			wantErr: "unmarshal layout",
		},
		{
			name:    "missing_floor",
			yaml:    "spawn: {x: 0, y: 0}\ngoal: {x: 0, y: 0, w: 10, h: 10}\n",
			wantErr: "floor must have positive size",
		},
		{
			name: "zero_width_goal",
			yaml: "floor: {x: 0, y: 580, w: 9000, h: 20}\n" +
				"goal: {x: 0, y: 0, w: 0, h: 10}\n",
			wantErr: "goal must have positive size",
		},
		{
			name: "negative_platform",
			yaml: "floor: {x: 0, y: 580, w: 9000, h: 20}\n" +
				"goal: {x: 0, y: 0, w: 10, h: 10}\n" +
				"platforms:\n  - {x: 0, y: 0, w: -5, h: 20}\n",
			wantErr: "platform 0",
		},
		{
			name: "obstacle_limits_reversed",
			yaml: "floor: {x: 0, y: 580, w: 9000, h: 20}\n" +
				"goal: {x: 0, y: 0, w: 10, h: 10}\n" +
				"obstacles:\n  - {x: 800, y: 530, w: 50, h: 50, left: 1100, right: 700}\n",
			wantErr: "patrol limits out of order",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parse([]byte(c.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	src := `
spawn: {x: 10, y: 20}
floor: {x: 0, y: 100, w: 500, h: 20}
goal: {x: 400, y: 50, w: 50, h: 20}
walls:
  - {x: 200, y: 0, w: 20, h: 100}
obstacles:
  - {x: 100, y: 60, w: 40, h: 40, left: 80, right: 300}
coins:
  - {x: 50, y: 50}
  - {x: 150, y: 50}
`
	layout, err := parse([]byte(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if layout.Spawn.X != 10 || layout.Spawn.Y != 20 {
		t.Errorf("spawn = %+v", layout.Spawn)
	}
	if len(layout.Walls) != 1 || layout.Walls[0].Height != 100 {
		t.Errorf("walls = %+v", layout.Walls)
	}
	if len(layout.Obstacles) != 1 {
		t.Fatalf("obstacles = %+v", layout.Obstacles)
	}
	o := layout.Obstacles[0]
	if o.LeftLimit != 80 || o.RightLimit != 300 {
		t.Errorf("obstacle limits = (%v,%v), want (80,300)", o.LeftLimit, o.RightLimit)
	}
	if len(layout.Coins) != 2 {
		t.Errorf("coins = %+v", layout.Coins)
	}
}

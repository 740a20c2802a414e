package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"bounce/levels"
	"bounce/sim"
)

const (
	baseWidth  = 800
	baseHeight = 600
)

type Game struct {
	input  *Input
	state  *sim.State
	camera *Camera

	paused  bool
	pauseUI *ebitenui.UI

	watcher *levels.Watcher
}

func NewGame(levelPath string, watch bool) (*Game, error) {
	layout, err := loadLayout(levelPath)
	if err != nil {
		return nil, err
	}

	g := &Game{
		input:  NewInput(),
		state:  sim.NewState(layout),
		camera: NewCamera(baseWidth, baseHeight),
	}
	g.pauseUI = NewPauseUI(g)
	g.camera.SnapTo(g.state.CameraTarget())

	if watch && levelPath != "" {
		w, err := levels.Watch(levelPath)
		if err != nil {
			log.Printf("level watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func loadLayout(path string) (*sim.Layout, error) {
	if path == "" {
		return levels.Default()
	}
	return levels.Load(path)
}

func (g *Game) Update() error {
	g.consumeWatcher()

	g.input.Update()
	if g.input.PausePressed {
		g.paused = !g.paused
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.state.Step(g.input.Frame())
	g.camera.SnapTo(g.state.CameraTarget())

	return nil
}

// consumeWatcher swaps in the new layout when the watched level file changes.
// A broken edit keeps the current layout running.
func (g *Game) consumeWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Events:
		layout, err := levels.Load(path)
		if err != nil {
			log.Printf("level reload: %v", err)
			return
		}
		g.state = sim.NewState(layout)
		g.camera.SnapTo(g.state.CameraTarget())
	case err := <-g.watcher.Errors:
		log.Printf("level watch: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.camera.Render(screen, g.drawWorld)

	DrawHUD(screen, g.state.CoinCount)
	if g.state.Completed {
		DrawVictory(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawWorld(world *ebiten.Image) {
	world.Fill(colornames.Skyblue)
	camX, camY := g.camera.ViewTopLeft()

	fillRect := func(r sim.Rect, clr color.Color) {
		vector.FillRect(world, float32(r.X-camX), float32(r.Y-camY),
			float32(r.Width), float32(r.Height), clr, false)
	}

	layout := g.state.Layout()
	fillRect(layout.Floor.Rect, colornames.Green)
	for _, p := range layout.Platforms {
		fillRect(p.Rect, colornames.Green)
	}
	for _, w := range layout.Walls {
		fillRect(w.Rect, colornames.Blue)
	}
	fillRect(layout.Goal, colornames.Yellow)
	for _, o := range g.state.Obstacles {
		fillRect(o.Rect, colornames.Red)
	}

	for _, c := range g.state.Coins {
		vector.FillCircle(world, float32(c.X+c.Radius-camX), float32(c.Y+c.Radius-camY),
			float32(c.Radius), colornames.Gold, true)
	}

	p := g.state.Player
	vector.FillCircle(world, float32(p.X+sim.PlayerRadius-camX), float32(p.Y+sim.PlayerRadius-camY),
		float32(sim.PlayerRadius), colornames.Crimson, true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

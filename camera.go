package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Camera renders the world centered on a given world coordinate. There is no
// smoothing: the view snaps to the target every frame.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	off     *ebiten.Image
}

// NewCamera creates a camera with the given logical screen size.
func NewCamera(screenW, screenH int) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH}
	c.off = ebiten.NewImage(screenW, screenH)
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SnapTo immediately sets the camera center to the given world coordinates.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PosX - float64(c.screenW)/2.0, c.PosY - float64(c.screenH)/2.0
}

// Render draws the world by first invoking drawWorld with the offscreen image,
// then draws the offscreen image onto the provided screen. The caller should
// draw with camX/camY offsets based on ViewTopLeft().
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}
	screen.DrawImage(c.off, &ebiten.DrawImageOptions{})
}

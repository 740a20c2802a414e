package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"bounce/assets"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// DrawHUD draws the coin counter in the top-left corner of the screen.
func DrawHUD(screen *ebiten.Image, coins int) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, fmt.Sprintf("Coins: %d", coins), hudFace, op)
}

// DrawVictory centers the victory overlay on the screen.
func DrawVictory(screen *ebiten.Image) {
	b := assets.Victory.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(baseWidth-b.Dx())/2.0, float64(baseHeight-b.Dy())/2.0)
	screen.DrawImage(assets.Victory, op)
}

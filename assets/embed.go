package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

// Victory is the overlay shown when the level is completed.
var Victory *ebiten.Image

func init() {
	Victory = loadImage("victory.png")
}

func loadImage(path string) *ebiten.Image {
	b, err := assetsFS.ReadFile(path)
	if err != nil {
		log.Fatalf("embed: read %s: %v", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		log.Fatalf("embed: decode %s: %v", path, err)
	}
	return ebiten.NewImageFromImage(img)
}

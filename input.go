package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bounce/sim"
)

// Input holds current input state for movement, jumping and the meta keys.
type Input struct {
	// Left/Right are true while a move key is held.
	Left  bool
	Right bool
	// Jump is true while a jump key is held.
	Jump bool
	// ResetPressed is true on the frame the reset key is pressed.
	ResetPressed bool
	// PausePressed is true on the frame the pause key is pressed.
	PausePressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard.
func (i *Input) Update() {
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	i.Jump = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) ||
		ebiten.IsKeyPressed(ebiten.KeySpace)
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Frame converts the polled state into one frame of simulation input.
func (i *Input) Frame() sim.Frame {
	return sim.Frame{
		Left:  i.Left,
		Right: i.Right,
		Jump:  i.Jump,
		Reset: i.ResetPressed,
	}
}

package main

import (
	"testing"

	"bounce/sim"
)

func TestLoadLayoutDefault(t *testing.T) {
	layout, err := loadLayout("")
	if err != nil {
		t.Fatalf("loadLayout(\"\") failed: %v", err)
	}
	if len(layout.Platforms) == 0 || len(layout.Coins) == 0 {
		t.Fatalf("built-in layout looks empty: %+v", layout)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	if _, err := loadLayout("does-not-exist.yaml"); err == nil {
		t.Fatal("expected an error for a missing level file")
	}
}

func TestInputFrame(t *testing.T) {
	in := &Input{Left: true, Jump: true, ResetPressed: true, PausePressed: true}

	got := in.Frame()
	want := sim.Frame{Left: true, Jump: true, Reset: true}
	if got != want {
		t.Fatalf("Frame() = %+v, want %+v", got, want)
	}
}

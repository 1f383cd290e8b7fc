package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"maze3d/engine"
)

// -- input

// inputState polls the raw devices once per frame and normalizes them into
// the snapshot the renderer consumes.
type inputState struct {
	mouseX, mouseY int
	last           time.Time
}

func newInputState() *inputState {
	return &inputState{
		mouseX: math.MinInt32,
		mouseY: math.MinInt32,
		last:   time.Now(),
	}
}

func (s *inputState) snapshot(cfg *Config) engine.InputSnapshot {
	now := time.Now()
	elapsed := now.Sub(s.last).Seconds()
	s.last = now
	// clamp pauses and debugger stalls to a sane frame time
	if elapsed > 0.1 {
		elapsed = 0.1
	}

	in := engine.InputSnapshot{
		MoveForward: ebiten.IsKeyPressed(ebiten.KeyW),
		MoveBack:    ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:        ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
		ElapsedTime: elapsed,
	}

	// keyboard turning at a fixed angular speed
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.TurnDelta += cfg.TurnSpeed * elapsed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.TurnDelta -= cfg.TurnSpeed * elapsed
	}

	// mouse look from cursor deltas
	cx, cy := ebiten.CursorPosition()
	if s.mouseX == math.MinInt32 && s.mouseY == math.MinInt32 {
		// establish the first position so the initial delta is zero
		if cx != 0 || cy != 0 {
			s.mouseX, s.mouseY = cx, cy
		}
	} else {
		dx := cx - s.mouseX
		s.mouseX, s.mouseY = cx, cy
		if dx != 0 {
			in.TurnDelta -= float64(dx) * cfg.MouseSensitivity * elapsed
		}
	}

	return in
}

// quitRequested reports whether the player asked to exit this frame.
func quitRequested() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}

// fullscreenToggled reports an F keypress edge, as a convenience toggle.
func fullscreenToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF)
}

func minimapToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"maze3d/engine"
)

// -- game

// Game wires the renderer to the window: Update polls input into a pending
// snapshot, Draw runs one renderer frame and presents the finished pixel
// buffer. Rasterizing from Draw keeps the frame cost tied to the display
// rate even when the tick rate outpaces it.
type Game struct {
	cfg      *Config
	renderer *engine.Renderer
	input    *inputState

	// input accumulated over the ticks since the last drawn frame
	pending engine.InputSnapshot

	renderWidth  int
	renderHeight int

	showMinimap bool
	showDebug   bool
}

func NewGame(cfg *Config) *Game {
	tileMap := engine.NewTileMap(defaultWalls(), defaultFloor(), defaultCeiling())
	camera := engine.NewCamera(playerStartX, playerStartY, cfg.FovDegrees, cfg.MoveSpeed)
	textures := loadTextures(cfg)

	w, h := cfg.renderSize()
	renderer := engine.NewRenderer(w, h, tileMap, camera, textures)
	renderer.SetBackground(color.RGBA{20, 20, 24, 255})
	renderer.SetProjectile(texProjectile, cfg.ProjectileSpeed)
	for _, s := range defaultSpawns() {
		renderer.AddEntity(s.x, s.y, texSprite)
	}

	return &Game{
		cfg:          cfg,
		renderer:     renderer,
		input:        newInputState(),
		renderWidth:  w,
		renderHeight: h,
		showMinimap:  true,
		showDebug:    true,
	}
}

// coalesceInput folds one tick's snapshot into the accumulated one: held
// intents and the fire trigger are sticky, turn and elapsed time add up.
func coalesceInput(acc, in engine.InputSnapshot) engine.InputSnapshot {
	acc.MoveForward = acc.MoveForward || in.MoveForward
	acc.MoveBack = acc.MoveBack || in.MoveBack
	acc.StrafeLeft = acc.StrafeLeft || in.StrafeLeft
	acc.StrafeRight = acc.StrafeRight || in.StrafeRight
	acc.Fire = acc.Fire || in.Fire
	acc.TurnDelta += in.TurnDelta
	acc.ElapsedTime += in.ElapsedTime
	return acc
}

func (g *Game) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	if fullscreenToggled() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if minimapToggled() {
		g.showMinimap = !g.showMinimap
	}

	g.pending = coalesceInput(g.pending, g.input.snapshot(g.cfg))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.renderer.Frame(g.pending)
	g.pending = engine.InputSnapshot{}

	if g.showMinimap {
		g.drawMinimap(fb)
	}

	screen.WritePixels(fb.Pixels())

	if g.showDebug {
		cam := g.renderer.Camera()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %0.1f\npos: %0.2f, %0.2f\nentities: %d",
			ebiten.ActualFPS(), cam.Pos.X, cam.Pos.Y, len(g.renderer.Entities())))
	}
}

// Layout fixes the logical screen to the internal render resolution; ebiten
// scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderWidth, g.renderHeight
}

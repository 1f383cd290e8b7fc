// main.go
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := loadConfig()

	g := NewGame(cfg)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("maze3d")
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Vsync)

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

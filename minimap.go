package main

import (
	"image/color"

	"maze3d/engine"
)

// -- minimap

const minimapScale = 4

var (
	minimapWall   = color.RGBA{60, 60, 60, 255}
	minimapEmpty  = color.RGBA{140, 140, 140, 255}
	minimapBorder = color.RGBA{255, 255, 255, 255}
	minimapPlayer = color.RGBA{255, 40, 40, 255}
	minimapEntity = color.RGBA{40, 220, 60, 255}
)

// drawMinimap overlays a top-down view of the map in the top-right corner of
// the framebuffer, using the engine's own drawing primitives.
func (g *Game) drawMinimap(fb *engine.FrameBuffer) {
	m := g.renderer.TileMap()
	cam := g.renderer.Camera()

	mmW := m.Width() * minimapScale
	mmH := m.Height() * minimapScale
	originX := fb.Width() - mmW - 8
	originY := 8

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := minimapEmpty
			if m.Wall(x, y) > 0 {
				c = minimapWall
			}
			fb.DrawRect(c, originX+x*minimapScale, originY+y*minimapScale, minimapScale, minimapScale)
		}
	}

	// frame it
	fb.DrawHorizontalLine(minimapBorder, originX-1, originY-1, mmW+2)
	fb.DrawHorizontalLine(minimapBorder, originX-1, originY+mmH, mmW+2)
	fb.DrawVerticalLine(minimapBorder, originX-1, originY-1, mmH+2)
	fb.DrawVerticalLine(minimapBorder, originX+mmW, originY-1, mmH+2)

	// entities
	for _, e := range g.renderer.Entities() {
		ex := originX + int(e.Position.X*minimapScale)
		ey := originY + int(e.Position.Y*minimapScale)
		fb.DrawRect(minimapEntity, ex-1, ey-1, 2, 2)
	}

	// player dot and heading line
	px := originX + int(cam.Pos.X*minimapScale)
	py := originY + int(cam.Pos.Y*minimapScale)
	fb.DrawRect(minimapPlayer, px-1, py-1, 3, 3)
	fb.DrawLine(minimapPlayer, px, py,
		px+int(cam.Dir.X*2*minimapScale), py+int(cam.Dir.Y*2*minimapScale))
}

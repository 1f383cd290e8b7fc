package engine

import (
	"image"
	"math"
)

// -- wall pass

const (
	// hit side 1 walls render darker than side 0 walls so perpendicular
	// faces stay distinguishable under equal lighting
	sideShadeX = 1.0
	sideShadeY = 0.75
)

// drawWalls renders one textured vertical strip per column from the frame's
// ray results.
func (r *Renderer) drawWalls() {
	h := r.height
	for x := 0; x < r.width; x++ {
		ray := &r.rays[x]
		if ray.Dist <= 0 {
			continue
		}

		lineHeight := int(math.Ceil(float64(h) / ray.Dist))
		top := (h - lineHeight) / 2

		tex := r.texture(ray.Tile - 1)
		texX := int(ray.WallX * float64(tex.width))
		if texX >= tex.width {
			texX = tex.width - 1
		}

		// distant walls darken with their apparent height
		shade := clampFloat(float64(lineHeight)/float64(h), minShade, 1.0)
		if ray.Side == 1 {
			shade *= sideShadeY
		} else {
			shade *= sideShadeX
		}

		slice := image.Rect(texX, 0, texX+1, tex.height)
		r.fb.drawSubTextureShaded(tex, slice, x, top, 1, lineHeight, shade)
	}
}

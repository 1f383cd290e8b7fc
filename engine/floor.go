package engine

// -- floor and ceiling projection

// drawFloorCeiling rasters the textured floor and ceiling with a scanline
// walk: each screen row below the horizon maps to one distance, the two
// outermost rays are interpolated across the row, and the same sample
// position serves the mirrored ceiling row.
func (r *Renderer) drawFloorCeiling() {
	cam := r.camera
	w, h := r.width, r.height

	// outermost rays of the view frustum
	rayDirX0 := cam.Dir.X - cam.Plane.X
	rayDirY0 := cam.Dir.Y - cam.Plane.Y
	rayDirX1 := cam.Dir.X + cam.Plane.X
	rayDirY1 := cam.Dir.Y + cam.Plane.Y

	for y := h/2 + 1; y < h; y++ {
		rowDist := float64(h) / float64(2*y-h)

		stepX := rowDist * (rayDirX1 - rayDirX0) / float64(w)
		stepY := rowDist * (rayDirY1 - rayDirY0) / float64(w)

		floorX := cam.Pos.X + rowDist*rayDirX0
		floorY := cam.Pos.Y + rowDist*rayDirY0

		shade := shadeForDistance(rowDist)
		ceilY := h - y - 1

		for x := 0; x < w; x++ {
			cellX := int(floorX)
			cellY := int(floorY)

			if v := r.tileMap.Floor(cellX, cellY); v > 0 {
				tex := r.texture(v - 1)
				// power-of-two texel wrap via bitmask
				tx := int(floorX*float64(tex.width)) & (tex.width - 1)
				ty := int(floorY*float64(tex.height)) & (tex.height - 1)
				r.shadedTexel(tex, tx, ty, x, y, shade)
			}
			if v := r.tileMap.Ceiling(cellX, cellY); v > 0 {
				tex := r.texture(v - 1)
				tx := int(floorX*float64(tex.width)) & (tex.width - 1)
				ty := int(floorY*float64(tex.height)) & (tex.height - 1)
				r.shadedTexel(tex, tx, ty, x, ceilY, shade)
			}

			floorX += stepX
			floorY += stepY
		}
	}
}

func (r *Renderer) shadedTexel(tex *Texture, tx, ty, x, y int, shade float64) {
	tr, tg, tb, ta := tex.Texel(tx, ty)
	r.fb.set(x, y,
		byte(float64(tr)*shade),
		byte(float64(tg)*shade),
		byte(float64(tb)*shade),
		ta)
}

// shadeForDistance maps a distance to a linear darkening factor in [0,1].
func shadeForDistance(dist float64) float64 {
	return clampFloat(1.0-dist/shadeFalloffDistance, minShade, 1.0)
}

const (
	// shadeFalloffDistance is the distance in cells at which shading would
	// reach full darkness if not clamped.
	shadeFalloffDistance = 16.0

	// minShade keeps far geometry faintly visible.
	minShade = 0.15
)

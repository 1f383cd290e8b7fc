package engine

import (
	"image"
	"math"
	"sort"
)

// -- sprite pass

// drawSprites projects entities as camera-facing billboards, back to front,
// depth testing every candidate column against the ray distances so walls
// occlude correctly. Must run single threaded to preserve painter's order.
func (r *Renderer) drawSprites() {
	cam := r.camera
	w, h := r.width, r.height

	// back to front by squared distance from the camera
	order := make([]*Entity, len(r.entities))
	copy(order, r.entities)
	sort.Slice(order, func(i, j int) bool {
		di := squaredDist(order[i].Position.X-cam.Pos.X, order[i].Position.Y-cam.Pos.Y)
		dj := squaredDist(order[j].Position.X-cam.Pos.X, order[j].Position.Y-cam.Pos.Y)
		return di > dj
	})

	invDet := 1.0 / (cam.Plane.X*cam.Dir.Y - cam.Dir.X*cam.Plane.Y)

	for _, e := range order {
		spriteX := e.Position.X - cam.Pos.X
		spriteY := e.Position.Y - cam.Pos.Y

		// transform into camera space with the inverse of the (plane, dir)
		// basis matrix
		transformX := invDet * (cam.Dir.Y*spriteX - cam.Dir.X*spriteY)
		transformY := invDet * (-cam.Plane.Y*spriteX + cam.Plane.X*spriteY)
		if transformY <= 0 {
			// behind the camera
			continue
		}

		screenX := int(float64(w) / 2 * (1 + transformX/transformY))

		// square by construction: width and height both h/depth
		size := int(math.Abs(float64(h) / transformY))
		if size == 0 {
			continue
		}

		top := -size/2 + h/2
		startX := clampInt(-size/2+screenX, 0, w)
		endX := clampInt(size/2+screenX, 0, w)

		tex := r.texture(e.TextureID)
		shade := shadeForDistance(transformY)

		for stripe := startX; stripe < endX; stripe++ {
			if r.rays[stripe].Dist < transformY {
				continue
			}
			texX := (stripe - (-size/2 + screenX)) * tex.width / size
			if texX < 0 || texX >= tex.width {
				continue
			}
			slice := image.Rect(texX, 0, texX+1, tex.height)
			r.fb.drawSubTextureShaded(tex, slice, stripe, top, 1, size, shade)
		}
	}
}

func squaredDist(dx, dy float64) float64 {
	return dx*dx + dy*dy
}

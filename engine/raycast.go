package engine

import (
	"math"
	"sync"
)

// -- ray casting

// Ray is the result of casting one screen column into the wall grid. The
// per-column Dist values double as the frame's depth buffer for sprite
// occlusion.
type Ray struct {
	// DirX, DirY is the ray direction for this column.
	DirX, DirY float64

	// Dist is the perpendicular (fisheye-corrected) wall distance.
	Dist float64

	// Side is 0 when the hit crossed a vertical grid line (x step), 1 for a
	// horizontal grid line (y step).
	Side int

	// MapX, MapY is the hit cell.
	MapX, MapY int

	// WallX is the texture coordinate fraction in [0,1), already mirrored
	// where the far face of the wall is viewed.
	WallX float64

	// Tile is the wall cell value at the hit (the boundary sentinel when the
	// ray left the map).
	Tile int
}

// castColumn walks the wall grid with DDA for screen column x until a solid
// cell (or the out-of-bounds sentinel) terminates it.
func (r *Renderer) castColumn(x int) Ray {
	cam := r.camera
	cameraX := 2*float64(x)/float64(r.width) - 1
	rayDirX := cam.Dir.X + cam.Plane.X*cameraX
	rayDirY := cam.Dir.Y + cam.Plane.Y*cameraX

	posX, posY := cam.Pos.X, cam.Pos.Y
	mapX, mapY := int(posX), int(posY)

	// axis-aligned rays produce a huge but finite delta here, which simply
	// suppresses stepping on that axis; no zero guard needed
	deltaDistX := math.Abs(1 / rayDirX)
	deltaDistY := math.Abs(1 / rayDirY)

	var sideDistX, sideDistY float64
	var stepX, stepY int

	if rayDirX < 0 {
		stepX = -1
		sideDistX = (posX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - posX) * deltaDistX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (posY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - posY) * deltaDistY
	}

	side := 0
	tile := 0
	for tile == 0 {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}
		tile = r.tileMap.Wall(mapX, mapY)
	}

	// perpendicular distance is the pre-increment sideDist on the axis that
	// terminated the walk, which removes fisheye distortion
	var perpDist float64
	if side == 0 {
		perpDist = sideDistX - deltaDistX
	} else {
		perpDist = sideDistY - deltaDistY
	}

	var wallX float64
	if side == 0 {
		wallX = posY + perpDist*rayDirY
	} else {
		wallX = posX + perpDist*rayDirX
	}
	wallX -= math.Floor(wallX)
	if (side == 0 && rayDirX > 0) || (side == 1 && rayDirY < 0) {
		wallX = 1 - wallX
		// a hit exactly on a cell corner mirrors 0 to 1; fold it back so
		// WallX stays in [0,1)
		if wallX >= 1 {
			wallX = 0
		}
	}

	return Ray{
		DirX:  rayDirX,
		DirY:  rayDirY,
		Dist:  perpDist,
		Side:  side,
		MapX:  mapX,
		MapY:  mapY,
		WallX: wallX,
		Tile:  tile,
	}
}

// castColumns fans the per-column casts out across workers. Columns are
// independent: each goroutine reads only the per-frame camera and map state
// and writes its own slots of the index-stable ray slice. The wait is the
// barrier the floor, wall and sprite passes depend on.
func (r *Renderer) castColumns() {
	workers := r.workers
	if workers > r.width {
		workers = r.width
	}
	chunk := (r.width + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < r.width; start += chunk {
		end := start + chunk
		if end > r.width {
			end = r.width
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for x := start; x < end; x++ {
				r.rays[x] = r.castColumn(x)
			}
		}(start, end)
	}
	wg.Wait()
}

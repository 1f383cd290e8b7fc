package engine

import (
	"math"
	"testing"
)

func testRenderer(w, h int, m *TileMap, cam *Camera) *Renderer {
	return NewRenderer(w, h, m, cam, nil)
}

func TestCenterColumnHitsLeftBorder(t *testing.T) {
	// 10x10 map bordered by wall id 1, empty interior, camera at (1.5,1.5)
	// facing (-1,0): the center ray crosses the vertical grid line into
	// cell (0,1)
	m := borderedMap(10, 10)
	cam := NewCamera(1.5, 1.5, 66, 5)
	r := testRenderer(100, 100, m, cam)

	ray := r.castColumn(50)

	if ray.Side != 0 {
		t.Errorf("Side = %d, want 0 (x-step)", ray.Side)
	}
	if ray.MapX != 0 || ray.MapY != 1 {
		t.Errorf("hit cell = (%d,%d), want (0,1)", ray.MapX, ray.MapY)
	}
	if math.Abs(ray.Dist-0.5) > floatTol {
		t.Errorf("Dist = %v, want 0.5", ray.Dist)
	}
	if ray.Tile != 1 {
		t.Errorf("Tile = %d, want 1", ray.Tile)
	}
}

func TestAxisAlignedRayExactDistance(t *testing.T) {
	// camera at (1.5,1.5) facing (+1,0) toward the right border at x=9:
	// perpendicular distance is exactly 7.5
	m := borderedMap(10, 10)
	cam := NewCamera(1.5, 1.5, 66, 5)
	cam.Dir.X, cam.Dir.Y = 1, 0
	cam.Plane.X, cam.Plane.Y = 0, -0.66
	r := testRenderer(100, 100, m, cam)

	ray := r.castColumn(50)

	if ray.Dist != 7.5 {
		t.Errorf("Dist = %v, want exactly 7.5", ray.Dist)
	}
	if ray.Side != 0 || ray.MapX != 9 {
		t.Errorf("hit = side %d cell x %d, want side 0 cell x 9", ray.Side, ray.MapX)
	}
}

func TestEnclosedRoomAlwaysTerminates(t *testing.T) {
	m := borderedMap(10, 10)
	cam := NewCamera(5.1, 4.7, 66, 5)
	r := testRenderer(64, 64, m, cam)

	diagonal := math.Hypot(float64(m.Width()), float64(m.Height()))

	// sweep the camera through a full turn, casting every column each time
	for i := 0; i < 32; i++ {
		cam.Rotate(math.Pi / 16)
		r.castColumns()
		for x, ray := range r.rays {
			if ray.Tile == 0 {
				t.Fatalf("step %d column %d: ray did not hit a solid cell", i, x)
			}
			if math.IsNaN(ray.Dist) || math.IsInf(ray.Dist, 0) {
				t.Fatalf("step %d column %d: non-finite distance", i, x)
			}
			if ray.Dist < 0 || ray.Dist > diagonal {
				t.Fatalf("step %d column %d: distance %v outside [0,%v]", i, x, ray.Dist, diagonal)
			}
		}
	}
}

func TestWallXFractionRange(t *testing.T) {
	m := borderedMap(10, 10)
	cam := NewCamera(3.3, 6.8, 66, 5)
	r := testRenderer(128, 128, m, cam)

	for i := 0; i < 8; i++ {
		cam.Rotate(math.Pi / 4)
		r.castColumns()
		for x, ray := range r.rays {
			if ray.WallX < 0 || ray.WallX >= 1 {
				t.Fatalf("column %d: WallX = %v, want [0,1)", x, ray.WallX)
			}
		}
	}
}

func TestRayLeavingOpenMapHitsBoundarySentinel(t *testing.T) {
	// an all-empty map relies on the out-of-bounds sentinel to terminate
	zero := Grid{{0, 0}, {0, 0}}
	m := NewTileMap(zero, zero, zero)
	cam := NewCamera(1.0, 1.0, 66, 5)
	r := testRenderer(10, 10, m, cam)

	ray := r.castColumn(5)
	if ray.Tile == 0 {
		t.Fatal("ray escaped the map without terminating")
	}
	if ray.MapX >= 0 && ray.MapY >= 0 && ray.MapX < 2 && ray.MapY < 2 {
		t.Errorf("sentinel hit reported inside the map at (%d,%d)", ray.MapX, ray.MapY)
	}
}

func TestWallXCornerHitStaysInRange(t *testing.T) {
	// a ray grazing a cell corner has a wall intersection with fractional
	// part exactly 0; the mirrored side must not report WallX == 1
	m := borderedMap(10, 10)
	cam := NewCamera(1.5, 2.0, 66, 5)
	cam.Dir.X, cam.Dir.Y = 1, 0
	cam.Plane.X, cam.Plane.Y = 0, 0.66
	r := testRenderer(100, 100, m, cam)

	ray := r.castColumn(50)

	if ray.Side != 0 || ray.DirX <= 0 {
		t.Fatalf("Side = %d, DirX = %v, want a mirrored x-side hit", ray.Side, ray.DirX)
	}
	if ray.WallX != 0 {
		t.Errorf("WallX = %v, want 0 for a corner hit", ray.WallX)
	}
	if ray.WallX < 0 || ray.WallX >= 1 {
		t.Errorf("WallX = %v, want in [0,1)", ray.WallX)
	}
}

func TestParallelCastMatchesSequential(t *testing.T) {
	m := borderedMap(16, 12)
	cam := NewCamera(8.2, 6.6, 66, 5)
	cam.Rotate(0.37)
	r := testRenderer(96, 64, m, cam)

	r.castColumns()
	parallel := make([]Ray, len(r.rays))
	copy(parallel, r.rays)

	for x := range r.rays {
		if got := r.castColumn(x); got != parallel[x] {
			t.Fatalf("column %d: parallel result %+v != sequential %+v", x, parallel[x], got)
		}
	}
}

package engine

import "testing"

// borderedMap builds a w*h map fully enclosed by wall value 1 with an empty
// interior and untextured floor/ceiling.
func borderedMap(w, h int) *TileMap {
	walls := make(Grid, h)
	floor := make(Grid, h)
	ceiling := make(Grid, h)
	for y := 0; y < h; y++ {
		walls[y] = make([]int, w)
		floor[y] = make([]int, w)
		ceiling[y] = make([]int, w)
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				walls[y][x] = 1
			}
		}
	}
	return NewTileMap(walls, floor, ceiling)
}

func TestWallOutOfBoundsIsSolid(t *testing.T) {
	m := borderedMap(10, 10)
	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 5},
		{"right", 10, 5},
		{"above", 5, -1},
		{"below", 5, 10},
		{"far out", -100, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Wall(tc.x, tc.y); got == 0 {
				t.Errorf("Wall(%d,%d) = 0, want solid sentinel", tc.x, tc.y)
			}
		})
	}
	if got := m.Wall(5, 5); got != 0 {
		t.Errorf("interior Wall(5,5) = %d, want 0", got)
	}
}

func TestFloorCeilingOutOfBoundsUntextured(t *testing.T) {
	m := borderedMap(4, 4)
	if m.Floor(-1, 0) != 0 || m.Floor(4, 0) != 0 {
		t.Error("out of bounds floor lookup not untextured")
	}
	if m.Ceiling(0, -1) != 0 || m.Ceiling(0, 4) != 0 {
		t.Error("out of bounds ceiling lookup not untextured")
	}
}

func TestWalkable(t *testing.T) {
	m := borderedMap(10, 10)
	if !m.Walkable(5.5, 5.5) {
		t.Error("interior cell not walkable")
	}
	if m.Walkable(0.5, 5.5) {
		t.Error("border wall walkable")
	}
	if m.Walkable(-0.5, 5.5) {
		t.Error("outside position walkable")
	}
}

func TestInBounds(t *testing.T) {
	m := borderedMap(10, 10)
	if !m.InBounds(0.0, 0.0) || !m.InBounds(9.9, 9.9) {
		t.Error("positions inside extent reported out of bounds")
	}
	if m.InBounds(-0.1, 5) || m.InBounds(5, 10.0) {
		t.Error("positions outside extent reported in bounds")
	}
}

func TestRaggedGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTileMap accepted a ragged grid")
		}
	}()
	walls := Grid{{1, 1, 1}, {1, 1}, {1, 1, 1}}
	zero := Grid{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	NewTileMap(walls, zero, zero)
}

func TestMismatchedGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTileMap accepted grids of different heights")
		}
	}()
	walls := Grid{{1, 1}, {1, 1}}
	short := Grid{{0, 0}}
	NewTileMap(walls, short, short)
}

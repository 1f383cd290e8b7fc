package engine

import "fmt"

// -- tile map

// Grid is a row-major rectangular grid of small non-negative ints, indexed
// grid[y][x]. 0 means empty (or untextured); a value v > 0 selects texture
// id v-1.
type Grid [][]int

// oobSolid is returned for wall lookups outside the map so boundary rays
// always terminate and movement can never escape the grid.
const oobSolid = 1

type TileMap struct {
	walls   Grid
	floor   Grid
	ceiling Grid
	width   int
	height  int
}

// NewTileMap builds a map from three grids of identical width*height. Ragged
// or mismatched grids are a caller precondition violation and panic.
func NewTileMap(walls, floor, ceiling Grid) *TileMap {
	height := len(walls)
	if height == 0 {
		panic("engine: empty wall grid")
	}
	width := len(walls[0])
	for name, g := range map[string]Grid{"walls": walls, "floor": floor, "ceiling": ceiling} {
		if len(g) != height {
			panic(fmt.Sprintf("engine: %s grid height %d, want %d", name, len(g), height))
		}
		for y, row := range g {
			if len(row) != width {
				panic(fmt.Sprintf("engine: %s grid row %d has width %d, want %d", name, y, len(row), width))
			}
		}
	}
	return &TileMap{
		walls:   walls,
		floor:   floor,
		ceiling: ceiling,
		width:   width,
		height:  height,
	}
}

func (m *TileMap) Width() int  { return m.width }
func (m *TileMap) Height() int { return m.height }

// Wall returns the wall cell value, or a solid sentinel out of bounds.
func (m *TileMap) Wall(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return oobSolid
	}
	return m.walls[y][x]
}

// Floor returns the floor cell value; out of bounds cells are untextured.
func (m *TileMap) Floor(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.floor[y][x]
}

// Ceiling returns the ceiling cell value; out of bounds cells are untextured.
func (m *TileMap) Ceiling(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.ceiling[y][x]
}

// Walkable reports whether the cell containing the world position is empty.
func (m *TileMap) Walkable(x, y float64) bool {
	return m.Wall(int(x), int(y)) == 0
}

// InBounds reports whether the world position lies inside the map extent.
func (m *TileMap) InBounds(x, y float64) bool {
	return x >= 0 && y >= 0 && int(x) < m.width && int(y) < m.height
}

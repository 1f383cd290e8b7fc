// level.go
package main

import "maze3d/engine"

// built-in level: a 10x10 bordered maze with a couple of interior rooms.
// Wall values select the texture table (value-1); floor/ceiling grids use
// value 0 for untextured cells.

func defaultWalls() engine.Grid {
	return engine.Grid{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 2, 0, 2, 0, 0, 2, 0, 0, 1},
		{1, 0, 0, 2, 0, 0, 2, 0, 0, 1},
		{1, 0, 0, 2, 2, 2, 2, 0, 1, 1},
		{1, 0, 0, 2, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 2, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
}

func defaultFloor() engine.Grid {
	g := make(engine.Grid, 10)
	for y := range g {
		g[y] = make([]int, 10)
		for x := range g[y] {
			g[y][x] = texFloor + 1
		}
	}
	return g
}

func defaultCeiling() engine.Grid {
	g := make(engine.Grid, 10)
	for y := range g {
		g[y] = make([]int, 10)
		for x := range g[y] {
			g[y][x] = texCeiling + 1
		}
	}
	// leave the middle rooms open to the sky
	for y := 4; y <= 7; y++ {
		for x := 4; x <= 5; x++ {
			g[y][x] = 0
		}
	}
	return g
}

type spawn struct {
	x, y float64
}

// stationary billboard entities placed in empty cells
func defaultSpawns() []spawn {
	return []spawn{
		{2.5, 2.5},
		{7.5, 6.5},
		{8.5, 1.5},
	}
}

const (
	playerStartX = 1.5
	playerStartY = 1.5
)

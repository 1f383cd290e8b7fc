package engine

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// -- camera

// Camera is a position plus a direction vector and a perpendicular plane
// vector. The plane magnitude relative to the direction encodes the
// horizontal field of view; rotating both vectors with the same matrix
// keeps the FOV constant.
type Camera struct {
	Pos   geom.Vector2
	Dir   geom.Vector2
	Plane geom.Vector2

	// MoveSpeed is in cells per second.
	MoveSpeed float64
}

// NewCamera creates a camera at (x, y) facing (-1, 0) with the given
// horizontal field of view in degrees.
func NewCamera(x, y, fovDegrees, moveSpeed float64) *Camera {
	planeLen := math.Tan(geom.Radians(fovDegrees) / 2)
	return &Camera{
		Pos:       geom.Vector2{X: x, Y: y},
		Dir:       geom.Vector2{X: -1, Y: 0},
		Plane:     geom.Vector2{X: 0, Y: planeLen},
		MoveSpeed: moveSpeed,
	}
}

// Rotate turns the camera by the given angle in radians, applying the same
// rotation matrix to the direction and plane vectors.
func (c *Camera) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	oldDirX := c.Dir.X
	c.Dir.X = c.Dir.X*cos - c.Dir.Y*sin
	c.Dir.Y = oldDirX*sin + c.Dir.Y*cos
	oldPlaneX := c.Plane.X
	c.Plane.X = c.Plane.X*cos - c.Plane.Y*sin
	c.Plane.Y = oldPlaneX*sin + c.Plane.Y*cos
}

// Move combines the snapshot's movement intents into a single displacement
// and applies it through the map's axis-decoupled collision check, which is
// what lets the camera slide along walls instead of stopping at corners.
func (c *Camera) Move(m *TileMap, in InputSnapshot, elapsed float64) {
	var mx, my float64
	if in.MoveForward {
		mx += c.Dir.X
		my += c.Dir.Y
	}
	if in.MoveBack {
		mx -= c.Dir.X
		my -= c.Dir.Y
	}
	// the perpendicular of the direction, pointing to the camera's right
	if in.StrafeRight {
		mx += -c.Dir.Y
		my += c.Dir.X
	}
	if in.StrafeLeft {
		mx -= -c.Dir.Y
		my -= c.Dir.X
	}

	length := math.Hypot(mx, my)
	if length == 0 {
		return
	}

	// normalize so diagonal movement is no faster than straight movement
	scale := c.MoveSpeed * elapsed / length
	dx := mx * scale
	dy := my * scale

	if m.Walkable(c.Pos.X+dx, c.Pos.Y) {
		c.Pos.X += dx
	}
	if m.Walkable(c.Pos.X, c.Pos.Y+dy) {
		c.Pos.Y += dy
	}
}

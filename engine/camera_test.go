package engine

import (
	"math"
	"testing"
)

const floatTol = 1e-9

func TestRotatePreservesFov(t *testing.T) {
	c := NewCamera(5, 5, 66, 5)
	dirLen := math.Hypot(c.Dir.X, c.Dir.Y)
	planeLen := math.Hypot(c.Plane.X, c.Plane.Y)

	for i := 0; i < 12; i++ {
		c.Rotate(math.Pi / 7)
	}

	if got := math.Hypot(c.Dir.X, c.Dir.Y); math.Abs(got-dirLen) > 1e-6 {
		t.Errorf("direction length drifted: %v -> %v", dirLen, got)
	}
	if got := math.Hypot(c.Plane.X, c.Plane.Y); math.Abs(got-planeLen) > 1e-6 {
		t.Errorf("plane length drifted: %v -> %v", planeLen, got)
	}
	// plane must stay perpendicular to the direction
	if dot := c.Dir.X*c.Plane.X + c.Dir.Y*c.Plane.Y; math.Abs(dot) > 1e-6 {
		t.Errorf("dir/plane dot product = %v, want 0", dot)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	c := NewCamera(5, 5, 66, 5)
	c.Rotate(math.Pi / 2)
	// (-1,0) rotated a quarter turn lands on (0,-1)
	if math.Abs(c.Dir.X) > floatTol || math.Abs(c.Dir.Y+1) > floatTol {
		t.Errorf("Dir = (%v,%v), want (0,-1)", c.Dir.X, c.Dir.Y)
	}
}

func TestMoveBlockedAxisKeepsCoordinate(t *testing.T) {
	m := borderedMap(10, 10)
	c := NewCamera(1.5, 1.5, 66, 5)
	// facing (-1,0): a forward step would land inside the border wall
	c.Move(m, InputSnapshot{MoveForward: true}, 0.2)
	if c.Pos.X != 1.5 || c.Pos.Y != 1.5 {
		t.Errorf("camera moved into solid cell: (%v,%v)", c.Pos.X, c.Pos.Y)
	}
}

func TestMoveIntoEmptyCellAppliesFullDelta(t *testing.T) {
	m := borderedMap(10, 10)
	c := NewCamera(1.5, 1.5, 66, 5)
	c.Dir.X, c.Dir.Y = 1, 0
	c.Move(m, InputSnapshot{MoveForward: true}, 0.2)
	if math.Abs(c.Pos.X-2.5) > floatTol {
		t.Errorf("Pos.X = %v, want 2.5 (full requested delta)", c.Pos.X)
	}
	if c.Pos.Y != 1.5 {
		t.Errorf("Pos.Y = %v, want unchanged", c.Pos.Y)
	}
}

func TestMoveSlidesAlongWall(t *testing.T) {
	m := borderedMap(10, 10)
	c := NewCamera(1.5, 5.5, 66, 5)
	// facing the left border wall diagonally-ish: forward+strafe combine,
	// the x component is blocked, the y component still applies
	c.Dir.X, c.Dir.Y = -1, 0
	c.Move(m, InputSnapshot{MoveForward: true, StrafeRight: true}, 0.2)
	if c.Pos.X != 1.5 {
		t.Errorf("Pos.X = %v, want blocked at 1.5", c.Pos.X)
	}
	if c.Pos.Y >= 5.5 {
		t.Errorf("Pos.Y = %v, want to slide toward smaller y", c.Pos.Y)
	}
}

func TestDiagonalMovementIsNormalized(t *testing.T) {
	m := borderedMap(20, 20)
	c := NewCamera(10.5, 10.5, 66, 5)
	c.Dir.X, c.Dir.Y = 1, 0
	c.Move(m, InputSnapshot{MoveForward: true, StrafeRight: true}, 0.1)
	dx := c.Pos.X - 10.5
	dy := c.Pos.Y - 10.5
	want := 5 * 0.1
	if got := math.Hypot(dx, dy); math.Abs(got-want) > 1e-9 {
		t.Errorf("diagonal displacement = %v, want %v", got, want)
	}
}

func TestMoveWithNoIntentsIsStationary(t *testing.T) {
	m := borderedMap(10, 10)
	c := NewCamera(4.5, 4.5, 66, 5)
	c.Move(m, InputSnapshot{}, 0.5)
	if c.Pos.X != 4.5 || c.Pos.Y != 4.5 {
		t.Errorf("camera drifted with no intents: (%v,%v)", c.Pos.X, c.Pos.Y)
	}
}

// Package engine is a software raycasting renderer: a tile map and a camera
// pose in, a finished RGBA8 frame out. Walls are found per column with a DDA
// grid walk, floor and ceiling are projected per scanline, and entities are
// billboarded with per-column depth occlusion against the wall distances.
package engine

import (
	"image/color"
	"runtime"
)

// InputSnapshot is the already-normalized per-frame input the renderer
// consumes. TurnDelta is in radians and is expected to already include
// pointer sensitivity and elapsed time.
type InputSnapshot struct {
	MoveForward bool
	MoveBack    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnDelta   float64
	Fire        bool
	ElapsedTime float64
}

// Renderer owns the framebuffer, the per-column ray results and the entity
// collection, and sequences the strictly ordered frame pipeline.
type Renderer struct {
	fb      *FrameBuffer
	tileMap *TileMap
	camera  *Camera

	textures   []*Texture
	defaultTex *Texture

	width  int
	height int

	rays    []Ray
	workers int

	entities        []*Entity
	projectile      Entity
	projectileSpeed float64
	fireCooldown    float64

	background color.RGBA
}

// NewRenderer creates a renderer with a width*height framebuffer. The
// texture table is indexed by cell value minus one; missing entries resolve
// to a flat default texture.
func NewRenderer(width, height int, m *TileMap, cam *Camera, textures []*Texture) *Renderer {
	r := &Renderer{
		tileMap:         m,
		camera:          cam,
		textures:        textures,
		defaultTex:      NewFlatTexture(64, color.RGBA{128, 128, 128, 255}),
		workers:         runtime.NumCPU(),
		projectileSpeed: 8.0,
		background:      color.RGBA{0, 0, 0, 255},
	}
	r.Resize(width, height)
	return r
}

// Resize reallocates the framebuffer and the column ray slice. Only valid
// between frames.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	if r.fb == nil {
		r.fb = NewFrameBuffer(width, height)
	} else {
		r.fb.Resize(width, height)
	}
	r.rays = make([]Ray, width)
}

func (r *Renderer) FrameBuffer() *FrameBuffer { return r.fb }
func (r *Renderer) Camera() *Camera           { return r.camera }
func (r *Renderer) TileMap() *TileMap         { return r.tileMap }

// Entities returns the live entity collection. The renderer owns it; callers
// must not retain the slice across frames.
func (r *Renderer) Entities() []*Entity { return r.entities }

// SetProjectile sets the template cloned on each fire trigger and its speed
// in cells per second.
func (r *Renderer) SetProjectile(textureID int, speed float64) {
	r.projectile = Entity{TextureID: textureID}
	r.projectileSpeed = speed
}

// SetBackground sets the color the frame is cleared to before the wall pass;
// it remains visible wherever floor or ceiling cells are untextured.
func (r *Renderer) SetBackground(c color.RGBA) {
	r.background = c
}

func (r *Renderer) texture(id int) *Texture {
	if id < 0 || id >= len(r.textures) || r.textures[id] == nil {
		return r.defaultTex
	}
	return r.textures[id]
}

// Frame runs one full frame: apply the input snapshot to the camera and
// entities, cast all columns in parallel, then run the dependent raster
// passes in order. The returned framebuffer is valid until the next Frame or
// Resize call.
func (r *Renderer) Frame(in InputSnapshot) *FrameBuffer {
	if in.TurnDelta != 0 {
		r.camera.Rotate(in.TurnDelta)
	}
	r.camera.Move(r.tileMap, in, in.ElapsedTime)

	if r.fireCooldown > 0 {
		r.fireCooldown -= in.ElapsedTime
	}
	if in.Fire {
		r.fireProjectile()
	}
	r.updateEntities(in.ElapsedTime)

	r.fb.Fill(r.background)

	// parallel across columns; castColumns waits for every column before
	// the passes below read the ray slice
	r.castColumns()

	r.drawFloorCeiling()
	r.drawWalls()
	r.drawSprites()

	return r.fb
}

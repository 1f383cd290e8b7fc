package engine

import (
	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
)

// -- entities

// Entity is a point object rendered as a billboard sprite. A nil Velocity
// means stationary; otherwise the entity is a projectile advanced every
// frame and pruned when it leaves the map or strikes a solid wall cell.
type Entity struct {
	Position  *geom.Vector2
	Velocity  *geom.Vector2
	TextureID int
}

// clone deep-copies a template entity so spawned projectiles never share
// position or velocity storage with the template.
func (e *Entity) clone() *Entity {
	spawned := &Entity{}
	if err := copier.CopyWithOption(spawned, e, copier.Option{DeepCopy: true}); err != nil {
		// templates are plain data; a copy failure is a programming error
		panic(err)
	}
	return spawned
}

// AddEntity registers a stationary entity with the renderer.
func (r *Renderer) AddEntity(x, y float64, textureID int) {
	r.entities = append(r.entities, &Entity{
		Position:  &geom.Vector2{X: x, Y: y},
		TextureID: textureID,
	})
}

// fireProjectile spawns the projectile template just in front of the camera,
// moving along the view direction.
func (r *Renderer) fireProjectile() {
	if r.fireCooldown > 0 {
		return
	}
	r.fireCooldown = fireInterval

	cam := r.camera
	p := r.projectile.clone()
	p.Position = &geom.Vector2{
		X: cam.Pos.X + cam.Dir.X*projectileSpawnOffset,
		Y: cam.Pos.Y + cam.Dir.Y*projectileSpawnOffset,
	}
	p.Velocity = &geom.Vector2{
		X: cam.Dir.X * r.projectileSpeed,
		Y: cam.Dir.Y * r.projectileSpeed,
	}
	r.entities = append(r.entities, p)
}

// updateEntities advances projectiles and compacts the survivors in place,
// so removal never invalidates the iteration.
func (r *Renderer) updateEntities(elapsed float64) {
	alive := r.entities[:0]
	for _, e := range r.entities {
		if e.Velocity != nil {
			e.Position.X += e.Velocity.X * elapsed
			e.Position.Y += e.Velocity.Y * elapsed
		}
		// bounds are the map grid's own dimensions, not the screen's
		if !r.tileMap.InBounds(e.Position.X, e.Position.Y) {
			continue
		}
		if !r.tileMap.Walkable(e.Position.X, e.Position.Y) {
			continue
		}
		alive = append(alive, e)
	}
	// drop trailing pointers so pruned entities can be collected
	for i := len(alive); i < len(r.entities); i++ {
		r.entities[i] = nil
	}
	r.entities = alive
}

const (
	fireInterval          = 0.25 // seconds between projectile spawns
	projectileSpawnOffset = 0.5  // cells ahead of the camera
)

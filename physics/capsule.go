package physics

import (
	"math"

	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/motion"
	"github.com/automoto/tiefling/tags"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

// Capsule is a character body approximated by a square footprint of side
// 2*radius and a vertical extent of Height around Center. Its position is
// the capsule base.
type Capsule struct {
	Object *resolv.Object

	radius float64
	height float64
	center vector.Vector
	y      float64

	floorY     float64
	floorW     float64
	floorD     float64
	stepOffset float64
	skin       float64

	grounded bool
}

// NewCapsule creates a capsule standing at position and adds its footprint
// to space.
func NewCapsule(space *resolv.Space, position vector.Vector, radius, height float64, level cfg.LevelConfig) *Capsule {
	c := &Capsule{
		radius:     radius,
		height:     height,
		center:     vector.Vector{0, height / 2, 0},
		y:          position.Y(),
		floorY:     level.FloorY,
		stepOffset: level.StepOffset,
		skin:       level.Skin,
	}
	c.Object = resolv.NewObject(position.X()-radius, position.Z()-radius, 2*radius, 2*radius, tags.ResolvPlayer)
	c.Object.Data = c
	space.Add(c.Object)
	return c
}

// Position returns the world position of the capsule base.
func (c *Capsule) Position() vector.Vector {
	return vector.Vector{c.Object.X + c.radius, c.y, c.Object.Y + c.radius}
}

// Teleport places the capsule base at p without collision.
func (c *Capsule) Teleport(p vector.Vector) {
	c.Object.X = p.X() - c.radius
	c.Object.Y = p.Z() - c.radius
	c.y = p.Y()
	c.grounded = false
	c.Object.Update()
}

// SetFloorBounds limits the ground plane to [0, w] x [0, d]. Zero extents
// leave it unbounded.
func (c *Capsule) SetFloorBounds(w, d float64) {
	c.floorW, c.floorD = w, d
}

func (c *Capsule) onFloor() bool {
	if c.floorW <= 0 || c.floorD <= 0 {
		return true
	}
	p := c.Position()
	return p.X() >= 0 && p.X() <= c.floorW && p.Z() >= 0 && p.Z() <= c.floorD
}

func (c *Capsule) Radius() float64 { return c.radius }

func (c *Capsule) IsGrounded() bool { return c.grounded }

func (c *Capsule) Height() float64 { return c.height }

func (c *Capsule) SetHeight(h float64) { c.height = h }

func (c *Capsule) Center() vector.Vector { return c.center }

func (c *Capsule) SetCenter(center vector.Vector) { c.center = center }

func (c *Capsule) bottom() float64 {
	return c.y + c.center.Y() - c.height/2
}

// Move displaces the capsule, resolving X, then Z, then Y.
func (c *Capsule) Move(d vector.Vector) motion.CollisionFlags {
	flags := motion.CollisionNone

	// Sub-step so no horizontal step skips over a whole block.
	dx, dz := d.X(), d.Z()
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dz)) / c.radius))
	if steps < 1 {
		steps = 1
	}
	sx, sz := dx/float64(steps), dz/float64(steps)
	for i := 0; i < steps; i++ {
		if sx != 0 {
			moved, hit := c.sweep(sx, 0)
			c.Object.X += moved
			if hit {
				flags |= motion.CollidedSides
				sx = 0
			}
		}
		if sz != 0 {
			moved, hit := c.sweep(0, sz)
			c.Object.Y += moved
			if hit {
				flags |= motion.CollidedSides
				sz = 0
			}
		}
		c.Object.Update()
	}

	flags |= c.moveVertical(d.Y())
	c.grounded = flags.Has(motion.CollidedBelow)
	return flags
}

// sweep returns how far the footprint can travel along one axis and whether
// a block stopped it. Blocks already overlapping the footprint are ignored so
// the capsule can walk out of them.
func (c *Capsule) sweep(dx, dz float64) (float64, bool) {
	delta := dx + dz
	check := c.Object.Check(dx, dz, tags.ResolvSolid)
	if check == nil {
		return delta, false
	}

	allowed, hit := delta, false
	for _, o := range check.Objects {
		b, ok := blockOf(o)
		if !ok || !c.blocksSideways(b) {
			continue
		}
		if !footprintsOverlap(c.Object, dx, dz, o, c.skin) || footprintsOverlap(c.Object, 0, 0, o, c.skin) {
			continue
		}

		contact := check.ContactWithObject(o)
		reach := contact.X()
		if dx == 0 {
			reach = contact.Y()
		}
		if delta > 0 {
			reach = math.Max(0, math.Min(reach, allowed))
		} else {
			reach = math.Min(0, math.Max(reach, allowed))
		}
		allowed, hit = reach, true
	}
	return allowed, hit
}

// blocksSideways reports whether b is a wall for the capsule at its current
// height. Anything the capsule can step onto is left to the vertical pass.
func (c *Capsule) blocksSideways(b *Block) bool {
	bottom := c.bottom()
	return b.MaxY > bottom+c.stepOffset && b.MinY < bottom+c.height-c.skin
}

// surfaces returns the highest floor and lowest ceiling above the footprint.
func (c *Capsule) surfaces() (floor, ceiling float64) {
	bottom := c.bottom()
	floor, ceiling = math.Inf(-1), math.Inf(1)
	if c.onFloor() {
		floor = c.floorY
	}

	check := c.Object.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return floor, ceiling
	}
	for _, o := range check.Objects {
		b, ok := blockOf(o)
		if !ok || !footprintsOverlap(c.Object, 0, 0, o, c.skin) {
			continue
		}
		switch {
		case b.MaxY <= bottom+c.stepOffset+c.skin:
			floor = math.Max(floor, b.MaxY)
		case b.MinY >= bottom+c.stepOffset:
			ceiling = math.Min(ceiling, b.MinY)
		}
	}
	return floor, ceiling
}

func (c *Capsule) moveVertical(dy float64) motion.CollisionFlags {
	flags := motion.CollisionNone
	bottom := c.bottom()
	floor, ceiling := c.surfaces()

	target := bottom + dy
	if target+c.height > ceiling && dy >= 0 {
		target = math.Max(bottom, ceiling-c.height)
		flags |= motion.CollidedAbove
	}
	if target < floor || (target == floor && dy <= 0) {
		target = floor
		flags |= motion.CollidedBelow
	}

	c.y += target - bottom
	return flags
}

// HasHeadroom reports whether a capsule of the given height fits above the
// current base.
func (c *Capsule) HasHeadroom(height float64) bool {
	_, ceiling := c.surfaces()
	return c.bottom()+height <= ceiling+c.skin
}

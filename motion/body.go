package motion

import "github.com/kvartborg/vector"

// CollisionFlags reports which sides of the capsule touched something during
// a move.
type CollisionFlags uint8

const (
	CollidedSides CollisionFlags = 1 << iota
	CollidedAbove
	CollidedBelow
)

// CollisionNone is the result of an unobstructed move.
const CollisionNone CollisionFlags = 0

func (f CollisionFlags) Has(flag CollisionFlags) bool {
	return f&flag != 0
}

// Body is the collision-resolving character body the controller drives.
// Center is relative to the body's position, which sits at the capsule base.
type Body interface {
	IsGrounded() bool
	Height() float64
	SetHeight(h float64)
	Center() vector.Vector
	SetCenter(c vector.Vector)
	Move(displacement vector.Vector) CollisionFlags
}

// HeadroomProber is implemented by bodies that can tell whether a capsule of
// the given height fits at the current position. The controller refuses to
// stand up while it does not.
type HeadroomProber interface {
	HasHeadroom(height float64) bool
}

// Camera is the view the controller moves relative to.
type Camera interface {
	// TransformDirection rotates a local direction into world space.
	TransformDirection(local vector.Vector) vector.Vector
	// LocalPosition is the camera position relative to the body.
	LocalPosition() vector.Vector
	SetLocalPosition(p vector.Vector)
}

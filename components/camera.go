package components

import (
	"github.com/automoto/tiefling/shared/gamemath"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// CameraRigData is a first-person camera parented to the player body.
// Yaw and Pitch are in degrees; Local is the eye position relative to the
// body base.
type CameraRigData struct {
	Yaw   float64
	Pitch float64
	Local vector.Vector
}

func (c *CameraRigData) TransformDirection(v vector.Vector) vector.Vector {
	return gamemath.RotateYawPitch(v, c.Yaw, c.Pitch)
}

func (c *CameraRigData) LocalPosition() vector.Vector {
	return c.Local
}

func (c *CameraRigData) SetLocalPosition(p vector.Vector) {
	c.Local = p
}

// Turn applies a look delta in degrees. Yaw wraps, pitch is clamped to
// +/-maxPitch.
func (c *CameraRigData) Turn(yaw, pitch, maxPitch float64) {
	c.Yaw = gamemath.WrapDegrees(c.Yaw + yaw)
	c.Pitch = gamemath.Clamp(c.Pitch+pitch, -maxPitch, maxPitch)
}

// Forward returns the horizontal facing direction.
func (c *CameraRigData) Forward() vector.Vector {
	return gamemath.RotateYawPitch(vector.Vector{0, 0, 1}, c.Yaw, 0)
}

var CameraRig = donburi.NewComponentType[CameraRigData]()

package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// RotateYawPitch rotates a local direction into world space for a camera with
// the given yaw (about +Y) and pitch (about +X), both in degrees. Pitch is
// applied first. Yaw 0 looks down +Z, positive yaw turns toward +X and
// positive pitch looks down.
func RotateYawPitch(v vector.Vector, yaw, pitch float64) vector.Vector {
	x, y, z := v.X(), v.Y(), v.Z()

	sp, cp := math.Sincos(pitch * math.Pi / 180)
	y, z = y*cp-z*sp, y*sp+z*cp

	sy, cy := math.Sincos(yaw * math.Pi / 180)
	x, z = x*cy+z*sy, -x*sy+z*cy

	return vector.Vector{x, y, z}
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

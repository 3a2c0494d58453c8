package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// directionEpsilon is the horizontal length below which a direction is
// treated as no direction at all.
const directionEpsilon = 1e-9

// IntegrateVertical advances a vertical speed by one explicit Euler step.
// While grounded a non-positive speed is first reset to initialFall, so the
// body stays pressed to the floor without accumulating downward speed.
func IntegrateVertical(speed float64, grounded bool, initialFall, gravity, dt float64) float64 {
	if grounded && speed <= 0 {
		speed = initialFall
	}
	return speed + gravity*dt
}

// SelectSpeed picks the horizontal speed for a locomotion state.
// Crouching wins over running.
func SelectSpeed(walk, run, crouch float64, crouching, running bool) float64 {
	switch {
	case crouching:
		return crouch
	case running:
		return run
	default:
		return walk
	}
}

// Flatten projects dir onto the horizontal (X/Z) plane and normalizes it.
// Directions with no horizontal component yield the zero vector.
func Flatten(dir vector.Vector) vector.Vector {
	x, z := dir.X(), dir.Z()
	l := math.Hypot(x, z)
	if l < directionEpsilon || math.IsNaN(l) {
		return vector.Vector{0, 0, 0}
	}
	return vector.Vector{x / l, 0, z / l}
}

// Lerp interpolates from a to b; t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// Clamp constrains a value to the range [min, max]
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ApproachHeight moves height toward target by one lerp step of rate*dt.
// Within snap of the target it returns the target itself and snapped=true.
func ApproachHeight(height, target, rate, dt, snap float64) (next float64, snapped bool) {
	if math.Abs(height-target) < snap {
		return target, true
	}
	return Lerp(height, target, rate*dt), false
}

package physics

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Elevator moves a block's top from its resting height up by travel and back,
// one leg per half period.
type Elevator struct {
	Block *Block

	legs      [2]*gween.Tween
	leg       int
	thickness float64
}

func NewElevator(b *Block, travel, period float64) *Elevator {
	top := float32(b.MaxY)
	half := float32(period / 2)
	return &Elevator{
		Block: b,
		legs: [2]*gween.Tween{
			gween.New(top, top+float32(travel), half, ease.InOutSine),
			gween.New(top+float32(travel), top, half, ease.InOutSine),
		},
		thickness: b.MaxY - b.MinY,
	}
}

// Advance plays the current leg for dt seconds and moves the block.
func (e *Elevator) Advance(dt float64) {
	top, done := e.legs[e.leg].Update(float32(dt))
	e.Block.SetVertical(float64(top)-e.thickness, float64(top))
	if done {
		e.legs[e.leg].Reset()
		e.leg = 1 - e.leg
	}
}

// Rising reports whether the elevator is on its upward leg.
func (e *Elevator) Rising() bool { return e.leg == 0 }

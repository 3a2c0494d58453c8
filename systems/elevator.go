package systems

import (
	"github.com/automoto/tiefling/components"
	"github.com/automoto/tiefling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateElevators moves elevator blocks. Must run BEFORE UpdateMotion so the
// player collides with this frame's extents.
func UpdateElevators(ecs *ecs.ECS) {
	dt := 1.0 / float64(ebiten.TPS())
	tags.Elevator.Each(ecs.World, func(e *donburi.Entry) {
		components.Elevator.Get(e).Advance(dt)
	})
}

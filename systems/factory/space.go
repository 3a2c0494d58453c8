package factory

import (
	"math"

	"github.com/automoto/tiefling/archetypes"
	"github.com/automoto/tiefling/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space covering a width by depth arena.
func CreateSpace(ecs *ecs.ECS, width, depth float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(depth)), cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}

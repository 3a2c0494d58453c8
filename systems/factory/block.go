package factory

import (
	"github.com/automoto/tiefling/archetypes"
	"github.com/automoto/tiefling/components"
	"github.com/automoto/tiefling/physics"
	"github.com/automoto/tiefling/shared/leveldata"
	"github.com/automoto/tiefling/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBlock(ecs *ecs.ECS, r leveldata.BlockRect) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)
	b := physics.NewBlock(r.X, r.Z, r.W, r.D, r.MinY, r.MaxY)
	components.Block.SetValue(block, components.BlockData{Block: b})
	addToSpace(ecs, b)
	return block
}

func CreateElevator(ecs *ecs.ECS, r leveldata.ElevatorRect) *donburi.Entry {
	elevator := archetypes.Elevator.Spawn(ecs)
	b := physics.NewBlock(r.X, r.Z, r.W, r.D, r.MinY, r.MaxY)
	b.Object.AddTags(tags.ResolvElevator)
	components.Block.SetValue(elevator, components.BlockData{Block: b})

	// The elevator ping-pongs between two gween tweens, one leg each.
	components.Elevator.Set(elevator, physics.NewElevator(b, r.Travel, r.Period))
	addToSpace(ecs, b)
	return elevator
}

// Add to space if it exists
func addToSpace(ecs *ecs.ECS, b *physics.Block) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(b.Object)
	}
}

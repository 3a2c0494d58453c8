package factory

import (
	"github.com/automoto/tiefling/archetypes"
	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level entity, its collision space and every block
// and elevator in the arena.
func CreateLevel(ecs *ecs.ECS, arena *leveldata.ArenaData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Arena: arena})

	CreateSpace(ecs, arena.Width, arena.Depth, cfg.Level.CellSize)

	for _, b := range arena.Blocks {
		CreateBlock(ecs, b)
	}
	for _, e := range arena.Elevators {
		CreateElevator(ecs, e)
	}
	return level
}

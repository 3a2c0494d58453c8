package archetypes

import (
	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Block = newArchetype(
		tags.Block,
		components.Block,
	)
	Elevator = newArchetype(
		tags.Block,
		tags.Elevator,
		components.Block,
		components.Elevator,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Capsule,
		components.CameraRig,
		components.Motion,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package systems

import (
	"github.com/automoto/tiefling/actions"
	"github.com/automoto/tiefling/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ActionEvents queues action events between UpdateInput and DispatchActions.
var ActionEvents = events.NewEventType[actions.Event]()

// SetupActions routes the world's queued action events into its action map.
// Call once per world.
func SetupActions(ecs *ecs.ECS) *actions.Map {
	m := GetOrCreateActionMap(ecs)
	ActionEvents.Subscribe(ecs.World, func(_ donburi.World, ev actions.Event) {
		m.Dispatch(ev)
	})
	return m
}

// DispatchActions delivers this frame's queued action events to subscribers.
func DispatchActions(ecs *ecs.ECS) {
	ActionEvents.ProcessEvents(ecs.World)
}

// GetOrCreateActionMap returns the singleton action map, creating if needed.
func GetOrCreateActionMap(ecs *ecs.ECS) *actions.Map {
	if _, ok := components.ActionMap.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.ActionMap))
		components.ActionMap.SetValue(ent, components.ActionMapData{Map: actions.NewMap()})
	}

	ent, _ := components.ActionMap.First(ecs.World)
	return components.ActionMap.Get(ent).Map
}

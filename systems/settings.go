package systems

import (
	"github.com/automoto/tiefling/actions"
	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.ShowOverlay,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// SetupDebugToggle flips the debug overlay on each toggle press and saves
// the choice. The scope owns the subscription.
func SetupDebugToggle(ecs *ecs.ECS, m *actions.Map, scope *actions.Scope) {
	settings := GetOrCreateSettings(ecs)
	scope.Subscribe(m, cfg.ActionToggleDebug, actions.Started, func(actions.Event) {
		settings.Debug = !settings.Debug
		cfg.Debug.ShowOverlay = settings.Debug
		SaveCurrentSettings()
	})
}

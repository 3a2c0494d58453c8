package systems

import (
	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLook turns every player's camera rig by this frame's look delta.
// Must run AFTER UpdateInput and BEFORE UpdateMotion.
func UpdateLook(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		rig := components.CameraRig.Get(e)
		rig.Turn(input.Look.X, input.Look.Y, cfg.Look.MaxPitch)
	})
}

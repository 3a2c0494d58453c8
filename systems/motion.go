package systems

import (
	"log"

	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/motion"
	"github.com/automoto/tiefling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion steps every player's motion controller by one tick.
func UpdateMotion(ecs *ecs.ECS) {
	dt := 1.0 / float64(ebiten.TPS())
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Motion.Get(e)
		if err := ctrl.Step(dt); err != nil {
			log.Printf("Warning: motion step failed: %v", err)
			return
		}
		if cfg.Debug.LogMotion && ctrl.LastTransition() != motion.TransitionNone {
			log.Printf("motion: %s (vy=%.2f)", ctrl.LastTransition(), ctrl.VerticalVelocity())
		}
	})
}

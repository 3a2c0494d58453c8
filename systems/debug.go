package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision footprint and prints the player's
// motion state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	if view, ok := newMapView(ecs, screen); ok {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			for _, obj := range components.Space.Get(spaceEntry).Objects() {
				x, y := view.point(obj.X, obj.Y)
				w, h := float32(obj.W*view.scale), float32(obj.H*view.scale)
				vector.StrokeRect(screen, x, y, w, h, 1, debugColor(obj), false)
			}
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	ctrl := components.Motion.Get(playerEntry)
	capsule := components.Capsule.Get(playerEntry)
	rig := components.CameraRig.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	p := capsule.Position()

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS %.0f\npos %.2f %.2f %.2f\nyaw %.1f pitch %.1f\n%s vy %.2f\nspeed %.1f crouch %t run %t\nheight %.2f eye %.2f\nflags %03b respawns %d",
		ebiten.ActualTPS(),
		p.X(), p.Y(), p.Z(),
		rig.Yaw, rig.Pitch,
		ctrl.Ground(), ctrl.VerticalVelocity(),
		ctrl.Speed(), ctrl.Crouching(), ctrl.Running(),
		capsule.Height(), rig.Local.Y(),
		ctrl.LastFlags(), player.Respawns,
	))
}

func debugColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.Cyan
	case obj.HasTags(tags.ResolvElevator):
		return cfg.Yellow
	}
	return cfg.White
}

package factory

import (
	"fmt"

	"github.com/automoto/tiefling/actions"
	"github.com/automoto/tiefling/archetypes"
	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/motion"
	"github.com/automoto/tiefling/physics"
	"github.com/automoto/tiefling/shared/leveldata"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a first-person player at spawn and enables its motion
// controller on m. The space and level entities must already exist.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.SpawnPoint, m *actions.Map) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("create player: no collision space")
	}
	space := components.Space.Get(spaceEntry)

	player := archetypes.Player.Spawn(ecs)

	pos := vector.Vector{spawn.X, spawn.Y, spawn.Z}
	capsule := physics.NewCapsule(space, pos, cfg.Level.CapsuleRadius, cfg.Movement.StandingHeight, cfg.Level)
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		arena := components.Level.Get(levelEntry).Arena
		capsule.SetFloorBounds(arena.Width, arena.Depth)
	}
	components.Capsule.SetValue(player, components.CapsuleData{Capsule: capsule})

	components.CameraRig.SetValue(player, components.CameraRigData{
		Yaw:   spawn.Yaw,
		Local: vector.Vector{0, cfg.Movement.StandingHeight - cfg.Movement.CameraOffset, 0},
	})
	rig := components.CameraRig.Get(player)

	components.Player.SetValue(player, components.PlayerData{
		Spawn:    pos,
		SpawnYaw: spawn.Yaw,
	})

	ctrl, err := motion.New(cfg.Movement, capsule, rig)
	if err != nil {
		ecs.World.Remove(player.Entity())
		space.Remove(capsule.Object)
		return nil, fmt.Errorf("create player: %w", err)
	}
	if err := ctrl.Enable(m); err != nil {
		ecs.World.Remove(player.Entity())
		space.Remove(capsule.Object)
		return nil, fmt.Errorf("create player: %w", err)
	}
	components.Motion.SetValue(player, components.MotionData{Controller: ctrl})

	return player, nil
}

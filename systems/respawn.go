package systems

import (
	"log"

	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawn returns players who fell off the arena to their spawn.
func UpdateRespawn(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Capsule.Get(e).Position().Y() < cfg.Level.KillY {
			RespawnPlayer(e)
		}
	})
}

// RespawnPlayer teleports a player to its spawn point facing the spawn yaw.
func RespawnPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	capsule := components.Capsule.Get(e)
	rig := components.CameraRig.Get(e)

	capsule.Teleport(player.Spawn)
	rig.Yaw, rig.Pitch = player.SpawnYaw, 0
	components.Motion.Get(e).Reset()

	player.Respawns++
	log.Printf("Player respawned at %v (%d)", player.Spawn, player.Respawns)
}

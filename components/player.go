package components

import (
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Spawn    vector.Vector
	SpawnYaw float64
	Respawns int
}

var Player = donburi.NewComponentType[PlayerData]()

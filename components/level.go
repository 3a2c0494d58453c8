package components

import (
	"github.com/automoto/tiefling/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *leveldata.ArenaData
}

var Level = donburi.NewComponentType[LevelData]()

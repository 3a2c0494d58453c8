package components

import (
	"github.com/automoto/tiefling/physics"
	"github.com/yohamta/donburi"
)

type BlockData struct {
	*physics.Block
}

var Block = donburi.NewComponentType[BlockData]()

type CapsuleData struct {
	*physics.Capsule
}

var Capsule = donburi.NewComponentType[CapsuleData]()

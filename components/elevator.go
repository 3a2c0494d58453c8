package components

import (
	"github.com/automoto/tiefling/physics"
	"github.com/yohamta/donburi"
)

var Elevator = donburi.NewComponentType[physics.Elevator]()

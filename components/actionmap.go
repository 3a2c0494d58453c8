package components

import (
	"github.com/automoto/tiefling/actions"
	"github.com/yohamta/donburi"
)

type ActionMapData struct {
	*actions.Map
}

var ActionMap = donburi.NewComponentType[ActionMapData]()

package components

import (
	"github.com/automoto/tiefling/motion"
	"github.com/yohamta/donburi"
)

type MotionData struct {
	*motion.Controller
}

var Motion = donburi.NewComponentType[MotionData]()

package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Block    = donburi.NewTag().SetName("Block")
	Elevator = donburi.NewTag().SetName("Elevator")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvElevator = "elevator"
	ResolvPlayer   = "Player"
)

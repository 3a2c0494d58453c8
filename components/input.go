package components

import (
	cfg "github.com/automoto/tiefling/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Move            math.Vec2             // x = strafe, y = forward
	PreviousMove    math.Vec2
	Look            math.Vec2 // degrees this frame, x = yaw, y = pitch
	CursorX         int
	CursorY         int
	HasCursor       bool // false until the first cursor sample
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

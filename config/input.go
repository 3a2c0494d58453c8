package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMove          // 2D vector action, composed from the four move bindings
	ActionJump
	ActionRun
	ActionCrouch
	ActionTurnLeft
	ActionTurnRight
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMove:        "move",
	ActionJump:        "jump",
	ActionRun:         "run",
	ActionCrouch:      "crouch",
	ActionTurnLeft:    "turn_left",
	ActionTurnRight:   "turn_right",
	ActionToggleDebug: "toggle_debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

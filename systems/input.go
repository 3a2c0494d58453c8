package systems

import (
	"github.com/automoto/tiefling/actions"
	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/config/keybinds"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input component and publishes the
// resulting action events. Must run BEFORE DispatchActions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.PreviousMove = input.Move

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range keybinds.Input.Bindings {
		k, g := bindingPressed(binding, gamepadIDs)
		if k || g {
			input.Current[actionID] = true
		}
		keyboardUsed = keyboardUsed || k
		gamepadUsed = gamepadUsed || g
	}

	move, k, g := digitalMove(gamepadIDs)
	keyboardUsed = keyboardUsed || k
	gamepadUsed = gamepadUsed || g
	if stick, ok := analogStick(gamepadIDs, ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical); ok {
		// Stick up is negative
		move = math.Vec2{X: stick.X, Y: -stick.Y}
		gamepadUsed = true
	}
	input.Move = move
	input.Current[cfg.ActionMove] = move != math.Vec2{}

	input.Look = readLook(input)

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	publishActions(ecs, input)
}

func bindingPressed(binding keybinds.InputBinding, gamepads []ebiten.GamepadID) (keyboard, gamepad bool) {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			keyboard = true
		}
	}
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				gamepad = true
			}
		}
	}
	return keyboard, gamepad
}

// digitalMove composes the move vector from the four direction bindings.
func digitalMove(gamepads []ebiten.GamepadID) (v math.Vec2, keyboard, gamepad bool) {
	dirs := []struct {
		binding keybinds.InputBinding
		x, y    float64
	}{
		{keybinds.Input.Move.Forward, 0, 1},
		{keybinds.Input.Move.Back, 0, -1},
		{keybinds.Input.Move.Left, -1, 0},
		{keybinds.Input.Move.Right, 1, 0},
	}
	for _, d := range dirs {
		k, g := bindingPressed(d.binding, gamepads)
		if k || g {
			v.X += d.x
			v.Y += d.y
		}
		keyboard = keyboard || k
		gamepad = gamepad || g
	}
	return v, keyboard, gamepad
}

// analogStick returns the first stick outside the deadzone.
func analogStick(gamepads []ebiten.GamepadID, hAxis, vAxis ebiten.StandardGamepadAxis) (math.Vec2, bool) {
	deadzone := keybinds.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, hAxis)
		v := ebiten.StandardGamepadAxisValue(gpID, vAxis)
		if h*h+v*v < deadzone*deadzone {
			continue
		}
		return math.Vec2{X: h, Y: v}, true
	}
	return math.Vec2{}, false
}

// readLook turns cursor motion, the right stick and the turn keys into a look
// delta in degrees for this frame.
func readLook(input *components.InputData) math.Vec2 {
	var look math.Vec2
	perTick := 1.0 / float64(ebiten.TPS())

	cx, cy := ebiten.CursorPosition()
	if input.HasCursor {
		look.X += float64(cx-input.CursorX) * cfg.Look.MouseSensitivity
		look.Y += float64(cy-input.CursorY) * cfg.Look.MouseSensitivity
	}
	input.CursorX, input.CursorY, input.HasCursor = cx, cy, true

	if stick, ok := analogStick(gamepadIDs, ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical); ok {
		look.X += stick.X * cfg.Look.StickSensitivity * perTick
		look.Y += stick.Y * cfg.Look.StickSensitivity * perTick
	}

	if input.Current[cfg.ActionTurnLeft] {
		look.X -= cfg.Look.TurnSpeed * perTick
	}
	if input.Current[cfg.ActionTurnRight] {
		look.X += cfg.Look.TurnSpeed * perTick
	}

	if cfg.Look.InvertY {
		look.Y = -look.Y
	}
	return look
}

// publishActions queues the frame's action edges for DispatchActions.
func publishActions(ecs *ecs.ECS, input *components.InputData) {
	for _, ev := range actions.AxisEvents(cfg.ActionMove, input.PreviousMove, input.Move) {
		ActionEvents.Publish(ecs.World, ev)
	}
	for id := cfg.ActionMove + 1; id < cfg.ActionCount; id++ {
		for _, ev := range actions.ButtonEvents(id, input.Previous[id], input.Current[id]) {
			ActionEvents.Publish(ecs.World, ev)
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

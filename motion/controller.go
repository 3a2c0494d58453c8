// Package motion implements the first-person character motion controller:
// camera-relative walking, running and crouching, gravity with jumping, and
// the stance transition between standing and crouching heights.
package motion

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/automoto/tiefling/actions"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/shared/gamemath"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi/features/math"
)

var (
	ErrNilBody     = errors.New("motion: nil body")
	ErrNilCamera   = errors.New("motion: nil camera")
	ErrNilActions  = errors.New("motion: nil action map")
	ErrInvalidStep = errors.New("motion: step delta must be positive")
)

// Controller moves a Body relative to a Camera. It is driven by Step once per
// simulated step and fed by action events while enabled.
type Controller struct {
	cfg    cfg.MovementConfig
	body   Body
	camera Camera

	scope   actions.Scope
	enabled bool
	pending pendingInput

	moveInput  math.Vec2
	ground     GroundState
	transition GroundTransition
	crouching  bool
	crouchWant bool
	running    bool

	verticalVelocity float64
	targetHeight     float64

	lastFlags        CollisionFlags
	lastDisplacement vector.Vector
}

// New validates the tuning and returns a disabled controller. A nil body or
// camera is rejected, including a nil pointer wrapped in the interface.
func New(movement cfg.MovementConfig, body Body, camera Camera) (*Controller, error) {
	if isNil(body) {
		return nil, ErrNilBody
	}
	if isNil(camera) {
		return nil, ErrNilCamera
	}
	if err := movement.Validate(); err != nil {
		return nil, fmt.Errorf("motion: %w", err)
	}
	return &Controller{
		cfg:              movement,
		body:             body,
		camera:           camera,
		targetHeight:     movement.StandingHeight,
		lastDisplacement: vector.Vector{0, 0, 0},
	}, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Enable subscribes the controller to the move, jump, run and crouch actions
// of m. Enabling an enabled controller does nothing.
func (c *Controller) Enable(m *actions.Map) error {
	if m == nil {
		return ErrNilActions
	}
	if c.enabled {
		return nil
	}

	c.scope.Subscribe(m, cfg.ActionMove, actions.Performed|actions.Canceled, c.onMove)
	c.scope.Subscribe(m, cfg.ActionJump, actions.Performed, c.onJump)
	c.scope.Subscribe(m, cfg.ActionRun, actions.Started|actions.Canceled, c.onRun)
	if c.cfg.CrouchMode == cfg.CrouchHold {
		c.scope.Subscribe(m, cfg.ActionCrouch, actions.Started|actions.Canceled, c.onCrouchHold)
	} else {
		c.scope.Subscribe(m, cfg.ActionCrouch, actions.Canceled, c.onCrouchToggle)
	}

	c.enabled = true
	return nil
}

// Disable releases every subscription taken by Enable. Held input is
// forgotten since the matching release events will never arrive.
func (c *Controller) Disable() {
	c.scope.Release()
	c.enabled = false
	c.pending = pendingInput{}
	c.moveInput = math.Vec2{}
	c.running = false
	if c.cfg.CrouchMode == cfg.CrouchHold {
		c.crouchWant = false
	}
}

func (c *Controller) onMove(ev actions.Event) {
	if ev.Phase == actions.Canceled {
		c.pending.setMove(math.Vec2{})
		return
	}
	c.pending.setMove(ev.Vector)
}

func (c *Controller) onJump(actions.Event) {
	c.pending.requestJump()
}

func (c *Controller) onRun(ev actions.Event) {
	c.pending.setRunning(ev.Phase != actions.Canceled && ev.Active)
}

func (c *Controller) onCrouchToggle(actions.Event) {
	c.pending.toggleCrouch()
}

func (c *Controller) onCrouchHold(ev actions.Event) {
	c.pending.setCrouchHeld(ev.Phase == actions.Started)
}

// Step advances the controller by dt seconds: input, gravity, movement, then
// stance, in that order. A disabled controller does not step.
func (c *Controller) Step(dt float64) error {
	if !c.enabled {
		return nil
	}
	if !(dt > 0) {
		return ErrInvalidStep
	}
	if dt > c.cfg.MaxStepDelta {
		dt = c.cfg.MaxStepDelta
	}

	c.applyInput(c.pending.take())
	c.ground, c.transition = NextGroundState(c.ground, c.body.IsGrounded())
	c.handleGravity(dt)
	c.handleMovement(dt)
	c.handleStance(dt)
	return nil
}

// applyInput folds one input snapshot into the controller state. Jumps use
// the ground state of the previous step, which is what was current when the
// jump event arrived.
func (c *Controller) applyInput(in pendingInput) {
	if in.hasMove {
		c.moveInput = in.move
	}
	if in.jump && c.ground == Grounded {
		c.verticalVelocity = c.cfg.JumpForce
	}
	if in.hasRunning {
		c.running = in.running
	}

	if c.cfg.CrouchMode == cfg.CrouchHold {
		if in.hasCrouchHeld {
			c.crouchWant = in.crouchHeld
		}
	} else if in.crouchToggles%2 == 1 {
		c.crouchWant = !c.crouchWant
	}
	// Retried every step so a blocked stand-up completes once clear.
	if c.crouching != c.crouchWant {
		c.setCrouching(c.crouchWant)
	}
}

// setCrouching changes stance. Standing up is refused without headroom.
func (c *Controller) setCrouching(crouch bool) {
	if !crouch && c.crouching {
		if p, ok := c.body.(HeadroomProber); ok && !p.HasHeadroom(c.cfg.StandingHeight) {
			return
		}
	}
	c.crouching, c.crouchWant = crouch, crouch
	if crouch {
		c.targetHeight = c.cfg.CrouchHeight
	} else {
		c.targetHeight = c.cfg.StandingHeight
	}
}

func (c *Controller) handleGravity(dt float64) {
	c.verticalVelocity = gamemath.IntegrateVertical(
		c.verticalVelocity,
		c.ground == Grounded,
		c.cfg.InitialFallVelocity,
		c.cfg.Gravity,
		dt,
	)
}

func (c *Controller) handleMovement(dt float64) {
	local := vector.Vector{c.moveInput.X, 0, c.moveInput.Y}
	dir := gamemath.Flatten(c.camera.TransformDirection(local))
	speed := c.Speed()

	c.lastDisplacement = vector.Vector{
		dir.X() * speed * dt,
		c.verticalVelocity * dt,
		dir.Z() * speed * dt,
	}
	c.lastFlags = c.body.Move(c.lastDisplacement)

	// Rising into a ceiling ends the jump instead of sticking to it.
	if c.lastFlags.Has(CollidedAbove) {
		c.verticalVelocity = c.cfg.InitialFallVelocity
	}
}

func (c *Controller) handleStance(dt float64) {
	rate := c.cfg.CrouchTransitionSpeed
	height, snapped := gamemath.ApproachHeight(c.body.Height(), c.targetHeight, rate, dt, c.cfg.StanceSnapThreshold)
	c.body.SetHeight(height)
	c.body.SetCenter(vector.Vector{0, height / 2, 0})
	if snapped {
		return
	}

	cam := c.camera.LocalPosition()
	eye := gamemath.Lerp(cam.Y(), c.targetHeight-c.cfg.CameraOffset, rate*dt)
	c.camera.SetLocalPosition(vector.Vector{cam.X(), eye, cam.Z()})
}

// Reset clears velocity and buffered input, e.g. after a teleport.
func (c *Controller) Reset() {
	c.verticalVelocity = 0
	c.ground = Airborne
	c.transition = TransitionNone
	c.pending = pendingInput{}
}

// Speed returns the horizontal speed of the current locomotion state.
func (c *Controller) Speed() float64 {
	return gamemath.SelectSpeed(c.cfg.WalkSpeed, c.cfg.RunSpeed, c.cfg.CrouchSpeed, c.crouching, c.running)
}

func (c *Controller) Enabled() bool                    { return c.enabled }
func (c *Controller) Config() cfg.MovementConfig       { return c.cfg }
func (c *Controller) VerticalVelocity() float64        { return c.verticalVelocity }
func (c *Controller) Ground() GroundState              { return c.ground }
func (c *Controller) LastTransition() GroundTransition { return c.transition }
func (c *Controller) Crouching() bool                  { return c.crouching }
func (c *Controller) Running() bool                    { return c.running }
func (c *Controller) MoveInput() math.Vec2             { return c.moveInput }
func (c *Controller) TargetHeight() float64            { return c.targetHeight }
func (c *Controller) LastFlags() CollisionFlags        { return c.lastFlags }
func (c *Controller) LastDisplacement() vector.Vector  { return c.lastDisplacement }

package motion

import (
	gomath "math"
	"testing"

	"github.com/automoto/tiefling/actions"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/shared/gamemath"
	"github.com/kvartborg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 60.0

type fakeBody struct {
	grounded bool
	height   float64
	center   vector.Vector
	flags    CollisionFlags
	moves    []vector.Vector
}

func newFakeBody(height float64, grounded bool) *fakeBody {
	return &fakeBody{grounded: grounded, height: height, center: vector.Vector{0, height / 2, 0}}
}

func (b *fakeBody) IsGrounded() bool            { return b.grounded }
func (b *fakeBody) Height() float64             { return b.height }
func (b *fakeBody) SetHeight(h float64)         { b.height = h }
func (b *fakeBody) Center() vector.Vector       { return b.center }
func (b *fakeBody) SetCenter(c vector.Vector)   { b.center = c }
func (b *fakeBody) Move(d vector.Vector) CollisionFlags {
	b.moves = append(b.moves, d)
	return b.flags
}

func (b *fakeBody) lastMove(t *testing.T) vector.Vector {
	t.Helper()
	require.NotEmpty(t, b.moves)
	return b.moves[len(b.moves)-1]
}

type lowCeilingBody struct {
	*fakeBody
	clear bool
}

func (b *lowCeilingBody) HasHeadroom(float64) bool { return b.clear }

type fakeCamera struct {
	yaw, pitch float64
	local      vector.Vector
}

func (c *fakeCamera) TransformDirection(v vector.Vector) vector.Vector {
	return gamemath.RotateYawPitch(v, c.yaw, c.pitch)
}
func (c *fakeCamera) LocalPosition() vector.Vector     { return c.local }
func (c *fakeCamera) SetLocalPosition(p vector.Vector) { c.local = p }

type rig struct {
	ctrl   *Controller
	body   *fakeBody
	camera *fakeCamera
	acts   *actions.Map
}

func newRig(t *testing.T, grounded bool, mutate ...func(*cfg.MovementConfig)) *rig {
	t.Helper()
	m := cfg.DefaultMovement()
	for _, f := range mutate {
		f(&m)
	}
	body := newFakeBody(m.StandingHeight, grounded)
	cam := &fakeCamera{local: vector.Vector{0, m.StandingHeight - m.CameraOffset, 0}}
	ctrl, err := New(m, body, cam)
	require.NoError(t, err)
	acts := actions.NewMap()
	require.NoError(t, ctrl.Enable(acts))
	return &rig{ctrl: ctrl, body: body, camera: cam, acts: acts}
}

func (r *rig) send(action cfg.ActionID, phase actions.Phase, active bool) {
	r.acts.Dispatch(actions.Event{Action: action, Phase: phase, Active: active})
}

func (r *rig) move(x, y float64) {
	r.acts.Dispatch(actions.Event{Action: cfg.ActionMove, Phase: actions.Performed, Vector: math.Vec2{X: x, Y: y}})
}

func (r *rig) step(t *testing.T) {
	t.Helper()
	require.NoError(t, r.ctrl.Step(dt))
}

func horizontal(v vector.Vector) float64 {
	return gomath.Hypot(v.X(), v.Z())
}

func TestNewFailsFast(t *testing.T) {
	body := newFakeBody(2, true)
	cam := &fakeCamera{local: vector.Vector{0, 1.6, 0}}

	_, err := New(cfg.DefaultMovement(), nil, cam)
	assert.ErrorIs(t, err, ErrNilBody)

	_, err = New(cfg.DefaultMovement(), body, nil)
	assert.ErrorIs(t, err, ErrNilCamera)

	_, err = New(cfg.DefaultMovement(), (*fakeBody)(nil), cam)
	assert.ErrorIs(t, err, ErrNilBody)

	_, err = New(cfg.DefaultMovement(), body, (*fakeCamera)(nil))
	assert.ErrorIs(t, err, ErrNilCamera)

	bad := cfg.DefaultMovement()
	bad.Gravity = 12
	_, err = New(bad, body, cam)
	assert.ErrorIs(t, err, cfg.ErrInvalidMovement)

	nan := cfg.DefaultMovement()
	nan.Gravity = gomath.NaN()
	nan.WalkSpeed = gomath.Inf(1)
	_, err = New(nan, body, cam)
	assert.ErrorIs(t, err, cfg.ErrInvalidMovement)
}

func TestGroundedGravityClampsBeforeAccumulating(t *testing.T) {
	r := newRig(t, true)

	for i := 0; i < 5; i++ {
		r.step(t)
		assert.InDelta(t, -2+-12*dt, r.ctrl.VerticalVelocity(), 1e-12, "step %d", i)
		assert.InDelta(t, (-2+-12*dt)*dt, r.body.lastMove(t).Y(), 1e-12)
	}
	assert.Equal(t, Grounded, r.ctrl.Ground())
}

func TestAirborneGravityAccumulates(t *testing.T) {
	r := newRig(t, false)

	r.step(t)
	r.step(t)

	assert.InDelta(t, 2*-12*dt, r.ctrl.VerticalVelocity(), 1e-12)
	assert.Equal(t, Airborne, r.ctrl.Ground())
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	r := newRig(t, false)
	r.step(t)
	before := r.ctrl.VerticalVelocity()

	r.send(cfg.ActionJump, actions.Performed, true)
	r.ctrl.applyInput(r.ctrl.pending.take())
	assert.Equal(t, before, r.ctrl.VerticalVelocity())

	r.send(cfg.ActionJump, actions.Performed, true)
	r.step(t)
	assert.InDelta(t, before+-12*dt, r.ctrl.VerticalVelocity(), 1e-12)
}

func TestJumpFromGroundStartsFromJumpForce(t *testing.T) {
	r := newRig(t, true)
	r.step(t)

	r.send(cfg.ActionJump, actions.Performed, true)
	r.body.grounded = false
	r.step(t)

	assert.InDelta(t, (7+-12*dt)*dt, r.body.lastMove(t).Y(), 1e-12)
	assert.InDelta(t, 7+-12*dt, r.ctrl.VerticalVelocity(), 1e-12)
	assert.Equal(t, TransitionLeftGround, r.ctrl.LastTransition())
}

func TestJumpIsNotBufferedAcrossSteps(t *testing.T) {
	r := newRig(t, false)
	r.send(cfg.ActionJump, actions.Performed, true)
	r.step(t)

	r.body.grounded = true
	r.step(t)
	r.step(t)

	assert.Less(t, r.ctrl.VerticalVelocity(), 0.0)
}

func TestCeilingResetsRisingVelocity(t *testing.T) {
	r := newRig(t, true)
	r.step(t)
	r.send(cfg.ActionJump, actions.Performed, true)
	r.body.grounded = false
	r.body.flags = CollidedAbove

	r.step(t)

	assert.Equal(t, -2.0, r.ctrl.VerticalVelocity())
	assert.True(t, r.ctrl.LastFlags().Has(CollidedAbove))
}

func TestRunScenarioDisplacement(t *testing.T) {
	r := newRig(t, true)
	r.move(0, 1)
	r.send(cfg.ActionRun, actions.Started, true)

	r.step(t)

	d := r.body.lastMove(t)
	assert.InDelta(t, 8*dt, horizontal(d), 1e-12)
	assert.InDelta(t, 8*dt, d.Z(), 1e-12)
	assert.InDelta(t, 0, d.X(), 1e-12)
}

func TestSpeedPrecedence(t *testing.T) {
	cases := []struct {
		name   string
		run    bool
		crouch bool
		want   float64
	}{
		{"walk", false, false, 5},
		{"run", true, false, 8},
		{"crouch", false, true, 2},
		{"crouch_wins_over_run", true, true, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t, true)
			r.move(1, 0)
			if c.run {
				r.send(cfg.ActionRun, actions.Started, true)
			}
			if c.crouch {
				r.send(cfg.ActionCrouch, actions.Started, true)
				r.send(cfg.ActionCrouch, actions.Canceled, false)
			}
			r.step(t)

			assert.Equal(t, c.run, r.ctrl.Running())
			assert.Equal(t, c.crouch, r.ctrl.Crouching())
			assert.InDelta(t, c.want*dt, horizontal(r.body.lastMove(t)), 1e-12)
		})
	}
}

func TestRunReleaseReturnsToWalk(t *testing.T) {
	r := newRig(t, true)
	r.move(0, 1)
	r.send(cfg.ActionRun, actions.Started, true)
	r.step(t)
	r.send(cfg.ActionRun, actions.Canceled, false)
	r.step(t)

	assert.False(t, r.ctrl.Running())
	assert.InDelta(t, 5*dt, horizontal(r.body.lastMove(t)), 1e-12)
}

func TestMovementFollowsCamera(t *testing.T) {
	r := newRig(t, true)
	r.camera.yaw = 90
	r.camera.pitch = 45
	r.move(0, 1)

	r.step(t)

	d := r.body.lastMove(t)
	assert.InDelta(t, 5*dt, d.X(), 1e-9)
	assert.InDelta(t, 0, d.Z(), 1e-9)
}

func TestMoveCanceledStops(t *testing.T) {
	r := newRig(t, true)
	r.move(0.3, 0.3)
	r.step(t)
	require.Greater(t, horizontal(r.body.lastMove(t)), 0.0)

	r.acts.Dispatch(actions.Event{Action: cfg.ActionMove, Phase: actions.Canceled, Vector: math.Vec2{X: 0.3, Y: 0.3}})
	r.step(t)

	assert.Equal(t, 0.0, horizontal(r.body.lastMove(t)))
	assert.Equal(t, math.Vec2{}, r.ctrl.MoveInput())
}

func TestLookingStraightDownDoesNotMove(t *testing.T) {
	r := newRig(t, true)
	r.camera.pitch = 90
	r.move(0, 1)

	r.step(t)

	d := r.body.lastMove(t)
	assert.Equal(t, 0.0, horizontal(d))
	assert.False(t, gomath.IsNaN(d.Y()))
}

func TestCrouchToggleRoundTrip(t *testing.T) {
	t.Run("across_steps", func(t *testing.T) {
		r := newRig(t, true)
		r.send(cfg.ActionCrouch, actions.Canceled, false)
		r.step(t)
		assert.Equal(t, 1.0, r.ctrl.TargetHeight())

		r.send(cfg.ActionCrouch, actions.Canceled, false)
		r.step(t)
		assert.Equal(t, 2.0, r.ctrl.TargetHeight())
		assert.False(t, r.ctrl.Crouching())
	})

	t.Run("within_one_step", func(t *testing.T) {
		r := newRig(t, true)
		r.send(cfg.ActionCrouch, actions.Canceled, false)
		r.send(cfg.ActionCrouch, actions.Canceled, false)
		r.step(t)
		assert.Equal(t, 2.0, r.ctrl.TargetHeight())
	})

	t.Run("press_alone_does_nothing", func(t *testing.T) {
		r := newRig(t, true)
		r.send(cfg.ActionCrouch, actions.Started, true)
		r.step(t)
		assert.False(t, r.ctrl.Crouching())
	})
}

func TestCrouchHoldMode(t *testing.T) {
	r := newRig(t, true, func(m *cfg.MovementConfig) { m.CrouchMode = cfg.CrouchHold })

	r.send(cfg.ActionCrouch, actions.Started, true)
	r.step(t)
	assert.True(t, r.ctrl.Crouching())

	r.step(t)
	assert.True(t, r.ctrl.Crouching())

	r.send(cfg.ActionCrouch, actions.Canceled, false)
	r.step(t)
	assert.False(t, r.ctrl.Crouching())
}

func TestStandUpNeedsHeadroom(t *testing.T) {
	newBlockedRig := func(t *testing.T, mode cfg.CrouchMode) (*Controller, *lowCeilingBody, *actions.Map) {
		t.Helper()
		m := cfg.DefaultMovement()
		m.CrouchMode = mode
		body := &lowCeilingBody{fakeBody: newFakeBody(m.StandingHeight, true), clear: true}
		cam := &fakeCamera{local: vector.Vector{0, 1.6, 0}}
		ctrl, err := New(m, body, cam)
		require.NoError(t, err)
		acts := actions.NewMap()
		require.NoError(t, ctrl.Enable(acts))
		return ctrl, body, acts
	}
	toggle := actions.Event{Action: cfg.ActionCrouch, Phase: actions.Canceled}

	t.Run("toggle_retried_once_clear", func(t *testing.T) {
		ctrl, body, acts := newBlockedRig(t, cfg.CrouchToggle)
		acts.Dispatch(toggle)
		require.NoError(t, ctrl.Step(dt))
		require.True(t, ctrl.Crouching())

		body.clear = false
		acts.Dispatch(toggle)
		for i := 0; i < 3; i++ {
			require.NoError(t, ctrl.Step(dt))
			assert.True(t, ctrl.Crouching())
			assert.Equal(t, 1.0, ctrl.TargetHeight())
		}

		body.clear = true
		require.NoError(t, ctrl.Step(dt))
		assert.False(t, ctrl.Crouching())
		assert.Equal(t, 2.0, ctrl.TargetHeight())
	})

	t.Run("toggle_again_cancels_pending_stand", func(t *testing.T) {
		ctrl, body, acts := newBlockedRig(t, cfg.CrouchToggle)
		acts.Dispatch(toggle)
		require.NoError(t, ctrl.Step(dt))

		body.clear = false
		acts.Dispatch(toggle)
		require.NoError(t, ctrl.Step(dt))
		acts.Dispatch(toggle)
		require.NoError(t, ctrl.Step(dt))

		body.clear = true
		require.NoError(t, ctrl.Step(dt))
		assert.True(t, ctrl.Crouching())
	})

	t.Run("hold_retried_once_clear", func(t *testing.T) {
		ctrl, body, acts := newBlockedRig(t, cfg.CrouchHold)
		acts.Dispatch(actions.Event{Action: cfg.ActionCrouch, Phase: actions.Started, Active: true})
		require.NoError(t, ctrl.Step(dt))
		require.True(t, ctrl.Crouching())

		body.clear = false
		acts.Dispatch(toggle)
		require.NoError(t, ctrl.Step(dt))
		assert.True(t, ctrl.Crouching())

		body.clear = true
		require.NoError(t, ctrl.Step(dt))
		assert.False(t, ctrl.Crouching())
	})
}

func TestStanceTransition(t *testing.T) {
	r := newRig(t, true)
	r.send(cfg.ActionCrouch, actions.Canceled, false)

	r.step(t)

	wantHeight := 2 + (1-2)*10*dt
	assert.InDelta(t, wantHeight, r.body.height, 1e-12)
	assert.InDelta(t, wantHeight/2, r.body.center.Y(), 1e-12)
	assert.InDelta(t, 1.6+(0.6-1.6)*10*dt, r.camera.local.Y(), 1e-12)

	for i := 0; i < 200; i++ {
		r.step(t)
	}
	assert.Equal(t, 1.0, r.body.height)
	assert.Equal(t, 0.5, r.body.center.Y())
}

func TestStanceIdempotentAtRest(t *testing.T) {
	r := newRig(t, true)
	r.ctrl.setCrouching(true)
	r.body.height = 1.005
	camBefore := r.camera.local

	for i := 0; i < 10; i++ {
		r.step(t)
		assert.Equal(t, 1.0, r.body.height)
	}
	assert.Equal(t, camBefore, r.camera.local)
}

func TestInvalidStepDelta(t *testing.T) {
	r := newRig(t, true)
	for _, bad := range []float64{0, -dt, gomath.NaN()} {
		assert.ErrorIs(t, r.ctrl.Step(bad), ErrInvalidStep)
	}
	assert.Empty(t, r.body.moves)
}

func TestLongStepIsClamped(t *testing.T) {
	r := newRig(t, false)
	r.move(0, 1)

	require.NoError(t, r.ctrl.Step(1.0))

	assert.InDelta(t, 5*0.1, horizontal(r.body.lastMove(t)), 1e-12)
	assert.InDelta(t, -12*0.1, r.ctrl.VerticalVelocity(), 1e-12)
}

func TestEnableDisableLifecycle(t *testing.T) {
	body := newFakeBody(2, true)
	cam := &fakeCamera{local: vector.Vector{0, 1.6, 0}}
	ctrl, err := New(cfg.DefaultMovement(), body, cam)
	require.NoError(t, err)
	acts := actions.NewMap()

	assert.ErrorIs(t, ctrl.Enable(nil), ErrNilActions)
	require.NoError(t, ctrl.Enable(acts))
	require.NoError(t, ctrl.Enable(acts))

	for _, a := range []cfg.ActionID{cfg.ActionMove, cfg.ActionJump, cfg.ActionRun, cfg.ActionCrouch} {
		assert.Equal(t, 1, acts.Count(a), a.String())
	}

	ctrl.Disable()
	ctrl.Disable()
	for _, a := range []cfg.ActionID{cfg.ActionMove, cfg.ActionJump, cfg.ActionRun, cfg.ActionCrouch} {
		assert.Equal(t, 0, acts.Count(a), a.String())
	}
	assert.False(t, ctrl.Enabled())

	acts.Dispatch(actions.Event{Action: cfg.ActionMove, Phase: actions.Performed, Vector: math.Vec2{Y: 1}})
	require.NoError(t, ctrl.Step(dt))
	assert.Empty(t, body.moves)

	require.NoError(t, ctrl.Enable(acts))
	require.NoError(t, ctrl.Step(dt))
	assert.Equal(t, 0.0, horizontal(body.lastMove(t)))
}

func TestResetClearsVelocity(t *testing.T) {
	r := newRig(t, false)
	r.step(t)
	r.send(cfg.ActionJump, actions.Performed, true)

	r.ctrl.Reset()

	assert.Equal(t, 0.0, r.ctrl.VerticalVelocity())
	assert.Equal(t, Airborne, r.ctrl.Ground())
	assert.False(t, r.ctrl.pending.jump)
}

package factory

import (
	"testing"

	"github.com/automoto/tiefling/actions"
	"github.com/automoto/tiefling/components"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/motion"
	"github.com/automoto/tiefling/shared/leveldata"
	"github.com/automoto/tiefling/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const tick = 1.0 / 60.0

func testArena() *leveldata.ArenaData {
	return &leveldata.ArenaData{
		Name:  "test",
		Width: 20,
		Depth: 20,
		Blocks: []leveldata.BlockRect{
			{X: 10, Z: 0, W: 1, D: 20, MinY: 0, MaxY: 3},
		},
		Elevators: []leveldata.ElevatorRect{
			{BlockRect: leveldata.BlockRect{X: 2, Z: 2, W: 2, D: 2, MinY: 0, MaxY: 0.2}, Travel: 2, Period: 4},
		},
		Spawns: []leveldata.SpawnPoint{{X: 5, Y: 1, Z: 10, Yaw: 90}},
	}
}

func newWorld(t *testing.T) (*ecs.ECS, *actions.Map, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	arena := testArena()
	CreateLevel(e, arena)

	m := actions.NewMap()
	player, err := CreatePlayer(e, arena.Spawns[0], m)
	require.NoError(t, err)
	return e, m, player
}

func steps(t *testing.T, player *donburi.Entry, n int) {
	t.Helper()
	ctrl := components.Motion.Get(player)
	for i := 0; i < n; i++ {
		require.NoError(t, ctrl.Step(tick))
	}
}

func TestCreateLevelPopulatesWorld(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateLevel(e, testArena())

	blocks, elevators := 0, 0
	tags.Block.Each(e.World, func(*donburi.Entry) { blocks++ })
	tags.Elevator.Each(e.World, func(*donburi.Entry) { elevators++ })
	assert.Equal(t, 2, blocks)
	assert.Equal(t, 1, elevators)

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	assert.Len(t, components.Space.Get(spaceEntry).Objects(), 2)
}

func TestCreatePlayerNeedsSpace(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	_, err := CreatePlayer(e, leveldata.SpawnPoint{}, actions.NewMap())
	assert.Error(t, err)
}

func TestCreatePlayerRejectsInvalidTuning(t *testing.T) {
	saved := cfg.Movement
	t.Cleanup(func() { cfg.Movement = saved })
	cfg.Movement.Gravity = 1

	e := ecs.NewECS(donburi.NewWorld())
	CreateLevel(e, testArena())
	_, err := CreatePlayer(e, testArena().Spawns[0], actions.NewMap())
	require.ErrorIs(t, err, cfg.ErrInvalidMovement)

	players := 0
	tags.Player.Each(e.World, func(*donburi.Entry) { players++ })
	assert.Zero(t, players)
}

func TestPlayerFallsAndLands(t *testing.T) {
	_, _, player := newWorld(t)
	ctrl := components.Motion.Get(player)
	capsule := components.Capsule.Get(player)

	assert.True(t, ctrl.Enabled())
	steps(t, player, 60)

	assert.Equal(t, motion.Grounded, ctrl.Ground())
	assert.Equal(t, 0.0, capsule.Position().Y())
}

func TestPlayerWalksIntoWall(t *testing.T) {
	_, m, player := newWorld(t)
	capsule := components.Capsule.Get(player)
	steps(t, player, 60)

	// Yaw 90 faces +X, toward the wall at x=10.
	m.Dispatch(actions.Event{Action: cfg.ActionMove, Phase: actions.Performed, Vector: math.Vec2{X: 0, Y: 1}, Active: true})
	steps(t, player, 120)

	ctrl := components.Motion.Get(player)
	assert.InDelta(t, 10-cfg.Level.CapsuleRadius, capsule.Position().X(), 1e-9)
	assert.InDelta(t, 10.0, capsule.Position().Z(), 1e-9)
	assert.True(t, ctrl.LastFlags().Has(motion.CollidedSides))
}

func TestPlayerJumps(t *testing.T) {
	_, m, player := newWorld(t)
	capsule := components.Capsule.Get(player)
	steps(t, player, 60)
	require.Equal(t, 0.0, capsule.Position().Y())

	m.Dispatch(actions.Event{Action: cfg.ActionJump, Phase: actions.Performed, Active: true})
	steps(t, player, 10)
	assert.Greater(t, capsule.Position().Y(), 0.5)

	steps(t, player, 120)
	assert.Equal(t, 0.0, capsule.Position().Y())
	assert.Equal(t, motion.Grounded, components.Motion.Get(player).Ground())
}

func TestPlayerCrouchesAndStands(t *testing.T) {
	_, m, player := newWorld(t)
	capsule := components.Capsule.Get(player)
	rig := components.CameraRig.Get(player)
	steps(t, player, 60)

	m.Dispatch(actions.Event{Action: cfg.ActionCrouch, Phase: actions.Canceled})
	steps(t, player, 60)
	assert.Equal(t, cfg.Movement.CrouchHeight, capsule.Height())
	assert.InDelta(t, cfg.Movement.CrouchHeight-cfg.Movement.CameraOffset, rig.Local.Y(), 0.02)

	m.Dispatch(actions.Event{Action: cfg.ActionCrouch, Phase: actions.Canceled})
	steps(t, player, 60)
	assert.Equal(t, cfg.Movement.StandingHeight, capsule.Height())
}

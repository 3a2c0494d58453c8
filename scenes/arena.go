package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tiefling/actions"
	cfg "github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/config/keybinds"
	"github.com/automoto/tiefling/shared/leveldata"
	"github.com/automoto/tiefling/systems"
	"github.com/automoto/tiefling/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one first-person player in an arena.
type ArenaScene struct {
	ecs   *ecs.ECS
	arena *leveldata.ArenaData
	scope actions.Scope
	once  sync.Once
}

func NewArenaScene(arena *leveldata.ArenaData) *ArenaScene {
	return &ArenaScene{arena: arena}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	if keybinds.Input.CaptureCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then everything that reads it
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.DispatchActions)
	ecs.AddSystem(systems.UpdateLook)
	ecs.AddSystem(systems.UpdateElevators)
	ecs.AddSystem(systems.UpdateMotion)
	ecs.AddSystem(systems.UpdateRespawn)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	as.ecs = ecs

	m := systems.SetupActions(as.ecs)
	systems.SetupDebugToggle(as.ecs, m, &as.scope)

	factory.CreateLevel(as.ecs, as.arena)

	spawn := as.arena.Spawns[0]
	if _, err := factory.CreatePlayer(as.ecs, spawn, m); err != nil {
		log.Fatalf("Failed to create player: %v", err)
	}
}

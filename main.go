package main

import (
	"flag"
	"image"
	"log"
	"path/filepath"

	"github.com/automoto/tiefling/assets"
	"github.com/automoto/tiefling/config"
	"github.com/automoto/tiefling/scenes"
	"github.com/automoto/tiefling/shared/leveldata"
	"github.com/automoto/tiefling/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(arena *leveldata.ArenaData) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(arena),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadArena prefers the embedded level of that name and falls back to disk.
func loadArena(path string) (*leveldata.ArenaData, error) {
	arena, err := assets.NewLevelLoader().LoadLevel(path)
	if err == nil {
		return arena, nil
	}
	log.Printf("%s is not an embedded level, reading from disk", path)
	return assets.NewDirLevelLoader(filepath.Dir(path)).LoadLevel(filepath.Base(path))
}

func main() {
	tuning := flag.String("tuning", "", "YAML file overriding movement and look tuning")
	level := flag.String("level", config.Level.Default, "arena TMX to load")
	debug := flag.Bool("debug", false, "show the debug overlay and log ground transitions")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if *debug {
		config.Debug.ShowOverlay = true
		config.Debug.LogMotion = true
	}

	arena, err := loadArena(*level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("tiefling")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(arena)); err != nil {
		log.Fatal(err)
	}
}

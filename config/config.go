package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the arena scene.
const Default ecs.LayerID = iota

// ErrInvalidMovement is wrapped by MovementConfig.Validate.
var ErrInvalidMovement = errors.New("invalid movement config")

type Config struct {
	Width  int
	Height int
}

// CrouchMode selects how the crouch action drives the stance.
type CrouchMode int

const (
	CrouchToggle CrouchMode = iota // toggle on button release
	CrouchHold                     // crouched while held
)

func (m CrouchMode) String() string {
	switch m {
	case CrouchToggle:
		return "toggle"
	case CrouchHold:
		return "hold"
	default:
		return fmt.Sprintf("CrouchMode(%d)", int(m))
	}
}

// ParseCrouchMode converts the tuning-file spelling into a CrouchMode.
func ParseCrouchMode(s string) (CrouchMode, error) {
	switch s {
	case "toggle", "":
		return CrouchToggle, nil
	case "hold":
		return CrouchHold, nil
	default:
		return CrouchToggle, fmt.Errorf("unknown crouch mode %q", s)
	}
}

// MovementConfig contains the tunables of the first-person motion controller.
// Distances are in world units (metres), times in seconds.
type MovementConfig struct {
	// Speed
	WalkSpeed   float64
	RunSpeed    float64
	CrouchSpeed float64

	// Jumping
	JumpForce           float64
	Gravity             float64 // negative, 9.8 felt too floaty
	InitialFallVelocity float64 // small negative speed that keeps the capsule pressed to the floor

	// Stance
	StandingHeight        float64
	CrouchHeight          float64
	CrouchTransitionSpeed float64 // lerp rate per second
	CameraOffset          float64 // distance from capsule top down to the eye
	StanceSnapThreshold   float64
	CrouchMode            CrouchMode

	// Step
	MaxStepDelta float64 // longer steps are clamped to this
}

// Validate reports the first tunable that would make the controller misbehave.
func (m MovementConfig) Validate() error {
	if name, ok := firstNonFinite(m.floats()); ok {
		return fmt.Errorf("%w: %s must be finite", ErrInvalidMovement, name)
	}
	switch {
	case m.WalkSpeed <= 0 || m.RunSpeed <= 0 || m.CrouchSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidMovement)
	case m.JumpForce <= 0:
		return fmt.Errorf("%w: jump force must be positive", ErrInvalidMovement)
	case m.Gravity >= 0:
		return fmt.Errorf("%w: gravity must be negative, got %v", ErrInvalidMovement, m.Gravity)
	case m.InitialFallVelocity > 0:
		return fmt.Errorf("%w: initial fall velocity must not be positive", ErrInvalidMovement)
	case m.CrouchHeight <= 0 || m.CrouchHeight >= m.StandingHeight:
		return fmt.Errorf("%w: need 0 < crouch height (%v) < standing height (%v)",
			ErrInvalidMovement, m.CrouchHeight, m.StandingHeight)
	case m.CameraOffset < 0 || m.CameraOffset >= m.CrouchHeight:
		return fmt.Errorf("%w: need 0 <= camera offset (%v) < crouch height (%v)",
			ErrInvalidMovement, m.CameraOffset, m.CrouchHeight)
	case m.CrouchTransitionSpeed <= 0:
		return fmt.Errorf("%w: crouch transition speed must be positive", ErrInvalidMovement)
	case m.StanceSnapThreshold <= 0:
		return fmt.Errorf("%w: stance snap threshold must be positive", ErrInvalidMovement)
	case m.MaxStepDelta <= 0:
		return fmt.Errorf("%w: max step delta must be positive", ErrInvalidMovement)
	}
	return nil
}

type namedFloat struct {
	name  string
	value float64
}

func (m MovementConfig) floats() []namedFloat {
	return []namedFloat{
		{"walk speed", m.WalkSpeed},
		{"run speed", m.RunSpeed},
		{"crouch speed", m.CrouchSpeed},
		{"jump force", m.JumpForce},
		{"gravity", m.Gravity},
		{"initial fall velocity", m.InitialFallVelocity},
		{"standing height", m.StandingHeight},
		{"crouch height", m.CrouchHeight},
		{"crouch transition speed", m.CrouchTransitionSpeed},
		{"camera offset", m.CameraOffset},
		{"stance snap threshold", m.StanceSnapThreshold},
		{"max step delta", m.MaxStepDelta},
	}
}

// firstNonFinite returns the name of the first NaN or infinite value.
func firstNonFinite(fs []namedFloat) (string, bool) {
	for _, f := range fs {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return f.name, true
		}
	}
	return "", false
}

// LookConfig contains camera look settings
type LookConfig struct {
	MouseSensitivity float64 // degrees per pixel
	StickSensitivity float64 // degrees per second at full deflection
	TurnSpeed        float64 // degrees per second for keyboard turning
	InvertY          bool
	MaxPitch         float64 // degrees
}

// Validate rejects non-finite sensitivities and a pitch limit outside (0, 90).
func (l LookConfig) Validate() error {
	if name, ok := firstNonFinite([]namedFloat{
		{"mouse sensitivity", l.MouseSensitivity},
		{"stick sensitivity", l.StickSensitivity},
		{"turn speed", l.TurnSpeed},
		{"max pitch", l.MaxPitch},
	}); ok {
		return fmt.Errorf("look: %s must be finite", name)
	}
	if l.MaxPitch <= 0 || l.MaxPitch >= 90 {
		return fmt.Errorf("look: max pitch must be in (0, 90), got %v", l.MaxPitch)
	}
	return nil
}

// LevelConfig contains arena and host collision settings
type LevelConfig struct {
	Default       string  // level file loaded at startup
	PixelsPerUnit float64 // Tiled pixels per world unit
	CellSize      int     // resolv cell size in world units
	FloorY        float64 // ground plane height
	KillY         float64 // falling below this respawns the player
	CapsuleRadius float64
	StepOffset    float64 // ledges up to this height are stepped onto
	Skin          float64 // contact tolerance
	SpawnYaw      float64 // used when the spawn point has no yaw
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool // draw the top-down collision overlay
	LogMotion   bool // log ground transitions
}

// Overlay colors
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Global configuration instances
var C *Config
var Movement MovementConfig
var Look LookConfig
var Level LevelConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Movement = DefaultMovement()

	Look = LookConfig{
		MouseSensitivity: 0.15,
		StickSensitivity: 180.0,
		TurnSpeed:        120.0,
		InvertY:          false,
		MaxPitch:         89.0,
	}

	Level = LevelConfig{
		Default:       "levels/arena.tmx",
		PixelsPerUnit: 16.0,
		CellSize:      1,
		FloorY:        0.0,
		KillY:         -20.0,
		CapsuleRadius: 0.4,
		StepOffset:    0.3,
		Skin:          0.001,
		SpawnYaw:      0.0,
	}

	Debug = DebugConfig{
		ShowOverlay: true,
		LogMotion:   false,
	}
}

// DefaultMovement returns the stock movement tuning.
func DefaultMovement() MovementConfig {
	return MovementConfig{
		WalkSpeed:   5.0,
		RunSpeed:    8.0,
		CrouchSpeed: 2.0,

		JumpForce:           7.0,
		Gravity:             -12.0,
		InitialFallVelocity: -2.0,

		StandingHeight:        2.0,
		CrouchHeight:          1.0,
		CrouchTransitionSpeed: 10.0,
		CameraOffset:          0.4,
		StanceSnapThreshold:   0.01,
		CrouchMode:            CrouchToggle,

		MaxStepDelta: 0.1,
	}
}

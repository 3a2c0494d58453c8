package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningSpec is the on-disk shape of a tuning file. Every field is optional;
// absent fields keep their current value.
type TuningSpec struct {
	Movement *MovementSpec `yaml:"movement"`
	Look     *LookSpec     `yaml:"look"`
}

type MovementSpec struct {
	WalkSpeed             *float64 `yaml:"walk_speed"`
	RunSpeed              *float64 `yaml:"run_speed"`
	CrouchSpeed           *float64 `yaml:"crouch_speed"`
	JumpForce             *float64 `yaml:"jump_force"`
	Gravity               *float64 `yaml:"gravity"`
	InitialFallVelocity   *float64 `yaml:"initial_fall_velocity"`
	StandingHeight        *float64 `yaml:"standing_height"`
	CrouchHeight          *float64 `yaml:"crouch_height"`
	CrouchTransitionSpeed *float64 `yaml:"crouch_transition_speed"`
	CameraOffset          *float64 `yaml:"camera_offset"`
	StanceSnapThreshold   *float64 `yaml:"stance_snap_threshold"`
	CrouchMode            *string  `yaml:"crouch_mode"`
	MaxStepDelta          *float64 `yaml:"max_step_delta"`
}

type LookSpec struct {
	MouseSensitivity *float64 `yaml:"mouse_sensitivity"`
	StickSensitivity *float64 `yaml:"stick_sensitivity"`
	TurnSpeed        *float64 `yaml:"turn_speed"`
	InvertY          *bool    `yaml:"invert_y"`
	MaxPitch         *float64 `yaml:"max_pitch"`
}

// ParseTuning overlays the YAML document in data onto movement and look.
// The result is validated; on error neither input is modified.
func ParseTuning(data []byte, movement MovementConfig, look LookConfig) (MovementConfig, LookConfig, error) {
	var spec TuningSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return movement, look, fmt.Errorf("config: unmarshal tuning: %w", err)
	}

	m, l := movement, look
	if s := spec.Movement; s != nil {
		setFloat(&m.WalkSpeed, s.WalkSpeed)
		setFloat(&m.RunSpeed, s.RunSpeed)
		setFloat(&m.CrouchSpeed, s.CrouchSpeed)
		setFloat(&m.JumpForce, s.JumpForce)
		setFloat(&m.Gravity, s.Gravity)
		setFloat(&m.InitialFallVelocity, s.InitialFallVelocity)
		setFloat(&m.StandingHeight, s.StandingHeight)
		setFloat(&m.CrouchHeight, s.CrouchHeight)
		setFloat(&m.CrouchTransitionSpeed, s.CrouchTransitionSpeed)
		setFloat(&m.CameraOffset, s.CameraOffset)
		setFloat(&m.StanceSnapThreshold, s.StanceSnapThreshold)
		setFloat(&m.MaxStepDelta, s.MaxStepDelta)
		if s.CrouchMode != nil {
			mode, err := ParseCrouchMode(*s.CrouchMode)
			if err != nil {
				return movement, look, fmt.Errorf("config: tuning: %w", err)
			}
			m.CrouchMode = mode
		}
	}
	if s := spec.Look; s != nil {
		setFloat(&l.MouseSensitivity, s.MouseSensitivity)
		setFloat(&l.StickSensitivity, s.StickSensitivity)
		setFloat(&l.TurnSpeed, s.TurnSpeed)
		setFloat(&l.MaxPitch, s.MaxPitch)
		if s.InvertY != nil {
			l.InvertY = *s.InvertY
		}
	}

	if err := m.Validate(); err != nil {
		return movement, look, fmt.Errorf("config: tuning: %w", err)
	}
	if err := l.Validate(); err != nil {
		return movement, look, fmt.Errorf("config: tuning: %w", err)
	}
	return m, l, nil
}

// LoadTuning reads a tuning file and applies it to the global Movement and
// Look configs.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	m, l, err := ParseTuning(data, Movement, Look)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	Movement, Look = m, l
	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

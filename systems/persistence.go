package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/tiefling/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MouseSensitivity float64 `json:"mouseSensitivity"`
	InvertY          bool    `json:"invertY"`
	CrouchMode       string  `json:"crouchMode"`
	ShowDebug        bool    `json:"showDebug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tiefling",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the live configuration.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		MouseSensitivity: cfg.Look.MouseSensitivity,
		InvertY:          cfg.Look.InvertY,
		CrouchMode:       cfg.Movement.CrouchMode.String(),
		ShowDebug:        cfg.Debug.ShowOverlay,
	}
}

// SaveCurrentSettings saves the live configuration.
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// ApplySavedSettingsGlobal applies settings to the config globals.
// Used during startup before the scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if saved.MouseSensitivity > 0 {
		cfg.Look.MouseSensitivity = saved.MouseSensitivity
	}
	cfg.Look.InvertY = saved.InvertY
	cfg.Debug.ShowOverlay = saved.ShowDebug

	if saved.CrouchMode != "" {
		mode, err := cfg.ParseCrouchMode(saved.CrouchMode)
		if err != nil {
			log.Printf("Warning: Ignoring saved crouch mode: %v", err)
			return
		}
		cfg.Movement.CrouchMode = mode
	}
}

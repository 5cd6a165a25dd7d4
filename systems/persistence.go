package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	PresetIndex int  `json:"presetIndex"`
	Debug       bool `json:"debug"`
	Fullscreen  bool `json:"fullscreen"`
	IntroSeen   bool `json:"introSeen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dotgrid",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
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

// SaveCurrentSettings saves the settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(ToSavedSettings(s))
}

// ToSavedSettings converts the settings component to its stored form
func ToSavedSettings(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		PresetIndex: s.PresetIndex,
		Debug:       s.Debug,
		Fullscreen:  s.Fullscreen,
		IntroSeen:   s.IntroSeen,
	}
}

// ApplySavedSettings applies loaded settings to a mounted grid scene
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	settings := GetOrCreateSettings(e)
	settings.Debug = saved.Debug
	settings.Fullscreen = saved.Fullscreen
	settings.IntroSeen = saved.IntroSeen

	if saved.PresetIndex >= 0 && saved.PresetIndex < len(cfg.Settings.Presets) {
		ApplyPreset(e, saved.PresetIndex)
	}
}

// ApplySavedSettingsGlobal applies settings that do not need a scene.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// MarkIntroSeen records that the intro overlay was dismissed once
func MarkIntroSeen() {
	saved, _ := LoadSettings()
	if saved == nil {
		saved = &SavedSettings{PresetIndex: cfg.Settings.DefaultPresetIndex}
	}
	saved.IntroSeen = true
	_ = SaveSettings(saved)
}

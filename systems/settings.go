package systems

import (
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the keyboard toggles of the grid scene
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionTogglePanel).JustPressed {
		settings.PanelOpen = !settings.PanelOpen
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		SaveCurrentSettings(settings)
	}
	if GetAction(input, cfg.ActionNextPreset).JustPressed {
		CyclePreset(e, 1)
	}
	if GetAction(input, cfg.ActionPrevPreset).JustPressed {
		CyclePreset(e, -1)
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		SaveCurrentSettings(settings)
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		if settings.PanelOpen {
			settings.PanelOpen = false
			return
		}
		os.Exit(0)
	}
}

// GetOrCreateSettings returns the singleton settings, creating defaults if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			PresetIndex: cfg.Settings.DefaultPresetIndex,
		})
	}
	return components.Settings.Get(entry)
}

// CyclePreset switches the grid to the next (dir > 0) or previous preset
func CyclePreset(e *ecs.ECS, dir int) {
	n := len(cfg.Settings.Presets)
	if n == 0 {
		return
	}
	settings := GetOrCreateSettings(e)
	ApplyPreset(e, (settings.PresetIndex+dir+n)%n)
	SaveCurrentSettings(settings)
}

// ApplyPreset mounts the options of preset index on the grid
func ApplyPreset(e *ecs.ECS, index int) {
	if index < 0 || index >= len(cfg.Settings.Presets) {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.PresetIndex = index

	if grid, ok := GetGrid(e); ok {
		SetGridOptions(grid, cfg.Settings.Presets[index].Options)
	}
}

// PresetName returns the display name of the active preset
func PresetName(e *ecs.ECS) string {
	settings := GetOrCreateSettings(e)
	if settings.PresetIndex < 0 || settings.PresetIndex >= len(cfg.Settings.Presets) {
		return "Custom"
	}
	return cfg.Settings.Presets[settings.PresetIndex].Name
}

// AdjustProximity changes the hover radius by one tuning step
func AdjustProximity(e *ecs.ECS, dir int) {
	if grid, ok := GetGrid(e); ok {
		t := cfg.Settings.Tuning
		grid.Options.Proximity = math.Max(t.ProximityMin, grid.Options.Proximity+float64(dir)*t.ProximityStep)
	}
}

// AdjustShockStrength changes the click impulse by one tuning step
func AdjustShockStrength(e *ecs.ECS, dir int) {
	if grid, ok := GetGrid(e); ok {
		t := cfg.Settings.Tuning
		grid.Options.ShockStrength = math.Max(t.ShockStrengthMin, grid.Options.ShockStrength+float64(dir)*t.ShockStrengthStep)
	}
}

// AdjustReturnDuration changes the elastic return time by one tuning step
func AdjustReturnDuration(e *ecs.ECS, dir int) {
	if grid, ok := GetGrid(e); ok {
		t := cfg.Settings.Tuning
		grid.Options.ReturnDuration = math.Max(t.ReturnDurationMin, grid.Options.ReturnDuration+float64(dir)*t.ReturnDurationStep)
	}
}

// FormatProximity, FormatShockStrength and FormatReturnDuration render
// tuning values for the panel.
func FormatProximity(e *ecs.ECS) string {
	if grid, ok := GetGrid(e); ok {
		return fmt.Sprintf("%.0f px", grid.Options.Proximity)
	}
	return "-"
}

func FormatShockStrength(e *ecs.ECS) string {
	if grid, ok := GetGrid(e); ok {
		return fmt.Sprintf("%.1f", grid.Options.ShockStrength)
	}
	return "-"
}

func FormatReturnDuration(e *ecs.ECS) string {
	if grid, ok := GetGrid(e); ok {
		return fmt.Sprintf("%.2f s", grid.Options.ReturnDuration)
	}
	return "-"
}

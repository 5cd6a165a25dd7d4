package config

import "image/color"

// Preset is a named dot grid configuration, one per page that mounts the grid
type Preset struct {
	Name    string
	Options DotGridConfig
}

// TuningConfig contains the step sizes and limits of the tuning panel
type TuningConfig struct {
	ProximityStep      float64
	ProximityMin       float64
	ShockStrengthStep  float64
	ShockStrengthMin   float64
	ReturnDurationStep float64
	ReturnDurationMin  float64
}

// SettingsConfig contains preset and tuning configuration
type SettingsConfig struct {
	Presets            []Preset
	DefaultPresetIndex int
	Tuning             TuningConfig
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	selah := DotGrid
	selah.DotSize = 6
	selah.Gap = 12
	selah.BaseColor = "#8b8b93"
	selah.ActiveColor = "#6d4aff"
	selah.BaseAlpha = 0.05
	selah.ActiveAlpha = 0.6
	selah.Proximity = 130
	selah.ShockRadius = 260
	selah.ShockStrength = 4
	selah.ReturnDuration = 1
	selah.Class = "selah-hero"
	selah.Background = color.RGBA{R: 18, G: 16, B: 28, A: 255}

	paper := DotGrid
	paper.DotSize = 4
	paper.Gap = 16
	paper.BaseColor = "#1b1b1f"
	paper.ActiveColor = "#1828CA"
	paper.BaseAlpha = 0.12
	paper.ActiveAlpha = 0.8
	paper.Proximity = 120
	paper.Class = "case-study"
	paper.Background = Paper

	Settings = SettingsConfig{
		Presets: []Preset{
			{Name: "Default", Options: DotGrid},
			{Name: "Selah", Options: selah},
			{Name: "Paper", Options: paper},
		},
		DefaultPresetIndex: 0,
		Tuning: TuningConfig{
			ProximityStep:      10,
			ProximityMin:       10,
			ShockStrengthStep:  0.5,
			ShockStrengthMin:   0,
			ReturnDurationStep: 0.25,
			ReturnDurationMin:  0.25,
		},
	}
}

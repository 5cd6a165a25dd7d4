package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// SettingsData stores the viewer's toggles for the mounted grid
type SettingsData struct {
	PresetIndex int
	Debug       bool
	Fullscreen  bool
	IntroSeen   bool

	PanelOpen bool
	PanelRect image.Rectangle // screen area of the open panel, clicks here are not shocks
}

var Settings = donburi.NewComponentType[SettingsData]()

package components

import (
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// IntroData drives the intro overlay: scroll progress moves the camera
// through a depth field until the overlay is dismissed.
type IntroData struct {
	State     cfg.IntroStateID
	Progress  float64 // 0..1
	LastDelta float64 // sign tells the scroll direction
	CameraZ   float64
	Opacity   float64
	Fade      *gween.Tween

	FailsafeTimer float64 // seconds since the last failsafe check
	TouchY        float64
	Touching      bool
}

var Intro = donburi.NewComponentType[IntroData]()

// StarData is a point of the intro depth field
type StarData struct {
	X, Y, Z float64
}

// StarfieldData holds the intro depth field
type StarfieldData struct {
	Stars []StarData
}

var Starfield = donburi.NewComponentType[StarfieldData]()

package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// DotGridConfig is the option set a hosting page mounts the dot grid with.
type DotGridConfig struct {
	DotSize        float64 // diameter in pixels
	Gap            float64 // spacing between adjacent cells
	BaseColor      string  // hex, dots at rest
	ActiveColor    string  // hex, dots under the pointer
	BaseAlpha      float64
	ActiveAlpha    float64
	Proximity      float64 // hover highlight and displacement radius
	SpeedTrigger   float64 // px/sec needed before hover displaces dots
	ShockRadius    float64 // click impulse extent
	ShockStrength  float64 // click impulse multiplier
	MaxSpeed       float64 // px/sec clamp on pointer velocity
	ReturnDuration float64 // seconds for the elastic return to rest

	// Presentation hooks for the embedding context.
	Class      string
	Background color.RGBA
}

// MotionConfig holds the timing of pointer sampling and dot animations.
type MotionConfig struct {
	SampleInterval      time.Duration // pointer-move throttle
	FirstSampleInterval time.Duration // assumed elapsed time for the first sample
	HoverDuration       float64       // seconds to reach the hover push
	ShockDuration       float64       // seconds to reach the click push
	ElasticAmplitude    float64
	ElasticPeriod       float64
	BroadphaseCells     int // cells per grid cell edge for the dot index
}

// IntroConfig contains the scroll-driven intro overlay configuration
type IntroConfig struct {
	CameraStartZ     float64
	CameraEndZ       float64
	WheelPixels      float64 // pixels reported per wheel notch
	WheelScale       float64 // progress per wheel pixel
	TouchScale       float64 // progress per dragged pixel
	DismissProgress  float64
	FadeDuration     float64 // seconds
	FailsafeInterval float64 // seconds
	FocalLength      float64
	StarCount        int
	GradientTop      color.RGBA
	GradientBottom   color.RGBA
	TextColor        color.RGBA
	HintColor        color.RGBA
	Title            string
	Hint             string
}

// DebugOverlayConfig contains colours for the F3 overlay
type DebugOverlayConfig struct {
	ProximityColor color.RGBA
	ShockColor     color.RGBA
	BoundsColor    color.RGBA
	TextColor      color.RGBA
	TextBgColor    color.RGBA
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var DotGrid DotGridConfig
var Motion MotionConfig
var Intro IntroConfig
var DebugOverlay DebugOverlayConfig
var Debug DebugConfig

type DebugConfig struct {
	SkipIntro bool // Skip the intro overlay and mount the grid directly
}

// Render layers
const (
	LayerBackground ecs.LayerID = iota
	LayerDots
	LayerOverlay
)

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ink          = color.RGBA{R: 11, G: 11, B: 16, A: 255}
	Paper        = color.RGBA{R: 250, G: 250, B: 252, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 160}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 120}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 200}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	// Defaults of the embeddable component
	DotGrid = DotGridConfig{
		DotSize:        16,
		Gap:            32,
		BaseColor:      "#5227FF",
		ActiveColor:    "#5227FF",
		BaseAlpha:      0.08,
		ActiveAlpha:    0.45,
		Proximity:      150,
		SpeedTrigger:   100,
		ShockRadius:    250,
		ShockStrength:  5,
		MaxSpeed:       5000,
		ReturnDuration: 1.5,
		Class:          "dot-grid",
		Background:     Ink,
	}

	Motion = MotionConfig{
		SampleInterval:      50 * time.Millisecond,
		FirstSampleInterval: 16 * time.Millisecond,
		HoverDuration:       0.2,
		ShockDuration:       0.3,
		ElasticAmplitude:    1,
		ElasticPeriod:       0.75,
		BroadphaseCells:     4,
	}

	Intro = IntroConfig{
		CameraStartZ:     1523,
		CameraEndZ:       -2020,
		WheelPixels:      100,
		WheelScale:       0.002,
		TouchScale:       0.004,
		DismissProgress:  0.98,
		FadeDuration:     0.7,
		FailsafeInterval: 0.5,
		FocalLength:      600,
		StarCount:        320,
		GradientTop:      color.RGBA{R: 0x18, G: 0x28, B: 0xCA, A: 255},
		GradientBottom:   color.RGBA{R: 0x03, G: 0x0A, B: 0x48, A: 255},
		TextColor:        White,
		HintColor:        color.RGBA{R: 255, G: 255, B: 255, A: 200},
		Title:            "Scroll to begin",
		Hint:             "Wheel or drag to fly in   Enter: Skip",
	}

	DebugOverlay = DebugOverlayConfig{
		ProximityColor: Cyan,
		ShockColor:     Magenta,
		BoundsColor:    Grey,
		TextColor:      White,
		TextBgColor:    BlackOverlay,
	}

	Debug = DebugConfig{
		SkipIntro: false,
	}
}

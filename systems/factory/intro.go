package factory

import (
	"math/rand/v2"

	"github.com/selahstudio/dotgrid/archetypes"
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Depth field extent in world units
const (
	starSpread = 1400.0
	starNearZ  = 1400.0
	starFarZ   = -2600.0
)

// CreateIntro spawns the intro overlay with its camera at the start of the flight.
func CreateIntro(ecs *ecs.ECS) *donburi.Entry {
	intro := archetypes.Intro.Spawn(ecs)
	components.Intro.SetValue(intro, components.IntroData{
		State:   cfg.IntroActive,
		CameraZ: cfg.Intro.CameraStartZ,
		Opacity: 1,
	})

	// Fixed seed so the flight looks the same on every visit.
	rng := rand.New(rand.NewPCG(1523, 2020))
	stars := make([]components.StarData, cfg.Intro.StarCount)
	for i := range stars {
		stars[i] = components.StarData{
			X: (rng.Float64()*2 - 1) * starSpread,
			Y: (rng.Float64()*2 - 1) * starSpread,
			Z: starFarZ + rng.Float64()*(starNearZ-starFarZ),
		}
	}
	components.Starfield.SetValue(intro, components.StarfieldData{Stars: stars})

	return intro
}

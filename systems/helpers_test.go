package systems

import (
	"time"

	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	tick = 1.0 / 60
	eps  = 1e-6
)

// mockClock is a manually advanced Clock
type mockClock struct {
	now time.Time
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time {
	return c.now
}

func (c *mockClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// fakePointer is a scripted PointerReader
type fakePointer struct {
	x, y    float64
	present bool
	pressed bool
	px, py  float64
}

func (p *fakePointer) Position() (float64, float64, bool) {
	return p.x, p.y, p.present
}

func (p *fakePointer) Pressed() (float64, float64, bool) {
	if !p.pressed {
		return 0, 0, false
	}
	p.pressed = false
	return p.px, p.py, true
}

func (p *fakePointer) MoveTo(x, y float64) {
	p.x, p.y = x, y
	p.present = true
}

func (p *fakePointer) Click(x, y float64) {
	p.px, p.py = x, y
	p.pressed = true
}

// smallGridOptions is the 300x300 reference setup: 15x15 dots
func smallGridOptions() cfg.DotGridConfig {
	opts := cfg.DotGrid
	opts.DotSize = 10
	opts.Gap = 10
	opts.Proximity = 50
	opts.SpeedTrigger = 100
	opts.ShockRadius = 250
	opts.ShockStrength = 5
	opts.MaxSpeed = 5000
	opts.ReturnDuration = 1.5
	return opts
}

func newTestWorld(opts cfg.DotGridConfig, width, height int) (*ecs.ECS, *components.GridData) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateGrid(e, opts)
	SetViewport(e, width, height)
	UpdateGrid(e)

	grid, _ := GetGrid(e)
	return e, grid
}

// settle advances the grid until every dot is at rest or steps run out
func settle(grid *components.GridData, steps int) int {
	for i := 0; i < steps; i++ {
		if ActiveAnimations(grid) == 0 {
			return i
		}
		AdvanceDots(grid, tick)
	}
	return steps
}

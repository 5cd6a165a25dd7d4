package systems

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/gridmath"
	"github.com/yohamta/donburi/ecs"
)

// PointerReader reports pointer input in canvas coordinates
type PointerReader interface {
	// Position returns the current pointer position; ok is false when no
	// pointer is available.
	Position() (x, y float64, ok bool)
	// Pressed returns the position of a click or tap that started this tick.
	Pressed() (x, y float64, ok bool)
}

// EbitenPointer reads the mouse, or the first touch when one is active
type EbitenPointer struct {
	touchIDs []ebiten.TouchID
}

func (p *EbitenPointer) Position() (float64, float64, bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(p.touchIDs[0])
		return float64(x), float64(y), true
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), true
}

func (p *EbitenPointer) Pressed() (float64, float64, bool) {
	// Any button counts as a click.
	for _, btn := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if inpututil.IsMouseButtonJustPressed(btn) {
			x, y := ebiten.CursorPosition()
			return float64(x), float64(y), true
		}
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(p.touchIDs[0])
		return float64(x), float64(y), true
	}
	return 0, 0, false
}

// NewUpdatePointer creates the hover system. Pointer moves are sampled at
// most once per cfg.Motion.SampleInterval; a sample fast enough pushes the
// dots around the pointer.
func NewUpdatePointer(src PointerReader, clock Clock) ecs.System {
	return func(e *ecs.ECS) {
		grid, ok := GetGrid(e)
		if !ok {
			return
		}

		x, y, ok := src.Position()
		if !ok {
			return
		}

		pointer := GetOrCreatePointer(e)
		if pointer.Seen && x == pointer.RawX && y == pointer.RawY {
			return // no movement, no event
		}
		pointer.RawX, pointer.RawY = x, y

		now := clock.Now()
		if !pointer.LastCall.IsZero() && now.Sub(pointer.LastCall) < cfg.Motion.SampleInterval {
			return
		}
		pointer.LastCall = now

		SamplePointer(pointer, x, y, now, grid.Options.MaxSpeed)
		HoverDisplace(grid, pointer)
	}
}

// SamplePointer records a processed pointer sample and derives its velocity
// from the previous one. Speed is clamped to maxSpeed.
func SamplePointer(p *components.PointerData, x, y float64, now time.Time, maxSpeed float64) {
	dt := cfg.Motion.FirstSampleInterval
	if !p.LastTime.IsZero() {
		dt = now.Sub(p.LastTime)
	}
	if dt <= 0 {
		dt = cfg.Motion.FirstSampleInterval
	}
	secs := dt.Seconds()

	vx := (x - p.LastX) / secs
	vy := (y - p.LastY) / secs
	speed := math.Hypot(vx, vy)
	if speed > maxSpeed {
		scale := maxSpeed / speed
		vx *= scale
		vy *= scale
		speed = maxSpeed
	}

	p.LastTime = now
	p.LastX, p.LastY = x, y
	p.VX, p.VY = vx, vy
	p.Speed = speed
	p.X, p.Y = x, y
	p.Seen = true
}

// HoverDisplace pushes every dot near a pointer that moves faster than the
// speed trigger.
func HoverDisplace(grid *components.GridData, p *components.PointerData) {
	opts := grid.Options
	if p.Speed <= opts.SpeedTrigger {
		return
	}

	center := gridmath.Point{X: p.X, Y: p.Y}
	velocity := gridmath.Point{X: p.VX, Y: p.VY}
	maxOffset := gridmath.HoverMaxOffset(opts.Gap, opts.DotSize)

	dotsWithin(grid, center, opts.Proximity, func(dot *components.DotData, _ float64) {
		push := gridmath.HoverPush(dot.Rest, center, velocity, opts.Proximity, maxOffset)
		DisplaceDot(dot, push, cfg.Motion.HoverDuration, opts.ReturnDuration)
	})
}

// GetOrCreatePointer returns the singleton pointer state
func GetOrCreatePointer(e *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
}

// getPointer returns the pointer state without creating it
func getPointer(e *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		return nil
	}
	return components.Pointer.Get(entry)
}

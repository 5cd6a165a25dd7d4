package systems

import (
	"image"
	"math"
	"sort"
	"testing"

	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/gridmath"
)

func TestShockAtCenter(t *testing.T) {
	opts := smallGridOptions()
	_, grid := newTestWorld(opts, 300, 300)
	click := gridmath.Point{X: 150, Y: 150}
	maxOffset := gridmath.ShockMaxOffset(opts.Gap, opts.DotSize)

	Shock(grid, click)

	// Every dot but the one under the click is displaced.
	if n := ActiveAnimations(grid); n != len(grid.Dots)-1 {
		t.Fatalf("expected %d displaced dots, got %d", len(grid.Dots)-1, n)
	}

	for i := 0; i < 30 && grid.Dots[0].Phase == cfg.DotDisplacing; i++ {
		AdvanceDots(grid, tick)
	}

	type sample struct {
		dist, mag float64
	}
	var samples []sample
	for _, dot := range grid.Dots {
		away := dot.Rest.Sub(click)
		dist := away.Len()
		if dist == 0 {
			if dot.Offset != (gridmath.Point{}) {
				t.Fatalf("dot under the click moved: %v", dot.Offset)
			}
			continue
		}
		if dot.Phase != cfg.DotReturning {
			t.Fatalf("dot at %v should be returning, got %s", dot.Rest, dot.Phase)
		}
		if dot.Offset.X*away.X+dot.Offset.Y*away.Y <= 0 {
			t.Fatalf("dot at %v pushed toward the click: %v", dot.Rest, dot.Offset)
		}
		if dot.Offset.Len() > maxOffset+eps {
			t.Fatalf("offset %f exceeds clamp %f", dot.Offset.Len(), maxOffset)
		}
		samples = append(samples, sample{dist: dist, mag: dot.Offset.Len()})
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].dist < samples[j].dist })
	for i := 1; i < len(samples); i++ {
		if samples[i].mag > samples[i-1].mag+1e-6 {
			t.Fatalf("magnitude grew with distance: %f at %f after %f at %f",
				samples[i].mag, samples[i].dist, samples[i-1].mag, samples[i-1].dist)
		}
	}
	// The far corners are below the clamp, so the falloff is visible.
	if last := samples[len(samples)-1]; last.mag >= maxOffset {
		t.Fatalf("corner dot should be pushed less than the clamp, got %f", last.mag)
	}

	steps := int(math.Ceil(opts.ReturnDuration/tick)) + 5
	if n := settle(grid, steps); n >= steps {
		t.Fatalf("%d dots still animating", ActiveAnimations(grid))
	}
}

func TestShockOutsideRadius(t *testing.T) {
	opts := smallGridOptions()
	opts.ShockRadius = 30
	_, grid := newTestWorld(opts, 300, 300)

	Shock(grid, gridmath.Point{X: 10, Y: 10})

	for _, dot := range grid.Dots {
		inside := dot.Rest.Sub(gridmath.Point{X: 10, Y: 10}).Len() < 30
		moving := dot.Phase != cfg.DotRest
		if moving && !inside {
			t.Fatalf("dot at %v outside the radius was displaced", dot.Rest)
		}
	}
}

func TestUpdateShockIgnoresPanelClicks(t *testing.T) {
	e, grid := newTestWorld(smallGridOptions(), 300, 300)
	src := &fakePointer{}
	update := NewUpdateShock(src)

	settings := GetOrCreateSettings(e)
	settings.PanelOpen = true
	settings.PanelRect = image.Rect(100, 100, 200, 200)

	src.Click(150, 150)
	update(e)
	if n := ActiveAnimations(grid); n != 0 {
		t.Fatalf("click on the open panel displaced %d dots", n)
	}

	src.Click(50, 50)
	update(e)
	if ActiveAnimations(grid) == 0 {
		t.Fatal("click outside the panel should send a shock")
	}
}

func TestUpdateShockWithoutGrid(t *testing.T) {
	e, _ := newTestWorld(smallGridOptions(), 300, 300)
	Unmount(e)

	src := &fakePointer{}
	src.Click(10, 10)
	NewUpdateShock(src)(e)

	if _, ok := components.Grid.First(e.World); ok {
		t.Fatal("shock should not mount a grid")
	}
}

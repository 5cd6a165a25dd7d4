package systems

import (
	"math"
	"testing"

	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/gridmath"
)

func TestDisplaceDotLifecycle(t *testing.T) {
	dot := &components.DotData{Rest: gridmath.Point{X: 10, Y: 10}}
	grid := &components.GridData{Dots: []components.DotData{*dot}}
	d := &grid.Dots[0]

	DisplaceDot(d, gridmath.Point{X: 3, Y: -2}, 0.2, 1)
	if d.Phase != cfg.DotDisplacing || d.Motion == nil {
		t.Fatalf("expected displacing with a motion, got %s", d.Phase)
	}

	// 0.2s of displacement ends on the push exactly.
	for i := 0; i < 30 && d.Phase == cfg.DotDisplacing; i++ {
		AdvanceDots(grid, tick)
	}
	if d.Phase != cfg.DotReturning {
		t.Fatalf("expected returning after the displacement, got %s", d.Phase)
	}
	if math.Abs(d.Offset.X-3) > eps || math.Abs(d.Offset.Y+2) > eps {
		t.Fatalf("displacement should end on the push, got %v", d.Offset)
	}

	if n := settle(grid, 120); n >= 120 {
		t.Fatal("dot did not come back to rest")
	}
	if d.Phase != cfg.DotRest || d.Motion != nil || d.Offset != (gridmath.Point{}) {
		t.Fatalf("expected rest with zero offset, got %s %v", d.Phase, d.Offset)
	}
	if d.Position() != d.Rest {
		t.Fatalf("resting dot drawn away from its anchor: %v", d.Position())
	}
}

func TestDisplacePreemptsReturn(t *testing.T) {
	grid := &components.GridData{Dots: []components.DotData{{}}}
	d := &grid.Dots[0]

	DisplaceDot(d, gridmath.Point{X: 3}, 0.2, 1.5)
	for i := 0; i < 30 && d.Phase != cfg.DotReturning; i++ {
		AdvanceDots(grid, tick)
	}
	AdvanceDots(grid, tick)
	returning := d.Motion
	from := d.Offset

	DisplaceDot(d, gridmath.Point{Y: 3}, 0.2, 1.5)
	if d.Phase != cfg.DotDisplacing {
		t.Fatalf("new input should start a displacement, got %s", d.Phase)
	}
	if d.Motion == returning {
		t.Fatal("the return animation should have been replaced")
	}

	// The new displacement starts where the return left the dot.
	AdvanceDots(grid, 1e-6)
	if math.Abs(d.Offset.X-from.X) > 1e-3 {
		t.Fatalf("displacement jumped from %v to %v", from, d.Offset)
	}

	// Advancing the dropped return must not affect the dot.
	returning.Update(10)
	if d.Phase != cfg.DotDisplacing {
		t.Fatalf("stale return changed the dot to %s", d.Phase)
	}
}

func TestDisplacePreemptsDisplacement(t *testing.T) {
	grid := &components.GridData{Dots: []components.DotData{{}}}
	d := &grid.Dots[0]

	DisplaceDot(d, gridmath.Point{X: 3}, 0.2, 1.5)
	AdvanceDots(grid, tick)
	first := d.Motion

	DisplaceDot(d, gridmath.Point{X: -3}, 0.2, 1.5)
	if d.Motion == first {
		t.Fatal("second displacement should replace the first")
	}

	for i := 0; i < 30 && d.Phase == cfg.DotDisplacing; i++ {
		AdvanceDots(grid, tick)
	}
	if math.Abs(d.Offset.X+3) > eps {
		t.Fatalf("expected the second push to win, got %v", d.Offset)
	}
}

func TestActiveAnimations(t *testing.T) {
	grid := &components.GridData{Dots: make([]components.DotData, 4)}
	if ActiveAnimations(grid) != 0 {
		t.Fatal("fresh dots should be at rest")
	}
	DisplaceDot(&grid.Dots[1], gridmath.Point{X: 1}, 0.2, 1)
	DisplaceDot(&grid.Dots[3], gridmath.Point{X: 1}, 0.2, 1)
	if n := ActiveAnimations(grid); n != 2 {
		t.Fatalf("expected 2 animations, got %d", n)
	}
}

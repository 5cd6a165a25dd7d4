package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/fonts"
	"github.com/yohamta/donburi/ecs"
)

const (
	debugMargin     = 10
	debugLineHeight = 16
	debugPanelWidth = 260
)

// DrawDebug renders the pointer radii, the grid bounds and a stats HUD
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}
	grid, ok := GetGrid(e)
	if !ok {
		return
	}

	drawGridBounds(screen, grid)

	pointer := getPointer(e)
	if pointer != nil && pointer.Seen {
		px, py := float32(pointer.X), float32(pointer.Y)
		vector.StrokeCircle(screen, px, py, float32(grid.Options.Proximity), 1, cfg.DebugOverlay.ProximityColor, true)
		vector.StrokeCircle(screen, px, py, float32(grid.Options.ShockRadius), 1, cfg.DebugOverlay.ShockColor, true)
	}

	drawDebugStats(screen, DebugLines(e))
}

// DebugLines returns the text lines of the stats HUD
func DebugLines(e *ecs.ECS) []string {
	grid, ok := GetGrid(e)
	if !ok {
		return nil
	}
	lines := []string{
		fmt.Sprintf("preset   %s (%s)", PresetName(e), grid.Options.Class),
		fmt.Sprintf("grid     %dx%d = %d dots", grid.Layout.Cols, grid.Layout.Rows, len(grid.Dots)),
		fmt.Sprintf("moving   %d", ActiveAnimations(grid)),
	}
	if pointer := getPointer(e); pointer != nil && pointer.Seen {
		lines = append(lines, fmt.Sprintf("pointer  %.0f,%.0f  %.0f px/s", pointer.X, pointer.Y, pointer.Speed))
	}
	lines = append(lines, fmt.Sprintf("tps      %.1f", ebiten.ActualTPS()))
	return lines
}

func drawGridBounds(screen *ebiten.Image, grid *components.GridData) {
	if grid.Layout.Count() == 0 {
		return
	}
	r := float32(grid.Options.DotSize / 2)
	first := grid.Layout.Anchor(0, 0)
	last := grid.Layout.Anchor(grid.Layout.Cols-1, grid.Layout.Rows-1)

	x, y := float32(first.X)-r, float32(first.Y)-r
	w, h := float32(last.X-first.X)+2*r, float32(last.Y-first.Y)+2*r
	vector.StrokeRect(screen, x, y, w, h, 1, cfg.DebugOverlay.BoundsColor, false)
}

func drawDebugStats(screen *ebiten.Image, lines []string) {
	if len(lines) == 0 || !fonts.Loaded(fonts.Mono) {
		return
	}
	height := float32(len(lines)*debugLineHeight + debugMargin)
	vector.FillRect(screen, debugMargin, debugMargin, debugPanelWidth, height, cfg.DebugOverlay.TextBgColor, false)

	face := fonts.Mono.Get()
	if fonts.Loaded(fonts.Regular) {
		text.Draw(screen, "DEBUG", fonts.Regular.Get(), debugPanelWidth-40, debugMargin+debugLineHeight, color.Color(cfg.DebugOverlay.ProximityColor))
	}
	for i, line := range lines {
		y := debugMargin + (i+1)*debugLineHeight
		text.Draw(screen, line, face, debugMargin*2, y, color.Color(cfg.DebugOverlay.TextColor))
	}
}

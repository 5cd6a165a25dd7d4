package factory

import (
	"math"

	"github.com/selahstudio/dotgrid/components"
	"github.com/selahstudio/dotgrid/tags"
	"github.com/solarlune/resolv"
)

// CreateSpace indexes every dot's rest square in a resolv space so pointer
// queries only visit nearby dots. cellsPerDot sets how many grid cells share
// one space cell along each axis.
func CreateSpace(grid *components.GridData, cellsPerDot int) (*resolv.Space, []*resolv.Object) {
	if cellsPerDot < 1 {
		cellsPerDot = 1
	}
	cellSize := int(math.Ceil(grid.Layout.Cell)) * cellsPerDot
	if cellSize < 1 {
		cellSize = 1
	}

	// Space dimensions are whole cells; round up so edge dots are indexed.
	cols := int(math.Ceil(grid.Width/float64(cellSize))) + 1
	rows := int(math.Ceil(grid.Height/float64(cellSize))) + 1
	space := resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize)

	size := grid.Options.DotSize
	objects := make([]*resolv.Object, len(grid.Dots))
	for i := range grid.Dots {
		rest := grid.Dots[i].Rest
		obj := resolv.NewObject(rest.X-size/2, rest.Y-size/2, size, size, tags.ResolvDot)
		obj.Data = i
		objects[i] = obj
	}
	space.Add(objects...)

	return space, objects
}

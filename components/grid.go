package components

import (
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/gridmath"
	"github.com/selahstudio/dotgrid/palette"
	"github.com/selahstudio/dotgrid/tween"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// DotData is one dot of the grid. Phase and Motion change together: a dot
// at rest has no motion, a displacing or returning dot owns exactly one.
type DotData struct {
	Rest   gridmath.Point // anchor computed at build time
	Offset gridmath.Point // animated displacement from Rest
	Phase  cfg.DotPhaseID
	Motion *tween.Tween
}

// Position is where the dot is drawn.
func (d *DotData) Position() gridmath.Point {
	return d.Rest.Add(d.Offset)
}

// GridData owns the dot arena of one mounted grid. Dots are indexed by
// build order and replaced wholesale on every rebuild.
type GridData struct {
	Options cfg.DotGridConfig
	Palette palette.Palette

	Width, Height float64 // container size the grid was built for
	Layout        gridmath.Layout
	Dots          []DotData
	Stale         bool // options changed, rebuild on next tick

	// Broadphase index; each object's Data is its dot index.
	Space   *resolv.Space
	Objects []*resolv.Object
}

var Grid = donburi.NewComponentType[GridData]()

// ViewportData is the latest container size reported by the host.
type ViewportData struct {
	Width, Height int
}

var Viewport = donburi.NewComponentType[ViewportData]()

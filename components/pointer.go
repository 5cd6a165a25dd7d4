package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// PointerData is the last processed pointer sample in canvas coordinates.
type PointerData struct {
	X, Y   float64 // last known position
	VX, VY float64 // velocity in px/sec, clamped to MaxSpeed
	Speed  float64

	LastX, LastY float64   // position of the previous processed sample
	LastTime     time.Time // time of the previous processed sample
	LastCall     time.Time // throttle gate
	RawX, RawY   float64   // last polled position, processed or not
	Seen         bool      // a pointer position has been observed
}

var Pointer = donburi.NewComponentType[PointerData]()

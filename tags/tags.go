package tags

import "github.com/yohamta/donburi"

var (
	Grid    = donburi.NewTag().SetName("Grid")
	Pointer = donburi.NewTag().SetName("Pointer")
	Intro   = donburi.NewTag().SetName("Intro")
)

// Resolv tags for the dot broadphase
const (
	ResolvDot   = "dot"
	ResolvProbe = "probe"
)

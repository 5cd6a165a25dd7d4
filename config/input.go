package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionTogglePanel
	ActionToggleDebug
	ActionNextPreset
	ActionPrevPreset
	ActionFullscreen
	ActionSkip
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionTogglePanel: {Keys: []ebiten.Key{ebiten.KeyTab}},
			ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionNextPreset:  {Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyBracketRight}},
			ActionPrevPreset:  {Keys: []ebiten.Key{ebiten.KeyBracketLeft}},
			ActionFullscreen:  {Keys: []ebiten.Key{ebiten.KeyF11, ebiten.KeyF}},
			ActionSkip:        {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
			ActionQuit:        {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}

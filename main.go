package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/fonts"
	"github.com/selahstudio/dotgrid/scenes"
	"github.com/selahstudio/dotgrid/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Resizable scenes receive the container size from Layout
type Resizable interface {
	Resize(width, height int)
}

// Closer scenes release their world when replaced
type Closer interface {
	Close()
}

type Game struct {
	scene         Scene
	width, height int
}

// ChangeScene switches to a new scene and unmounts the old one
func (g *Game) ChangeScene(scene interface{}) {
	next := scene.(Scene)
	if old, ok := g.scene.(Closer); ok && g.scene != next {
		old.Close()
	}
	g.scene = next
	if r, ok := next.(Resizable); ok && g.width > 0 {
		r.Resize(g.width, g.height)
	}
}

func NewGame(saved *systems.SavedSettings) *Game {
	if err := fonts.LoadDefaultFonts(); err != nil {
		log.Printf("Warning: Could not load fonts, debug text disabled: %v", err)
	}

	g := &Game{}

	presetIndex := config.Settings.DefaultPresetIndex
	if saved != nil && saved.PresetIndex >= 0 && saved.PresetIndex < len(config.Settings.Presets) {
		presetIndex = saved.PresetIndex
	}
	grid := scenes.NewDotGridScene(config.Settings.Presets[presetIndex].Options, saved)

	introSeen := saved != nil && saved.IntroSeen
	if config.Debug.SkipIntro || introSeen {
		g.scene = grid
	} else {
		g.scene = scenes.NewIntroScene(g, grid)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if r, ok := g.scene.(Resizable); ok {
			r.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Dot Grid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}

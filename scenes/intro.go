package scenes

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/selahstudio/dotgrid/assets"
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/systems"
	"github.com/selahstudio/dotgrid/systems/factory"
	"github.com/selahstudio/dotgrid/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IntroScene plays the scroll-driven overlay on top of the grid scene it
// hands over to once dismissed.
type IntroScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	next         *DotGridScene
	controls     *ui.IntroUI
	overlay      *ebiten.Image
	once         sync.Once
}

// NewIntroScene creates the intro overlay in front of next
func NewIntroScene(sc SceneChanger, next *DotGridScene) *IntroScene {
	return &IntroScene{sceneChanger: sc, next: next}
}

func (is *IntroScene) Update() {
	is.once.Do(is.configure)
	is.ecs.Update()

	intro, ok := systems.GetIntro(is.ecs)
	if ok && intro.State == cfg.IntroActive {
		is.controls.Update()
	} else {
		// The grid mounts underneath while the overlay fades.
		is.next.Update()
	}

	if systems.IntroDismissed(is.ecs) {
		systems.MarkIntroSeen()
		is.next.MarkIntroSeen()
		is.sceneChanger.ChangeScene(is.next)
	}
}

func (is *IntroScene) Draw(screen *ebiten.Image) {
	if is.ecs == nil {
		return
	}
	intro, ok := systems.GetIntro(is.ecs)
	if !ok {
		return
	}

	if intro.State != cfg.IntroActive {
		is.next.Draw(screen)
	}

	bounds := screen.Bounds()
	if is.overlay == nil || is.overlay.Bounds() != bounds {
		if is.overlay != nil {
			is.overlay.Deallocate()
		}
		is.overlay = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	is.overlay.Clear()
	is.ecs.Draw(is.overlay)
	if intro.State == cfg.IntroActive {
		is.controls.Draw(is.overlay)
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(intro.Opacity))
	screen.DrawImage(is.overlay, op)
}

// Resize forwards the layout size to the grid behind the overlay
func (is *IntroScene) Resize(width, height int) {
	is.next.Resize(width, height)
}

// Close tears down the overlay. The grid scene stays mounted.
func (is *IntroScene) Close() {
	if is.ecs != nil {
		systems.Unmount(is.ecs)
	}
	if is.overlay != nil {
		is.overlay.Deallocate()
		is.overlay = nil
	}
}

func (is *IntroScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, using a flat background: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdateIntro(&systems.EbitenIntroInput{}))

	ecs.AddRenderer(cfg.LayerBackground, systems.DrawIntro)

	is.ecs = ecs

	intro := factory.CreateIntro(is.ecs)
	is.controls = ui.NewIntroUI(func() {
		systems.SkipIntro(components.Intro.Get(intro))
	})
}

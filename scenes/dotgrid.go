package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/systems"
	"github.com/selahstudio/dotgrid/systems/factory"
	"github.com/selahstudio/dotgrid/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DotGridScene mounts one reactive dot grid
type DotGridScene struct {
	ecs     *ecs.ECS
	options cfg.DotGridConfig
	saved   *systems.SavedSettings
	pointer systems.PointerReader
	clock   systems.Clock
	tuning  *ui.TuningUI
	once    sync.Once
	closed  bool

	introSeen bool

	width, height int
}

// NewDotGridScene creates a grid scene with the given options. Saved
// settings, when present, pick the preset and the overlay toggles.
func NewDotGridScene(opts cfg.DotGridConfig, saved *systems.SavedSettings) *DotGridScene {
	return &DotGridScene{
		options: opts,
		saved:   saved,
		pointer: &systems.EbitenPointer{},
		clock:   systems.SystemClock{},
	}
}

func (s *DotGridScene) Update() {
	if s.closed {
		return
	}
	s.once.Do(s.configure)
	s.ecs.Update()
	s.tuning.Update()
}

func (s *DotGridScene) Draw(screen *ebiten.Image) {
	if s.closed || s.ecs == nil || screen == nil {
		return
	}
	s.ecs.DrawLayer(cfg.LayerBackground, screen)
	s.ecs.DrawLayer(cfg.LayerDots, screen)
	s.tuning.Draw(screen)
	s.ecs.DrawLayer(cfg.LayerOverlay, screen)
}

// Resize records the container size reported by the game layout
func (s *DotGridScene) Resize(width, height int) {
	s.width, s.height = width, height
	if s.ecs != nil && !s.closed {
		systems.SetViewport(s.ecs, width, height)
	}
}

// MarkIntroSeen records that the intro overlay in front of the grid was
// dismissed, so later saves keep it.
func (s *DotGridScene) MarkIntroSeen() {
	s.introSeen = true
	if s.ecs != nil && !s.closed {
		systems.GetOrCreateSettings(s.ecs).IntroSeen = true
	}
}

// Close unmounts the grid. Update and Draw are no-ops afterwards.
func (s *DotGridScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.ecs != nil {
		systems.Unmount(s.ecs)
	}
	s.tuning = nil
}

func (s *DotGridScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateGrid)
	ecs.AddSystem(systems.NewUpdatePointer(s.pointer, s.clock))
	ecs.AddSystem(systems.NewUpdateShock(s.pointer))
	ecs.AddSystem(systems.UpdateDots)

	ecs.AddRenderer(cfg.LayerBackground, systems.DrawBackground)
	ecs.AddRenderer(cfg.LayerDots, systems.DrawDots)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)

	s.ecs = ecs

	factory.CreateGrid(s.ecs, s.options)
	factory.CreatePointer(s.ecs)
	systems.GetOrCreateSettings(s.ecs)
	systems.ApplySavedSettings(s.ecs, s.saved)
	if s.introSeen {
		systems.GetOrCreateSettings(s.ecs).IntroSeen = true
	}

	if s.width > 0 || s.height > 0 {
		systems.SetViewport(s.ecs, s.width, s.height)
	}

	s.tuning = ui.NewTuningUI(s.ecs)
}

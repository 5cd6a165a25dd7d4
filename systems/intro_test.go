package systems

import (
	"math"
	"testing"

	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
)

func newTestIntro() *components.IntroData {
	return &components.IntroData{
		State:   cfg.IntroActive,
		CameraZ: cfg.Intro.CameraStartZ,
		Opacity: 1,
	}
}

func TestStepIntroClampsProgress(t *testing.T) {
	intro := newTestIntro()

	StepIntro(intro, -0.5)
	if intro.Progress != 0 {
		t.Fatalf("progress should not go below 0, got %f", intro.Progress)
	}

	StepIntro(intro, 0.5)
	if intro.Progress != 0.5 {
		t.Fatalf("expected progress 0.5, got %f", intro.Progress)
	}
	want := cfg.Intro.CameraStartZ + (cfg.Intro.CameraEndZ-cfg.Intro.CameraStartZ)*0.5
	if math.Abs(intro.CameraZ-want) > eps {
		t.Fatalf("expected camera at %f, got %f", want, intro.CameraZ)
	}
}

func TestStepIntroDismissesForward(t *testing.T) {
	intro := newTestIntro()
	intro.Progress = 0.97

	StepIntro(intro, 0.02)
	if intro.State != cfg.IntroFading {
		t.Fatalf("scrolling forward past the threshold should fade, got %d", intro.State)
	}
}

func TestStepIntroBackwardKeepsOverlay(t *testing.T) {
	intro := newTestIntro()
	intro.Progress = 1

	StepIntro(intro, -0.01)
	if intro.State != cfg.IntroActive {
		t.Fatalf("scrolling back should not dismiss, got %d", intro.State)
	}

	// The failsafe catches an overlay stuck at the end.
	AdvanceIntro(intro, cfg.Intro.FailsafeInterval)
	if intro.State != cfg.IntroFading {
		t.Fatalf("failsafe should start the fade, got %d", intro.State)
	}
}

func TestFadeDismissesOverlay(t *testing.T) {
	intro := newTestIntro()
	SkipIntro(intro)
	if intro.State != cfg.IntroFading {
		t.Fatalf("skip should start the fade, got %d", intro.State)
	}

	prev := intro.Opacity
	steps := int(math.Ceil(cfg.Intro.FadeDuration/tick)) + 5
	for i := 0; i < steps && intro.State == cfg.IntroFading; i++ {
		AdvanceIntro(intro, tick)
		if intro.Opacity > prev+eps {
			t.Fatalf("opacity rose during the fade: %f > %f", intro.Opacity, prev)
		}
		prev = intro.Opacity
	}

	if intro.State != cfg.IntroDismissed || intro.Opacity != 0 {
		t.Fatalf("expected dismissed at opacity 0, got %d at %f", intro.State, intro.Opacity)
	}

	// Input after dismissal is ignored.
	StepIntro(intro, -1)
	if intro.Progress != 0 {
		t.Fatalf("dismissed overlay should not move, got %f", intro.Progress)
	}
}

func TestProjectStar(t *testing.T) {
	const w, h = 800.0, 600.0
	center := components.StarData{X: 0, Y: 0, Z: 0}

	x, y, scale, ok := ProjectStar(center, 600, 600, w, h)
	if !ok || x != w/2 || y != h/2 || scale != 1 {
		t.Fatalf("expected centered star at scale 1, got (%f, %f) %f %v", x, y, scale, ok)
	}

	if _, _, _, ok := ProjectStar(center, -10, 600, w, h); ok {
		t.Fatal("star behind the camera should not be drawn")
	}

	side := components.StarData{X: 100, Y: 0, Z: 0}
	_, _, farScale, _ := ProjectStar(side, 1200, 600, w, h)
	nx, _, nearScale, _ := ProjectStar(side, 600, 600, w, h)
	if nearScale <= farScale {
		t.Fatalf("stars should grow as the camera approaches: %f <= %f", nearScale, farScale)
	}
	if nx != w/2+100 {
		t.Fatalf("expected x %f, got %f", w/2+100, nx)
	}
}

// fakeIntroInput scripts wheel and touch gestures
type fakeIntroInput struct {
	wheel    float64
	touchY   float64
	touching bool
}

func (f *fakeIntroInput) Wheel() float64 {
	w := f.wheel
	f.wheel = 0
	return w
}

func (f *fakeIntroInput) Touch() (float64, bool) {
	return f.touchY, f.touching
}

func TestUpdateIntroGestures(t *testing.T) {
	e, _ := newTestWorld(smallGridOptions(), 0, 0)
	entry := e.World.Entry(e.World.Create(components.Intro))
	components.Intro.SetValue(entry, *newTestIntro())
	intro := components.Intro.Get(entry)

	src := &fakeIntroInput{}
	update := NewUpdateIntro(src)

	// One wheel notch forward.
	src.wheel = cfg.Intro.WheelPixels
	update(e)
	want := cfg.Intro.WheelPixels * cfg.Intro.WheelScale
	if math.Abs(intro.Progress-want) > eps {
		t.Fatalf("expected progress %f after a notch, got %f", want, intro.Progress)
	}

	// Dragging up by 25px moves forward.
	src.touching, src.touchY = true, 300
	update(e)
	src.touchY = 275
	update(e)
	want += 25 * cfg.Intro.TouchScale
	if math.Abs(intro.Progress-want) > eps {
		t.Fatalf("expected progress %f after the drag, got %f", want, intro.Progress)
	}

	// Lifting the finger forgets the last touch position.
	src.touching = false
	update(e)
	src.touching, src.touchY = true, 100
	update(e)
	if math.Abs(intro.Progress-want) > eps {
		t.Fatalf("a new touch should not count as a drag, got %f", intro.Progress)
	}

	if IntroDismissed(e) {
		t.Fatal("overlay should still be active")
	}
}

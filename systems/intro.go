package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/selahstudio/dotgrid/assets"
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/fonts"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// IntroReader reports the scroll gestures that drive the intro overlay
type IntroReader interface {
	// Wheel returns the vertical wheel movement of this tick in pixels.
	// Positive values scroll forward (down the page).
	Wheel() float64
	// Touch returns the y position of the first active touch.
	Touch() (y float64, ok bool)
}

// EbitenIntroInput reads the mouse wheel and the first touch
type EbitenIntroInput struct {
	touchIDs []ebiten.TouchID
}

func (r *EbitenIntroInput) Wheel() float64 {
	_, dy := ebiten.Wheel()
	// Ebiten reports notches with positive values scrolling up.
	return -dy * cfg.Intro.WheelPixels
}

func (r *EbitenIntroInput) Touch() (float64, bool) {
	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])
	if len(r.touchIDs) == 0 {
		return 0, false
	}
	_, y := ebiten.TouchPosition(r.touchIDs[0])
	return float64(y), true
}

// NewUpdateIntro creates the system that advances the intro overlay from
// wheel and touch input, the skip key and the fixed tick.
func NewUpdateIntro(src IntroReader) ecs.System {
	return func(e *ecs.ECS) {
		intro, ok := GetIntro(e)
		if !ok {
			return
		}

		if intro.State == cfg.IntroActive {
			if wheel := src.Wheel(); wheel != 0 {
				StepIntro(intro, wheel*cfg.Intro.WheelScale)
			}

			if y, ok := src.Touch(); ok {
				if intro.Touching {
					dy := intro.TouchY - y
					if dy != 0 {
						StepIntro(intro, dy*cfg.Intro.TouchScale)
					}
				}
				intro.TouchY = y
				intro.Touching = true
			} else {
				intro.Touching = false
			}

			if GetAction(getOrCreateInput(e), cfg.ActionSkip).JustPressed {
				SkipIntro(intro)
			}
		}

		AdvanceIntro(intro, 1/float64(ebiten.TPS()))
	}
}

// StepIntro moves the intro progress by delta. Reaching the end while
// scrolling forward starts the fade out.
func StepIntro(intro *components.IntroData, delta float64) {
	if intro.State != cfg.IntroActive {
		return
	}
	next := math.Max(0, math.Min(1, intro.Progress+delta))
	if next == intro.Progress {
		return
	}

	intro.Progress = next
	intro.LastDelta = delta
	intro.CameraZ = CameraZ(next)

	if intro.Progress >= cfg.Intro.DismissProgress && intro.LastDelta > 0 {
		BeginFade(intro)
	}
}

// CameraZ returns the camera depth for intro progress p
func CameraZ(p float64) float64 {
	return cfg.Intro.CameraStartZ + (cfg.Intro.CameraEndZ-cfg.Intro.CameraStartZ)*p
}

// SkipIntro dismisses the overlay regardless of progress
func SkipIntro(intro *components.IntroData) {
	BeginFade(intro)
}

// BeginFade starts fading the overlay out. It is a no-op once fading.
func BeginFade(intro *components.IntroData) {
	if intro.State != cfg.IntroActive {
		return
	}
	intro.State = cfg.IntroFading
	intro.Fade = gween.New(float32(intro.Opacity), 0, float32(cfg.Intro.FadeDuration), ease.InOutQuad)
}

// AdvanceIntro runs the failsafe check and the fade for dt seconds
func AdvanceIntro(intro *components.IntroData, dt float64) {
	intro.FailsafeTimer += dt
	if intro.FailsafeTimer >= cfg.Intro.FailsafeInterval {
		intro.FailsafeTimer = 0
		if intro.State == cfg.IntroActive && intro.Progress >= cfg.Intro.DismissProgress {
			BeginFade(intro)
		}
	}

	if intro.State != cfg.IntroFading || intro.Fade == nil {
		return
	}
	v, done := intro.Fade.Update(float32(dt))
	intro.Opacity = float64(v)
	if done {
		intro.Opacity = 0
		intro.Fade = nil
		intro.State = cfg.IntroDismissed
	}
}

// IntroDismissed reports whether the overlay finished fading out
func IntroDismissed(e *ecs.ECS) bool {
	intro, ok := GetIntro(e)
	return !ok || intro.State == cfg.IntroDismissed
}

// GetIntro returns the intro overlay state, if mounted
func GetIntro(e *ecs.ECS) (*components.IntroData, bool) {
	entry, ok := components.Intro.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Intro.Get(entry), true
}

// ProjectStar projects a depth field point for a camera at cameraZ looking
// down the negative Z axis. ok is false for points behind the camera.
func ProjectStar(star components.StarData, cameraZ, focal, width, height float64) (x, y, scale float64, ok bool) {
	depth := cameraZ - star.Z
	if depth <= 1 {
		return 0, 0, 0, false
	}
	scale = focal / depth
	x = width/2 + star.X*scale
	y = height/2 + star.Y*scale
	if x < 0 || y < 0 || x > width || y > height {
		return 0, 0, 0, false
	}
	return x, y, scale, true
}

// DrawIntro renders the overlay at full opacity. The scene applies the fade.
func DrawIntro(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Intro.First(e.World)
	if !ok {
		return
	}
	intro := components.Intro.Get(entry)
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	drawIntroBackground(screen, w, h)

	field := components.Starfield.Get(entry)
	for _, star := range field.Stars {
		x, y, scale, ok := ProjectStar(star, intro.CameraZ, cfg.Intro.FocalLength, w, h)
		if !ok {
			continue
		}
		r := float32(math.Max(0.5, math.Min(4, scale*2)))
		alpha := uint8(math.Min(255, 80+scale*400))
		vector.FillCircle(screen, float32(x), float32(y), r, color.NRGBA{R: 255, G: 255, B: 255, A: alpha}, true)
	}

	drawIntroText(screen, intro, w, h)
}

func drawIntroBackground(screen *ebiten.Image, w, h float64) {
	if assets.GradientShader == nil {
		screen.Fill(cfg.Intro.GradientBottom)
		return
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = assets.GradientUniforms(cfg.Intro.GradientTop, cfg.Intro.GradientBottom, h, 1)
	screen.DrawRectShader(int(w), int(h), assets.GradientShader, op)
}

func drawIntroText(screen *ebiten.Image, intro *components.IntroData, w, h float64) {
	titleFace, err := fonts.GoTextFace(32)
	if err != nil {
		return
	}
	hintFace, err := fonts.GoTextFace(14)
	if err != nil {
		return
	}

	// The title recedes as the camera flies in.
	titleAlpha := float32(1 - intro.Progress)
	op := &text.DrawOptions{}
	op.GeoM.Translate(w/2, h/2-24)
	op.ColorScale.ScaleWithColor(cfg.Intro.TextColor)
	op.ColorScale.ScaleAlpha(titleAlpha)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, cfg.Intro.Title, titleFace, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(w/2, h-48)
	op.ColorScale.ScaleWithColor(cfg.Intro.HintColor)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, cfg.Intro.Hint, hintFace, op)

	// Progress bar along the bottom edge
	vector.FillRect(screen, 0, float32(h)-3, float32(w*intro.Progress), 3, cfg.Intro.TextColor, false)
}

package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/selahstudio/dotgrid/fonts"
)

// IntroUI holds the skip button shown over the intro overlay
type IntroUI struct {
	UI     *ebitenui.UI
	OnSkip func()

	face text.Face
}

// NewIntroUI creates the intro overlay controls
func NewIntroUI(onSkip func()) *IntroUI {
	iui := &IntroUI{OnSkip: onSkip}

	face, err := fonts.GoTextFace(14)
	if err != nil {
		panic(err)
	}
	iui.face = face
	iui.buildUI()

	return iui
}

func (iui *IntroUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	skipButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 28),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
		widget.ButtonOpts.Image(skipButtonImage()),
		widget.ButtonOpts.Text("Skip", &iui.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{200, 200, 220, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if iui.OnSkip != nil {
				iui.OnSkip()
			}
		}),
	)
	rootContainer.AddChild(skipButton)

	iui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func skipButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{255, 255, 255, 26})
	hover := image.NewNineSliceColor(color.RGBA{255, 255, 255, 51})
	pressed := image.NewNineSliceColor(color.RGBA{255, 255, 255, 13})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// Update calls the UI's Update method
func (iui *IntroUI) Update() {
	iui.UI.Update()
}

// Draw renders the controls
func (iui *IntroUI) Draw(screen *ebiten.Image) {
	iui.UI.Draw(screen)
}

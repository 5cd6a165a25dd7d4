package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/selahstudio/dotgrid/fonts"
	"github.com/selahstudio/dotgrid/systems"
	"github.com/yohamta/donburi/ecs"
)

// TuningUI is the ebitenui panel for live tuning of the mounted grid
type TuningUI struct {
	UI  *ebitenui.UI
	ECS *ecs.ECS

	// Widget references for updates
	panel          *widget.Container
	presetLabel    *widget.Label
	proximityLabel *widget.Label
	shockLabel     *widget.Label
	returnLabel    *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTuningUI creates the tuning panel for a grid scene
func NewTuningUI(e *ecs.ECS) *TuningUI {
	tui := &TuningUI{ECS: e}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TuningUI) loadFonts() {
	var err error
	if tui.titleFace, err = fonts.GoTextFace(16); err != nil {
		panic(err)
	}
	if tui.normalFace, err = fonts.GoTextFace(13); err != nil {
		panic(err)
	}
	if tui.smallFace, err = fonts.GoTextFace(11); err != nil {
		panic(err)
	}
}

func (tui *TuningUI) buildUI() {
	// Root container is transparent so the grid shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	tui.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("DOT GRID", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	tui.panel.AddChild(titleLabel)

	tui.presetLabel = tui.addRow("Preset", systems.PresetName(tui.ECS), "<", ">", func(dir int) {
		systems.CyclePreset(tui.ECS, dir)
	})
	tui.proximityLabel = tui.addRow("Proximity", systems.FormatProximity(tui.ECS), "-", "+", func(dir int) {
		systems.AdjustProximity(tui.ECS, dir)
	})
	tui.shockLabel = tui.addRow("Shock", systems.FormatShockStrength(tui.ECS), "-", "+", func(dir int) {
		systems.AdjustShockStrength(tui.ECS, dir)
	})
	tui.returnLabel = tui.addRow("Return", systems.FormatReturnDuration(tui.ECS), "-", "+", func(dir int) {
		systems.AdjustReturnDuration(tui.ECS, dir)
	})

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Tab: close   F3: debug", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	)
	tui.panel.AddChild(hintLabel)

	rootContainer.AddChild(tui.panel)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// addRow adds a "name value [dec] [inc]" row and returns the value label
func (tui *TuningUI) addRow(name, value, dec, inc string, step func(dir int)) *widget.Label {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(name+":", &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	row.AddChild(tui.stepButton(dec, func() { step(-1) }))

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text(value, &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(valueLabel)

	row.AddChild(tui.stepButton(inc, func() { step(1) }))

	tui.panel.AddChild(row)
	return valueLabel
}

func (tui *TuningUI) stepButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(22, 18)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &tui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			tui.UpdateUI()
		}),
	)
}

// UpdateUI refreshes the value labels from the mounted grid
func (tui *TuningUI) UpdateUI() {
	if tui.presetLabel != nil {
		tui.presetLabel.Label = systems.PresetName(tui.ECS)
	}
	if tui.proximityLabel != nil {
		tui.proximityLabel.Label = systems.FormatProximity(tui.ECS)
	}
	if tui.shockLabel != nil {
		tui.shockLabel.Label = systems.FormatShockStrength(tui.ECS)
	}
	if tui.returnLabel != nil {
		tui.returnLabel.Label = systems.FormatReturnDuration(tui.ECS)
	}
}

// Update runs the UI while the panel is open and publishes its screen area
// so clicks on it are not treated as shocks.
func (tui *TuningUI) Update() {
	settings := systems.GetOrCreateSettings(tui.ECS)
	if !settings.PanelOpen {
		return
	}

	tui.UI.Update()
	tui.UpdateUI()
	settings.PanelRect = tui.panel.GetWidget().Rect
}

// Draw renders the panel when open
func (tui *TuningUI) Draw(screen *ebiten.Image) {
	if !systems.GetOrCreateSettings(tui.ECS).PanelOpen {
		return
	}
	tui.UI.Draw(screen)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

package ui

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/systems"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// DemoPanel holds the pixel demo page's controls
type DemoPanel struct {
	Container *widget.Container

	ecs   *ecs.ECS
	faces *faces

	// Widget references for updates
	pixelSizeLabel *widget.Label
	durationLabel  *widget.Label
}

// NewDemoPanel builds the controls for the demo settings stored in e.
func NewDemoPanel(e *ecs.ECS) *DemoPanel {
	dp := &DemoPanel{ecs: e, faces: loadFaces()}
	dp.build()
	dp.Refresh()
	return dp
}

func (dp *DemoPanel) build() {
	padding := widget.NewInsetsSimple(24)
	dp.Container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.White)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	dp.Container.AddChild(dp.label("Controls", &dp.faces.brand, cfg.TextDark))

	dp.pixelSizeLabel = dp.label("", &dp.faces.normal, cfg.TextDark)
	dp.Container.AddChild(dp.stepperRow(dp.pixelSizeLabel, func(steps int) {
		systems.AdjustDemoPixelSize(dp.ecs, steps)
	}))

	dp.durationLabel = dp.label("", &dp.faces.normal, cfg.TextDark)
	dp.Container.AddChild(dp.stepperRow(dp.durationLabel, func(steps int) {
		systems.AdjustDemoDuration(dp.ecs, steps)
	}))

	trigger := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(260, 44),
		),
		widget.ButtonOpts.Image(dp.triggerButtonImage()),
		widget.ButtonOpts.Text("Trigger Transition", &dp.faces.bold, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.White,
			Pressed: color.RGBA{R: 220, G: 220, B: 220, A: 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.TriggerDemo(dp.ecs)
		}),
	)
	dp.Container.AddChild(trigger)

	dp.Container.AddChild(dp.label("Features", &dp.faces.bold, cfg.TextDark))
	for _, f := range cfg.Demo.Features {
		dp.Container.AddChild(dp.label("- "+f, &dp.faces.small, cfg.Gray))
	}
}

func (dp *DemoPanel) label(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: clr}),
	)
}

// stepperRow lays out [-] value [+].
func (dp *DemoPanel) stepperRow(value *widget.Label, adjust func(steps int)) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)
	row.AddChild(dp.stepButton("-", func() { adjust(-1) }))
	row.AddChild(value)
	row.AddChild(dp.stepButton("+", func() { adjust(1) }))
	return row
}

func (dp *DemoPanel) stepButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(36, 30),
		),
		widget.ButtonOpts.Image(dp.buttonImage()),
		widget.ButtonOpts.Text(label, &dp.faces.bold, &widget.ButtonTextColor{
			Idle:    cfg.TextDark,
			Hover:   cfg.Primary,
			Pressed: cfg.Primary,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			dp.Refresh()
		}),
	)
}

// Refresh shows the current settings.
func (dp *DemoPanel) Refresh() {
	d := systems.GetOrCreateDemo(dp.ecs)
	dp.pixelSizeLabel.Label = fmt.Sprintf("Pixel Size: %dpx", d.PixelSize)
	dp.durationLabel.Label = fmt.Sprintf("Duration: %.1fs", d.Duration)
}

func (dp *DemoPanel) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{R: 236, G: 236, B: 232, A: 255})
	hover := image.NewNineSliceColor(color.RGBA{R: 226, G: 240, B: 234, A: 255})
	pressed := image.NewNineSliceColor(color.RGBA{R: 210, G: 230, B: 222, A: 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: idle,
	}
}

func (dp *DemoPanel) triggerButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Primary)
	hover := image.NewNineSliceColor(color.RGBA{R: 32, G: 150, B: 114, A: 255})
	pressed := image.NewNineSliceColor(color.RGBA{R: 18, G: 100, B: 76, A: 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: idle,
	}
}

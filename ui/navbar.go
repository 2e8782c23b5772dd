package ui

import (
	"image/color"

	cfg "github.com/automoto/racrec/config"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// NavBar is the row of page links along the top of every page.
type NavBar struct {
	Container *widget.Container
	Active    string

	// Callbacks
	OnNavigate func(path string)

	buttons map[string]*widget.Button
	faces   *faces
}

// NewNavBar builds the navbar with active highlighted.
func NewNavBar(active string, onNavigate func(path string)) *NavBar {
	nb := &NavBar{
		Active:     active,
		OnNavigate: onNavigate,
		buttons:    make(map[string]*widget.Button, len(cfg.NavItems)),
		faces:      loadFaces(),
	}
	nb.build()
	return nb
}

func (nb *NavBar) build() {
	padding := widget.Insets{Left: 24, Right: 24, Top: 10, Bottom: 10}
	nb.Container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Nav.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, int(cfg.Nav.Height)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	brand := widget.NewLabel(
		widget.LabelOpts.Text("RACREC", &nb.faces.brand, &widget.LabelColor{
			Idle: cfg.Primary,
		}),
	)
	nb.Container.AddChild(brand)

	for _, item := range cfg.NavItems {
		path := item.Path // Capture for closure
		face := &nb.faces.normal
		if path == nb.Active {
			face = &nb.faces.bold
		}
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(96, 34),
			),
			widget.ButtonOpts.Image(nb.buttonImage(path == nb.Active)),
			widget.ButtonOpts.Text(item.Label, face, nb.textColor(path == nb.Active)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if nb.OnNavigate != nil {
					nb.OnNavigate(path)
				}
			}),
		)
		nb.buttons[path] = button
		nb.Container.AddChild(button)
	}
}

func (nb *NavBar) buttonImage(active bool) *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Nav.BackgroundColor)
	if active {
		idle = image.NewNineSliceColor(color.RGBA{R: 232, G: 244, B: 239, A: 255})
	}
	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    image.NewNineSliceColor(color.RGBA{R: 240, G: 240, B: 236, A: 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{R: 220, G: 236, B: 229, A: 255}),
		Disabled: idle,
	}
}

func (nb *NavBar) textColor(active bool) *widget.ButtonTextColor {
	idle := color.Color(cfg.TextDark)
	if active {
		idle = cfg.Primary
	}
	return &widget.ButtonTextColor{
		Idle:    idle,
		Hover:   cfg.Primary,
		Pressed: cfg.Primary,
	}
}

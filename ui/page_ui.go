package ui

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// PageUI holds the ebitenui interface drawn over a page: the navbar and,
// on some pages, a fixed panel.
type PageUI struct {
	UI     *ebitenui.UI
	NavBar *NavBar
}

// NewPageUI builds the page interface. panel may be nil.
func NewPageUI(active string, onNavigate func(path string), panel *widget.Container) *PageUI {
	pui := &PageUI{NavBar: NewNavBar(active, onNavigate)}

	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	if panel != nil {
		rootContainer.AddChild(panel)
	}
	rootContainer.AddChild(pui.NavBar.Container)

	pui.UI = &ebitenui.UI{Container: rootContainer}
	return pui
}

// Update processes UI input
func (pui *PageUI) Update() {
	pui.UI.Update()
}

// Draw renders the UI
func (pui *PageUI) Draw(screen *ebiten.Image) {
	pui.UI.Draw(screen)
}

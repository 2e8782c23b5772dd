package components

import (
	"github.com/automoto/racrec/viewport"
	"github.com/yohamta/donburi"
)

// LayoutData is an entity's box in page coordinates (y grows with scroll).
type LayoutData struct {
	X, Y, W, H float64
}

func (l *LayoutData) Rect() viewport.Rect {
	return viewport.Rect{X: l.X, Y: l.Y, W: l.W, H: l.H}
}

var Layout = donburi.NewComponentType[LayoutData]()

// ScrollData is the page's vertical scroll state.
type ScrollData struct {
	Y       float64
	Max     float64
	ViewTop float64 // screen y where page content starts (below the navbar)
	ViewH   float64
	Locked  bool // a modal is open
}

var Scroll = donburi.NewComponentType[ScrollData]()

// VisibilityData owns the page's viewport observer.
type VisibilityData struct {
	Observer *viewport.Observer
}

var Visibility = donburi.NewComponentType[VisibilityData]()

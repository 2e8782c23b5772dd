package components

import "github.com/yohamta/donburi"

// DemoData holds the pixel demo page's chosen settings.
type DemoData struct {
	PixelSize int
	Duration  float64 // seconds
	Dirty     bool    // changed since last save
}

var Demo = donburi.NewComponentType[DemoData]()

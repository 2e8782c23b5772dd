package components

import (
	"github.com/automoto/racrec/viewport"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RevealData fades an element in the first time it scrolls into view.
type RevealData struct {
	Delay   float32
	Alpha   float32
	Offset  float32 // downward offset still to travel
	Started bool
	Waiting float32
	Tween   *gween.Tween // drives progress 0 -> 1
	Handle  viewport.Handle
}

var Reveal = donburi.NewComponentType[RevealData]()

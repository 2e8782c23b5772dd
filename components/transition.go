package components

import (
	"image/color"
	"time"

	"github.com/automoto/racrec/pixelfx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PixelTransitionData drives the dissolve overlay of a page.
type PixelTransitionData struct {
	Engine *pixelfx.Engine
	Canvas *ebiten.Image // overlay sized to the screen, created lazily

	Active       bool      // activation flag owned by the page
	DeactivateAt time.Time // zero = stays active until cleared
	PixelSize    int
	Duration     time.Duration
	Color        color.Color

	ScreenW, ScreenH int // last known screen size, read when a run starts
}

var PixelTransition = donburi.NewComponentType[PixelTransitionData]()

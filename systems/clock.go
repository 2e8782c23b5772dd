package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Now is the wall clock used by time-driven effects.
var Now = time.Now

// frameDelta returns the seconds covered by one Update tick.
func frameDelta() float32 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float32(tps)
}

package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

// DrawDebug outlines every hit area and prints scroll and transition state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Space.Objects() {
			if obj == space.Cursor {
				continue
			}
			y := ToScreen(e, obj.Y)
			if !onScreen(y, obj.H) {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvCard) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvTile) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}
			vector.StrokeRect(screen, float32(obj.X), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	s := GetOrCreateScroll(e)
	pt := GetOrCreatePixelTransition(e)
	particles := len(pt.Engine.Particles())
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"TPS %.0f  FPS %.0f\nscroll %.0f/%.0f locked=%v\ndissolve active=%v running=%v particles=%d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		s.Y, s.Max, s.Locked,
		pt.Active, pt.Engine.Running(), particles,
	), 8, int(s.ViewTop)+8)
}

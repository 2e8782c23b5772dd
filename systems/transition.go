package systems

import (
	"image"
	"image/color"
	"time"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/pixelfx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ebitenSurface adapts an ebiten image to pixelfx.Surface.
type ebitenSurface struct {
	dst  *ebiten.Image
	fill color.NRGBA
}

func (s *ebitenSurface) ClearRect(x, y, w, h float64) {
	b := s.dst.Bounds()
	r := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(b)
	if r == b {
		s.dst.Clear()
		return
	}
	if r.Empty() {
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *ebitenSurface) SetFillColor(c color.Color, alpha float64) {
	s.fill = pixelfx.WithAlpha(c, alpha)
}

func (s *ebitenSurface) FillRect(x, y, w, h float64) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), s.fill, false)
}

// GetOrCreatePixelTransition returns the singleton transition component.
func GetOrCreatePixelTransition(e *ecs.ECS) *components.PixelTransitionData {
	entry, ok := components.PixelTransition.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.PixelTransition))
		components.PixelTransition.SetValue(entry, components.PixelTransitionData{
			Engine:    pixelfx.NewEngine(),
			PixelSize: cfg.Transition.PixelSize,
			Duration:  cfg.DefaultTransitionDuration(),
			Color:     cfg.Transition.Color,
			ScreenW:   cfg.C.Width,
			ScreenH:   cfg.C.Height,
		})
	}
	return components.PixelTransition.Get(entry)
}

// TriggerPixelTransition raises the activation flag for one duration, the
// way a page flips its own boolean and clears it with a timer.
func TriggerPixelTransition(e *ecs.ECS, pixelSize int, duration time.Duration) {
	pt := GetOrCreatePixelTransition(e)
	if pt.Active {
		// Flag already up: restart the run in place.
		pt.Active = false
		pt.Engine.SetActive(false, Now(), runConfig(pt))
	}
	pt.PixelSize = pixelSize
	pt.Duration = duration
	pt.Active = true
	pt.DeactivateAt = Now().Add(duration)
}

// SetPixelTransitionActive sets the activation flag directly; it stays up
// until cleared.
func SetPixelTransitionActive(e *ecs.ECS, active bool) {
	pt := GetOrCreatePixelTransition(e)
	pt.Active = active
	pt.DeactivateAt = time.Time{}
}

// UpdatePixelTransition expires the flag timer and forwards flag changes to
// the engine.
func UpdatePixelTransition(e *ecs.ECS) {
	pt := GetOrCreatePixelTransition(e)
	now := Now()
	if pt.Active && !pt.DeactivateAt.IsZero() && !now.Before(pt.DeactivateAt) {
		pt.Active = false
		pt.DeactivateAt = time.Time{}
	}
	pt.Engine.SetActive(pt.Active, now, runConfig(pt))
}

// DrawPixelTransition ticks the engine onto the overlay canvas and composites
// it. Nothing is drawn while the flag is down.
func DrawPixelTransition(e *ecs.ECS, screen *ebiten.Image) {
	pt := GetOrCreatePixelTransition(e)
	b := screen.Bounds()
	pt.ScreenW, pt.ScreenH = b.Dx(), b.Dy()

	if !pt.Active {
		return
	}
	if pt.Engine.Running() {
		rc, _ := pt.Engine.Context()
		canvas := ensureCanvas(pt, rc.Width, rc.Height)
		pt.Engine.Tick(Now(), &ebitenSurface{dst: canvas})
	}
	if pt.Canvas != nil {
		screen.DrawImage(pt.Canvas, nil)
	}
}

func ensureCanvas(pt *components.PixelTransitionData, w, h int) *ebiten.Image {
	if pt.Canvas != nil {
		if b := pt.Canvas.Bounds(); b.Dx() == w && b.Dy() == h {
			return pt.Canvas
		}
		pt.Canvas.Deallocate()
	}
	pt.Canvas = ebiten.NewImage(w, h)
	return pt.Canvas
}

func runConfig(pt *components.PixelTransitionData) pixelfx.Config {
	return pixelfx.Config{
		Width:     pt.ScreenW,
		Height:    pt.ScreenH,
		PixelSize: pt.PixelSize,
		Duration:  pt.Duration,
		Color:     pt.Color,
		Strict:    cfg.Debug.StrictPixels,
	}
}

package systems

import (
	"image/color"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackground fills the page color.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Page.BackgroundColor)
}

// DrawPanels draws filled boxes behind page content.
func DrawPanels(e *ecs.ECS, screen *ebiten.Image) {
	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		p := components.Panel.Get(entry)
		l := components.Layout.Get(entry)
		y := ToScreen(e, l.Y)
		if !onScreen(y, l.H) {
			return
		}
		vector.FillRect(screen, float32(l.X), float32(y), float32(l.W), float32(l.H), p.Color, false)
	})
}

// DrawTexts draws every text block, faded by its reveal state if it has one.
func DrawTexts(e *ecs.ECS, screen *ebiten.Image) {
	components.Text.Each(e.World, func(entry *donburi.Entry) {
		t := components.Text.Get(entry)
		l := components.Layout.Get(entry)
		alpha, offset := revealState(entry)
		if alpha <= 0 {
			return
		}
		y := ToScreen(e, l.Y) + offset
		if !onScreen(y, l.H) {
			return
		}
		drawLines(screen, t.Lines, t.Font, t.Color, t.Align, l.X, y, l.W, alpha)
	})
}

func drawLines(screen *ebiten.Image, lines []string, name fonts.FontName, clr color.Color, align components.TextAlign, x, y, w float64, alpha float32) {
	face := name.Get()
	lh := name.LineHeight()
	c := fade(clr, alpha)
	for i, line := range lines {
		lx := x
		if align == components.AlignCenter {
			lx = x + (w-name.Measure(line))/2
		}
		text.Draw(screen, line, face, int(lx), int(y+lh*float64(i+1)), c)
	}
}

func onScreen(y, h float64) bool {
	return y+h >= cfg.Nav.Height && y <= float64(cfg.C.Height)
}

// fade scales a color's opacity.
func fade(c color.Color, alpha float32) color.Color {
	if alpha >= 1 {
		return c
	}
	r, g, b, a := c.RGBA()
	k := float64(alpha)
	return color.RGBA64{
		R: uint16(float64(r) * k),
		G: uint16(float64(g) * k),
		B: uint16(float64(b) * k),
		A: uint16(float64(a) * k),
	}
}

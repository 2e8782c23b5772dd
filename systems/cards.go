package systems

import (
	"path"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/fonts"
	"github.com/automoto/racrec/tags"
	"github.com/automoto/racrec/viewport"
	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const cardImageHeight = 120

var cardSpring = harmonica.NewSpring(harmonica.FPS(ebiten.DefaultTPS), cfg.Card.SpringFrequency, cfg.Card.SpringDamping)

// UpdateCards tracks which card is under the pointer, springs hovered cards
// upward and opens the modal for a clicked project card.
func UpdateCards(e *ecs.ECS) {
	var hovered *donburi.Entry
	if !OverlayOpen(e) {
		if x, y, ok := PointerOnPage(e); ok {
			hovered = HitTest(e, x, y, tags.ResolvCard)
		}
	}

	components.Card.Each(e.World, func(entry *donburi.Entry) {
		c := components.Card.Get(entry)
		c.Hovered = entry == hovered
		target := 0.0
		if c.Hovered {
			target = cfg.Card.HoverLift
		}
		c.Lift, c.LiftVel = cardSpring.Update(c.Lift, c.LiftVel, target)
	})

	if hovered == nil {
		return
	}
	if components.Card.Get(hovered).Kind != components.CardProject {
		return
	}
	if getOrCreatePointer(e).Click() {
		OpenModal(e, hovered)
	}
}

// DrawCards draws visible cards lifted by their hover spring.
func DrawCards(e *ecs.ECS, screen *ebiten.Image) {
	components.Card.Each(e.World, func(entry *donburi.Entry) {
		c := components.Card.Get(entry)
		if c.Hidden {
			return
		}
		l := components.Layout.Get(entry)
		alpha, offset := revealState(entry)
		if alpha <= 0 {
			return
		}
		y := ToScreen(e, l.Y) + offset - c.Lift
		if !onScreen(y, l.H) {
			return
		}
		drawCard(screen, c, viewport.Rect{X: l.X, Y: y, W: l.W, H: l.H}, alpha)
	})
}

func drawCard(screen *ebiten.Image, c *components.CardData, r viewport.Rect, alpha float32) {
	shadow := 4 + c.Lift
	vector.FillRect(screen, float32(r.X+2), float32(r.Y+shadow), float32(r.W), float32(r.H), fade(cfg.Card.ShadowColor, alpha), false)
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fade(cfg.Card.BackgroundColor, alpha), false)

	img := viewport.Rect{X: r.X, Y: r.Y, W: r.W, H: cardImageHeight}
	if c.Image != "" {
		vector.FillRect(screen, float32(img.X), float32(img.Y), float32(img.W), float32(img.H), fade(photoTint(c.Image), alpha), false)
		caption := path.Base(c.Image)
		drawLines(screen, []string{caption}, fonts.Small, cfg.Gallery.TitleColor, components.AlignLeft, img.X+8, img.Y+img.H-fonts.Small.LineHeight()-6, img.W-16, alpha)
	}

	pad := 12.0
	x, y, w := r.X+pad, r.Y+cardImageHeight+pad, r.W-2*pad
	drawLines(screen, []string{c.Title}, fonts.Bold, cfg.Card.TitleColor, components.AlignLeft, x, y, w, alpha)
	y += fonts.Bold.LineHeight()

	meta := c.Subtitle
	if c.Location != "" {
		meta += "  |  " + c.Location
	}
	if meta != "" {
		drawLines(screen, []string{meta}, fonts.Small, cfg.Primary, components.AlignLeft, x, y, w, alpha)
		y += fonts.Small.LineHeight() + 4
	}
	if len(c.Lines) > 0 {
		room := int((r.Y + r.H - pad - y) / fonts.Small.LineHeight())
		lines := c.Lines
		if room < len(lines) {
			lines = lines[:max(room, 0)]
		}
		drawLines(screen, lines, fonts.Small, cfg.Card.TextColor, components.AlignLeft, x, y, w, alpha)
	}
}

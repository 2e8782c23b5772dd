package systems

import (
	"path"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/fonts"
	"github.com/automoto/racrec/gallery"
	"github.com/automoto/racrec/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// overlayClick is the result of a click while an overlay is shown.
type overlayClick int

const (
	clickNone overlayClick = iota
	clickContent
	clickClose // backdrop or close button
)

// classifyOverlayClick decides what a click at (x, y) means for an overlay
// whose content box is content. The close button sits in the top-right
// corner of the screen.
func classifyOverlayClick(x, y float64, content viewport.Rect) overlayClick {
	if closeButtonRect().Contains(x, y) {
		return clickClose
	}
	if content.Contains(x, y) {
		return clickContent
	}
	return clickClose
}

func closeButtonRect() viewport.Rect {
	s := cfg.Lightbox.CloseSize
	return viewport.Rect{
		X: float64(cfg.C.Width) - cfg.Lightbox.CloseMargin - s,
		Y: cfg.Lightbox.CloseMargin,
		W: s,
		H: s,
	}
}

// lightboxContentRect is the enlarged image box.
func lightboxContentRect() viewport.Rect {
	pad := cfg.Lightbox.ContentPadding * 3
	return viewport.Rect{
		X: pad,
		Y: pad,
		W: float64(cfg.C.Width) - 2*pad,
		H: float64(cfg.C.Height) - 2*pad,
	}
}

// GetOrCreateLightbox returns the page's gallery lightbox.
func GetOrCreateLightbox(e *ecs.ECS) *components.LightboxData {
	entry, ok := components.Lightbox.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Lightbox))
	}
	return components.Lightbox.Get(entry)
}

// UpdateLightbox handles closing the gallery lightbox. It swallows every
// click while open so the page below does not react.
func UpdateLightbox(e *ecs.ECS) {
	lb := GetOrCreateLightbox(e)
	if !lb.IsOpen() {
		return
	}
	handleLightboxInput(e, &lb.Lightbox)
}

// DrawLightbox draws the gallery lightbox when an image is selected.
func DrawLightbox(e *ecs.ECS, screen *ebiten.Image) {
	lb := GetOrCreateLightbox(e)
	if src, ok := lb.Selected(); ok {
		drawLightboxImage(screen, src)
	}
}

func handleLightboxInput(e *ecs.ECS, lb *gallery.Lightbox) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionClose).JustPressed {
		lb.Close()
		return
	}
	p := getOrCreatePointer(e)
	if !p.Click() {
		return
	}
	if classifyOverlayClick(p.X, p.Y, lightboxContentRect()) == clickClose {
		lb.Close()
	}
}

func drawLightboxImage(screen *ebiten.Image, src string) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.FillRect(screen, 0, 0, w, h, cfg.Lightbox.BackdropColor, false)

	r := lightboxContentRect()
	drawPhoto(screen, src, path.Base(src), r)
	drawCloseButton(screen)
}

func drawCloseButton(screen *ebiten.Image) {
	r := closeButtonRect()
	cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
	k := float32(r.W / 4)
	vector.StrokeLine(screen, cx-k, cy-k, cx+k, cy+k, 3, cfg.White, true)
	vector.StrokeLine(screen, cx-k, cy+k, cx+k, cy-k, 3, cfg.White, true)
}

// drawPhoto draws a photo placeholder: a tinted box with its caption.
func drawPhoto(screen *ebiten.Image, src, caption string, r viewport.Rect) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), photoTint(src), false)
	lines := fonts.Small.Wrap(caption, r.W-16)
	lh := fonts.Small.LineHeight()
	y := r.Y + r.H - lh*float64(len(lines)) - 8
	drawLines(screen, lines, fonts.Small, cfg.Gallery.TitleColor, components.AlignLeft, r.X+8, y, r.W-16, 1)
}

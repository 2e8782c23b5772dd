package systems

import (
	"path"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/fonts"
	"github.com/automoto/racrec/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	modalWidth    = 760
	modalHeight   = 540
	modalThumbs   = 4
	modalThumbH   = 110
	modalThumbGap = 12
)

// GetOrCreateModal returns the page's project modal.
func GetOrCreateModal(e *ecs.ECS) *components.ModalData {
	entry, ok := components.Modal.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Modal))
	}
	return components.Modal.Get(entry)
}

// OpenModal shows card's details and locks page scrolling.
func OpenModal(e *ecs.ECS, card *donburi.Entry) {
	m := GetOrCreateModal(e)
	m.Open = true
	m.Card = card
	m.Lightbox.Close()
	GetOrCreateScroll(e).Locked = true
}

// CloseModal hides the modal and its lightbox and unlocks scrolling.
func CloseModal(e *ecs.ECS) {
	m := GetOrCreateModal(e)
	m.Open = false
	m.Card = nil
	m.Lightbox.Close()
	GetOrCreateScroll(e).Locked = false
}

// ModalOpen reports whether the project modal is shown.
func ModalOpen(e *ecs.ECS) bool {
	entry, ok := components.Modal.First(e.World)
	return ok && components.Modal.Get(entry).Open
}

func modalRect() viewport.Rect {
	return viewport.Rect{
		X: (float64(cfg.C.Width) - modalWidth) / 2,
		Y: (float64(cfg.C.Height) - modalHeight) / 2,
		W: modalWidth,
		H: modalHeight,
	}
}

// modalThumbRects lays out up to modalThumbs gallery thumbnails along the
// bottom of the modal.
func modalThumbRects(n int) []viewport.Rect {
	if n > modalThumbs {
		n = modalThumbs
	}
	m := modalRect()
	pad := cfg.Lightbox.ContentPadding
	w := (m.W - 2*pad - modalThumbGap*(modalThumbs-1)) / modalThumbs
	rects := make([]viewport.Rect, n)
	for i := range rects {
		rects[i] = viewport.Rect{
			X: m.X + pad + float64(i)*(w+modalThumbGap),
			Y: m.Y + m.H - pad - modalThumbH,
			W: w,
			H: modalThumbH,
		}
	}
	return rects
}

// UpdateModal handles clicks and Escape while the modal is open. The modal's
// own lightbox takes input first.
func UpdateModal(e *ecs.ECS) {
	m := GetOrCreateModal(e)
	if !m.Open {
		return
	}
	if m.Lightbox.IsOpen() {
		handleLightboxInput(e, &m.Lightbox.Lightbox)
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionClose).JustPressed {
		CloseModal(e)
		return
	}
	p := getOrCreatePointer(e)
	if !p.Click() {
		return
	}
	switch classifyOverlayClick(p.X, p.Y, modalRect()) {
	case clickClose:
		CloseModal(e)
	case clickContent:
		if m.Card == nil || !m.Card.Valid() {
			return
		}
		card := components.Card.Get(m.Card)
		for i, r := range modalThumbRects(len(card.Gallery)) {
			if r.Contains(p.X, p.Y) {
				m.Lightbox.Select(card.Gallery[i])
				return
			}
		}
	}
}

// DrawModal draws the open project modal and its lightbox.
func DrawModal(e *ecs.ECS, screen *ebiten.Image) {
	m := GetOrCreateModal(e)
	if !m.Open || m.Card == nil || !m.Card.Valid() {
		return
	}
	card := components.Card.Get(m.Card)

	vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), cfg.Lightbox.BackdropColor, false)
	r := modalRect()
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Lightbox.PanelColor, false)

	pad := cfg.Lightbox.ContentPadding
	x, y, w := r.X+pad, r.Y+pad, r.W-2*pad
	drawLines(screen, []string{card.Title}, fonts.Bold, cfg.Card.TitleColor, components.AlignLeft, x, y, w, 1)
	y += fonts.Bold.LineHeight() + 4

	meta := card.Subtitle
	if card.Location != "" {
		meta += "  |  " + card.Location
	}
	drawLines(screen, []string{meta}, fonts.Small, cfg.Primary, components.AlignLeft, x, y, w, 1)
	y += fonts.Small.LineHeight() + 12

	details := card.Details
	if details == "" {
		details = card.Summary
	}
	drawLines(screen, fonts.Body.Wrap(details, w), fonts.Body, cfg.Card.TextColor, components.AlignLeft, x, y, w, 1)

	for i, tr := range modalThumbRects(len(card.Gallery)) {
		src := card.Gallery[i]
		drawPhoto(screen, src, path.Base(src), tr)
	}
	drawCloseButton(screen)

	if src, ok := m.Lightbox.Selected(); ok {
		drawLightboxImage(screen, src)
	}
}

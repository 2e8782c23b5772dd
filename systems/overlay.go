package systems

import (
	"github.com/automoto/racrec/components"
	"github.com/yohamta/donburi/ecs"
)

// OverlayOpen reports whether a modal or lightbox covers the page.
func OverlayOpen(e *ecs.ECS) bool {
	if ModalOpen(e) {
		return true
	}
	if entry, ok := components.Lightbox.First(e.World); ok {
		return components.Lightbox.Get(entry).IsOpen()
	}
	return false
}

// WithOverlayCheck wraps a system to skip execution while an overlay is open.
func WithOverlayCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if OverlayOpen(e) {
			return
		}
		system(e)
	}
}

package systems

import (
	cfg "github.com/automoto/racrec/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateNavigation creates a system that moves to the previous or next
// navbar page from the keyboard.
func NewUpdateNavigation(route string, navigate func(path string)) ecs.System {
	return func(e *ecs.ECS) {
		if OverlayOpen(e) {
			return
		}
		input := getOrCreateInput(e)
		switch {
		case GetAction(input, cfg.ActionNavPrev).JustPressed:
			navigate(AdjacentRoute(route, -1))
		case GetAction(input, cfg.ActionNavNext).JustPressed:
			navigate(AdjacentRoute(route, 1))
		}
	}
}

// AdjacentRoute returns the navbar entry delta places from route, wrapping
// around. Unknown routes count as the first entry.
func AdjacentRoute(route string, delta int) string {
	n := len(cfg.NavItems)
	idx := 0
	for i, item := range cfg.NavItems {
		if item.Path == route {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%n + n) % n
	return cfg.NavItems[idx].Path
}

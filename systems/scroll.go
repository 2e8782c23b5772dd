package systems

import (
	"math"

	"github.com/automoto/racrec/components"
	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/viewport"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateScroll returns the singleton scroll state.
func GetOrCreateScroll(e *ecs.ECS) *components.ScrollData {
	entry, ok := components.Scroll.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Scroll))
		components.Scroll.SetValue(entry, components.ScrollData{
			ViewTop: cfg.Nav.Height,
			ViewH:   float64(cfg.C.Height) - cfg.Nav.Height,
		})
	}
	return components.Scroll.Get(entry)
}

// GetOrCreateObserver returns the page's visibility observer.
func GetOrCreateObserver(e *ecs.ECS) *viewport.Observer {
	entry, ok := components.Visibility.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Visibility))
		components.Visibility.SetValue(entry, components.VisibilityData{
			Observer: viewport.NewObserver(cfg.Reveal.Threshold),
		})
	}
	return components.Visibility.Get(entry).Observer
}

// SetPageHeight sets the scrollable content height.
func SetPageHeight(e *ecs.ECS, height float64) {
	s := GetOrCreateScroll(e)
	s.Max = math.Max(0, height-s.ViewH)
	s.Y = math.Min(s.Y, s.Max)
}

// UpdateScroll applies wheel and key scrolling, then notifies the observer.
func UpdateScroll(e *ecs.ECS) {
	s := GetOrCreateScroll(e)
	if !s.Locked {
		input := getOrCreateInput(e)
		pointer := getOrCreatePointer(e)

		dy := -pointer.WheelY * cfg.Input.WheelStep
		if GetAction(input, cfg.ActionScrollDown).Pressed {
			dy += cfg.Input.ScrollStep
		}
		if GetAction(input, cfg.ActionScrollUp).Pressed {
			dy -= cfg.Input.ScrollStep
		}
		if GetAction(input, cfg.ActionPageDown).JustPressed {
			dy += s.ViewH * cfg.Input.PageStepFactor
		}
		if GetAction(input, cfg.ActionPageUp).JustPressed {
			dy -= s.ViewH * cfg.Input.PageStepFactor
		}
		ScrollBy(e, dy)
	}
	UpdateVisibility(e)
}

// ScrollBy moves the page, clamped to its content.
func ScrollBy(e *ecs.ECS, dy float64) {
	s := GetOrCreateScroll(e)
	s.Y = math.Max(0, math.Min(s.Max, s.Y+dy))
}

// ViewRect returns the visible part of the page in page coordinates.
func ViewRect(e *ecs.ECS) viewport.Rect {
	s := GetOrCreateScroll(e)
	return viewport.Rect{X: 0, Y: s.Y, W: float64(cfg.C.Width), H: s.ViewH}
}

// UpdateVisibility runs the observer against the current view.
func UpdateVisibility(e *ecs.ECS) {
	GetOrCreateObserver(e).Update(ViewRect(e))
}

// ToScreen converts a page y coordinate into a screen y coordinate.
func ToScreen(e *ecs.ECS, pageY float64) float64 {
	s := GetOrCreateScroll(e)
	return pageY - s.Y + s.ViewTop
}

// ToPage converts a screen point into page coordinates.
func ToPage(e *ecs.ECS, x, y float64) (float64, float64) {
	s := GetOrCreateScroll(e)
	return x, y - s.ViewTop + s.Y
}

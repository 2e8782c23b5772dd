package systems

import (
	"github.com/automoto/racrec/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HitTest returns the entry tagged tag under the page point, or nil.
// Cards filtered out by a tab never match.
func HitTest(e *ecs.ECS, x, y float64, tag string) *donburi.Entry {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	sd := components.Space.Get(spaceEntry)
	sd.Cursor.X, sd.Cursor.Y = x, y
	sd.Cursor.Update()

	check := sd.Cursor.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	// Check is a cell broadphase; confirm the point is inside the box.
	var hit *donburi.Entry
	for _, obj := range check.Objects {
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if entry.HasComponent(components.Card) && components.Card.Get(entry).Hidden {
			continue
		}
		hit = entry
	}
	return hit
}

// PointerOnPage returns the pointer position in page coordinates, and false
// when it is over the navbar.
func PointerOnPage(e *ecs.ECS) (float64, float64, bool) {
	p := getOrCreatePointer(e)
	s := GetOrCreateScroll(e)
	if p.Y < s.ViewTop {
		return 0, 0, false
	}
	x, y := ToPage(e, p.X, p.Y)
	return x, y, true
}

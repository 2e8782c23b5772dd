package systems

import (
	"github.com/automoto/racrec/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each hit area to its entity's current layout box.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil || !e.HasComponent(components.Layout) {
			continue
		}
		l := components.Layout.Get(e)
		if obj.X == l.X && obj.Y == l.Y && obj.W == l.W && obj.H == l.H {
			continue
		}
		obj.X, obj.Y, obj.W, obj.H = l.X, l.Y, l.W, l.H
		obj.Update()
	}
}
